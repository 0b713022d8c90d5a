package project

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lasif-tools/cli/internal/domain"
)

// Config mirrors the project marker file lasif.hcl. Its presence is what
// makes a directory a project root.
type Config struct {
	Project          ProjectBlock     `hcl:"project,block"`
	Domain           DomainBlock      `hcl:"domain,block"`
	DownloadSettings DownloadSettings `hcl:"download_settings,block"`
}

type ProjectBlock struct {
	Name        string `hcl:"name"`
	Description string `hcl:"description,optional"`
}

type DomainBlock struct {
	Bounds   BoundsBlock   `hcl:"bounds,block"`
	Rotation RotationBlock `hcl:"rotation,block"`
}

type BoundsBlock struct {
	MinimumLatitude  float64 `hcl:"minimum_latitude"`
	MaximumLatitude  float64 `hcl:"maximum_latitude"`
	MinimumLongitude float64 `hcl:"minimum_longitude"`
	MaximumLongitude float64 `hcl:"maximum_longitude"`
	MinimumDepthKM   float64 `hcl:"minimum_depth_in_km"`
	MaximumDepthKM   float64 `hcl:"maximum_depth_in_km"`
	BoundaryWidth    float64 `hcl:"boundary_width_in_degree"`
}

type RotationBlock struct {
	Axis  []float64 `hcl:"axis"`
	Angle float64   `hcl:"angle"`
}

type DownloadSettings struct {
	SecondsBeforeEvent float64 `hcl:"seconds_before_event"`
	SecondsAfterEvent  float64 `hcl:"seconds_after_event"`
	ArclinkUsername    string  `hcl:"arclink_username,optional"`
	ProviderURL        string  `hcl:"provider_url,optional"`
}

// LoadConfig parses a lasif.hcl file.
func LoadConfig(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse config: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode config: %s", diags.Error())
	}

	if len(cfg.Domain.Rotation.Axis) != 3 {
		return nil, fmt.Errorf("rotation axis must have exactly 3 components, got %d",
			len(cfg.Domain.Rotation.Axis))
	}

	return &cfg, nil
}

// Bounds converts the configured bounds to the domain type.
func (c *Config) Bounds() domain.Bounds {
	b := c.Domain.Bounds
	return domain.Bounds{
		MinLatitude:   b.MinimumLatitude,
		MaxLatitude:   b.MaximumLatitude,
		MinLongitude:  b.MinimumLongitude,
		MaxLongitude:  b.MaximumLongitude,
		BoundaryWidth: b.BoundaryWidth,
		MinDepthKM:    b.MinimumDepthKM,
		MaxDepthKM:    b.MaximumDepthKM,
	}
}

// Rotation converts the configured rotation to the domain type.
func (c *Config) Rotation() domain.Rotation {
	r := c.Domain.Rotation
	return domain.Rotation{
		Axis:  [3]float64{r.Axis[0], r.Axis[1], r.Axis[2]},
		Angle: r.Angle,
	}
}

// defaultConfigTemplate is written into new projects. The values outline
// a rotated European domain and are meant to be edited.
const defaultConfigTemplate = `project {
  name        = %q
  description = ""
}

domain {
  bounds {
    minimum_latitude         = -20.0
    maximum_latitude         = 20.0
    minimum_longitude        = -20.0
    maximum_longitude        = 20.0
    minimum_depth_in_km      = 0.0
    maximum_depth_in_km      = 200.0
    boundary_width_in_degree = 3.0
  }

  rotation {
    axis  = [1.0, 1.0, 1.0]
    angle = -45.0
  }
}

download_settings {
  seconds_before_event = 300
  seconds_after_event  = 3600
  arclink_username     = ""
  provider_url         = "http://service.iris.edu"
}
`

// DefaultConfig renders the config written by init_project.
func DefaultConfig(name string) string {
	return fmt.Sprintf(defaultConfigTemplate, name)
}
