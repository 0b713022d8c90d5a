package actions

import (
	"strconv"

	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/format"
	"github.com/lasif-tools/cli/internal/ui"
)

// Info prints a summary of the current project.
func Info(args []string, flags *dispatchers.ParsedFlags) error {
	return info(args, flags, defaultDeps())
}

func info(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}

	summary, err := p.Summarize()
	if err != nil {
		return err
	}

	bounds := p.Config.Bounds()
	rotation := p.Config.Rotation()

	out := deps.App.Output
	_, _ = out.Println(deps.App.Styler.Header("Project " + summary.Name))
	_, _ = out.Printf("%s", ui.KeyValueTable([][2]string{
		{"Root", summary.Root},
		{"Events", strconv.Itoa(summary.EventCount)},
		{"Models", strconv.Itoa(summary.ModelCount)},
		{"Latitude", format.Latitude(bounds.MinLatitude) + " to " + format.Latitude(bounds.MaxLatitude)},
		{"Longitude", format.Longitude(bounds.MinLongitude) + " to " + format.Longitude(bounds.MaxLongitude)},
		{"Depth range", format.Depth(bounds.MinDepthKM) + " to " + format.Depth(bounds.MaxDepthKM)},
		{"Boundary width", strconv.FormatFloat(bounds.BoundaryWidth, 'g', -1, 64) + " deg"},
		{"Rotation angle", strconv.FormatFloat(rotation.Angle, 'g', -1, 64) + " deg"},
	}))
	return nil
}
