package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lasif-tools/cli/internal/domain"
	"github.com/lasif-tools/cli/internal/paths"
	"github.com/lasif-tools/cli/internal/quakeml"
	"github.com/lasif-tools/cli/internal/store"
	"github.com/lasif-tools/cli/internal/usage"
)

// maxRootSearchDepth bounds the upward walk when locating the project
// marker file from a nested working directory.
const maxRootSearchDepth = 10

// Project is an opened project rooted at a directory containing lasif.hcl.
type Project struct {
	Config *Config
	Layout paths.Layout
}

// Find walks up from dir looking for the project marker file. It checks at
// most maxRootSearchDepth parent directories and returns a not-in-project
// error when none carries one.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for i := 0; i <= maxRootSearchDepth; i++ {
		marker := filepath.Join(abs, paths.ConfigFileName)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}
	return "", usage.NotInProject()
}

// Open locates and loads the project containing dir.
func Open(dir string) (*Project, error) {
	root, err := Find(dir)
	if err != nil {
		return nil, err
	}
	return OpenAt(root)
}

// OpenAt loads the project rooted exactly at root.
func OpenAt(root string) (*Project, error) {
	layout := paths.NewLayout(root)
	cfg, err := LoadConfig(layout.ConfigFile())
	if err != nil {
		return nil, err
	}
	return &Project{Config: cfg, Layout: layout}, nil
}

// Init creates a new project directory with the default folder structure
// and config file. The directory must not already exist.
func Init(root, name string) (*Project, error) {
	if _, err := os.Stat(root); err == nil {
		return nil, usage.Commandf("the folder %q already exists", root)
	}
	layout := paths.NewLayout(root)
	if err := layout.Create(); err != nil {
		return nil, fmt.Errorf("create project folders: %w", err)
	}
	if err := os.WriteFile(layout.ConfigFile(), []byte(DefaultConfig(name)), 0o644); err != nil {
		return nil, fmt.Errorf("write config: %w", err)
	}
	stfPath := filepath.Join(layout.STF, "filtered_heaviside.hcl")
	if err := os.WriteFile(stfPath, []byte(defaultSTFFile), 0o644); err != nil {
		return nil, fmt.Errorf("write default source time function: %w", err)
	}
	return OpenAt(root)
}

// UpdateFolderStructure creates any folders missing from the layout.
// Existing folders and files are left alone.
func (p *Project) UpdateFolderStructure() error {
	return p.Layout.Create()
}

// Name returns the configured project name.
func (p *Project) Name() string {
	return p.Config.Project.Name
}

// EventFiles lists the QuakeML files in the events folder, sorted by name.
func (p *Project) EventFiles() ([]string, error) {
	entries, err := os.ReadDir(p.Layout.Events)
	if err != nil {
		return nil, fmt.Errorf("read events folder: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".xml") {
			files = append(files, filepath.Join(p.Layout.Events, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// EventNames lists the event names, derived from the QuakeML filenames.
func (p *Project) EventNames() ([]string, error) {
	files, err := p.EventFiles()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(filepath.Base(f), ".xml"))
	}
	return names, nil
}

// HasEvent reports whether an event with the given name exists.
func (p *Project) HasEvent(name string) (bool, error) {
	names, err := p.EventNames()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Event reads the QuakeML document for a named event.
func (p *Project) Event(name string) (*quakeml.Event, error) {
	path := filepath.Join(p.Layout.Events, name+".xml")
	ev, err := quakeml.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, usage.Commandf("event %q not known to this project", name)
		}
		return nil, err
	}
	return ev, nil
}

// EventInfo extracts the summary values for a named event.
func (p *Project) EventInfo(name string) (domain.EventInfo, error) {
	ev, err := p.Event(name)
	if err != nil {
		return domain.EventInfo{}, err
	}
	return EventSummary(name, ev)
}

// EventSummary converts a parsed QuakeML event to the flat summary type.
func EventSummary(name string, ev *quakeml.Event) (domain.EventInfo, error) {
	origin, err := ev.PreferredOrigin()
	if err != nil {
		return domain.EventInfo{}, fmt.Errorf("event %s: %w", name, err)
	}
	originTime, err := origin.Time.Parse()
	if err != nil {
		return domain.EventInfo{}, fmt.Errorf("event %s: %w", name, err)
	}
	info := domain.EventInfo{
		Name:       name,
		Latitude:   origin.Latitude.Value,
		Longitude:  origin.Longitude.Value,
		DepthKM:    origin.Depth.Value / 1000.0,
		OriginTime: originTime,
		Region:     ev.Region(),
	}
	if mag, err := ev.PreferredMagnitude(); err == nil {
		info.Magnitude = mag.Mag.Value
		info.MagnitudeType = mag.Type
	}
	return info, nil
}

// AllEventInfos reads the summaries for every event in the project.
func (p *Project) AllEventInfos() ([]domain.EventInfo, error) {
	names, err := p.EventNames()
	if err != nil {
		return nil, err
	}
	infos := make([]domain.EventInfo, 0, len(names))
	for _, name := range names {
		info, err := p.EventInfo(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Models lists the subdirectories of the models folder, sorted by name.
func (p *Project) Models() ([]string, error) {
	entries, err := os.ReadDir(p.Layout.Models)
	if err != nil {
		return nil, fmt.Errorf("read models folder: %w", err)
	}
	var models []string
	for _, e := range entries {
		if e.IsDir() {
			models = append(models, e.Name())
		}
	}
	sort.Strings(models)
	return models, nil
}

// OpenLedger opens the project's download ledger, creating the database
// on first use.
func (p *Project) OpenLedger() (*store.Store, error) {
	if err := os.MkdirAll(p.Layout.Cache, 0o755); err != nil {
		return nil, err
	}
	return store.New(p.Layout.DownloadDB())
}

// Summary collects the figures shown by the info command.
type Summary struct {
	Name       string
	Root       string
	EventCount int
	ModelCount int
}

// Summarize gathers the project summary.
func (p *Project) Summarize() (Summary, error) {
	names, err := p.EventNames()
	if err != nil {
		return Summary{}, err
	}
	models, err := p.Models()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Name:       p.Name(),
		Root:       p.Layout.Root,
		EventCount: len(names),
		ModelCount: len(models),
	}, nil
}
