// Package paths fixes the on-disk layout of a project. All other packages
// go through a Layout instead of joining path segments themselves.
package paths

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the marker file identifying a project root.
const ConfigFileName = "lasif.hcl"

// Layout holds the absolute paths of every directory inside a project.
type Layout struct {
	Root        string
	Events      string
	Data        string
	Models      string
	Templates   string
	STF         string
	Logs        string
	Cache       string
	Output      string
	StationResp string
	StationXML  string
	StationSEED string
}

// NewLayout builds the layout for a project rooted at the given directory.
func NewLayout(root string) Layout {
	stations := filepath.Join(root, "STATIONS")
	return Layout{
		Root:        root,
		Events:      filepath.Join(root, "EVENTS"),
		Data:        filepath.Join(root, "DATA"),
		Models:      filepath.Join(root, "MODELS"),
		Templates:   filepath.Join(root, "TEMPLATES"),
		STF:         filepath.Join(root, "SOURCE_TIME_FUNCTIONS"),
		Logs:        filepath.Join(root, "LOGS"),
		Cache:       filepath.Join(root, "CACHE"),
		Output:      filepath.Join(root, "OUTPUT"),
		StationResp: filepath.Join(stations, "RESP"),
		StationXML:  filepath.Join(stations, "StationXML"),
		StationSEED: filepath.Join(stations, "SEED"),
	}
}

// ConfigFile returns the path of the project marker/config file.
func (l Layout) ConfigFile() string {
	return filepath.Join(l.Root, ConfigFileName)
}

// RawData returns the raw waveform directory for one event.
func (l Layout) RawData(eventName string) string {
	return filepath.Join(l.Data, eventName, "raw")
}

// DownloadDB returns the path of the download ledger database.
func (l Layout) DownloadDB() string {
	return filepath.Join(l.Cache, "downloads.sqlite")
}

// LogFile returns the path of a named log file inside the project.
func (l Layout) LogFile(name string) string {
	return filepath.Join(l.Logs, name)
}

// All returns every directory of the layout, for creation.
func (l Layout) All() []string {
	return []string{
		l.Events,
		l.Data,
		l.Models,
		l.Templates,
		l.STF,
		l.Logs,
		l.Cache,
		l.Output,
		l.StationResp,
		l.StationXML,
		l.StationSEED,
	}
}

// Create makes every directory of the layout that does not exist yet.
func (l Layout) Create() error {
	for _, dir := range l.All() {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
