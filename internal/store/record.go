package store

import "time"

// Kind says what sort of artifact a ledger row describes.
type Kind int

const (
	KindWaveform Kind = iota
	KindStation
)

func (k Kind) String() string {
	switch k {
	case KindWaveform:
		return "waveform"
	case KindStation:
		return "station"
	default:
		return "unknown"
	}
}

// Status is the outcome of one download attempt.
type Status int

const (
	StatusDownloaded Status = iota
	StatusFailed
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusDownloaded:
		return "downloaded"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Record is one row of the download ledger: one artifact (a waveform
// channel file or a station metadata file) attempted for one event.
// Coordinates are filled in when the data service reported them.
type Record struct {
	ID        int64
	JobID     string
	EventName string
	Network   string
	Station   string
	Channel   string
	Kind      Kind
	Status    Status
	Path      string
	Latitude  *float64
	Longitude *float64
	Elevation *float64
	CreatedAt time.Time
}

// StationID returns the NET.STA identifier of the record.
func (r Record) StationID() string {
	return r.Network + "." + r.Station
}
