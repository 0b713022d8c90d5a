// Package downloader fetches missing waveform and station files from a
// data provider. The wire protocol stays behind this package: callers hand
// over the domain extent and rotation, a time window, and output paths,
// and get a Report back. Every attempt is recorded in the download ledger so repeat
// runs only fetch what is still missing.
package downloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/lasif-tools/cli/internal/domain"
	"github.com/lasif-tools/cli/internal/store"
)

// DefaultChannelPriorities is tried in order until a station yields data.
var DefaultChannelPriorities = []string{
	"HH[Z,N,E]",
	"BH[Z,N,E]",
	"MH[Z,N,E]",
	"EH[Z,N,E]",
	"LH[Z,N,E]",
}

// Options configures a Client.
type Options struct {
	// BaseURL of the data provider.
	BaseURL string
	// Username sent with every request, may be empty.
	Username string
	Timeout  time.Duration
}

// Client downloads waveform and station artifacts.
type Client struct {
	http       *resty.Client
	ledger     *store.Store
	logger     domain.Logger
	priorities []string
}

// New builds a Client. The ledger is consulted before every fetch and
// updated after it.
func New(opts Options, ledger *store.Store, logger domain.Logger) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	http := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(timeout)
	if opts.Username != "" {
		http.SetHeader("X-Arclink-User", opts.Username)
	}
	return &Client{
		http:       http,
		ledger:     ledger,
		logger:     logger,
		priorities: DefaultChannelPriorities,
	}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// Window is the time span of data to request around an event.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow derives the request window from an origin time and the
// configured paddings in seconds.
func NewWindow(origin time.Time, secondsBefore, secondsAfter float64) Window {
	return Window{
		Start: origin.Add(-time.Duration(secondsBefore * float64(time.Second))),
		End:   origin.Add(time.Duration(secondsAfter * float64(time.Second))),
	}
}

// WaveformPlan describes one waveform download run.
type WaveformPlan struct {
	EventName string
	Bounds    domain.Bounds
	Rotation  domain.Rotation
	Window    Window
	// OutputDir receives one file per fetched channel.
	OutputDir string
}

// StationPlan describes one station-metadata download run.
type StationPlan struct {
	EventName string
	// Stations to fetch metadata for.
	Stations []domain.Station
	// OutputDir receives one file per station.
	OutputDir string
}

// Report counts the outcomes of a download run.
type Report struct {
	Attempted  int
	Downloaded int
	Skipped    int
	Failed     int
}

// availableStation is the provider's availability listing entry.
type availableStation struct {
	Network   string  `json:"network"`
	Station   string  `json:"station"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}

// DownloadWaveforms fetches the waveforms missing for one event. It asks
// the provider which stations recorded inside the domain during the
// window, then walks the channel priority list per station.
func (c *Client) DownloadWaveforms(ctx context.Context, plan WaveformPlan) (Report, error) {
	if err := os.MkdirAll(plan.OutputDir, 0o755); err != nil {
		return Report{}, err
	}

	stations, err := c.availableStations(ctx, plan)
	if err != nil {
		return Report{}, err
	}
	c.logger.Info("event %s: provider lists %d stations in domain",
		plan.EventName, len(stations))

	jobID := uuid.NewString()
	var report Report
	for _, sta := range stations {
		if err := c.downloadStationWaveforms(ctx, plan, sta, jobID, &report); err != nil {
			return report, err
		}
	}
	return report, nil
}

// downloadStationWaveforms walks the channel priority list for one
// station and stops after the first pattern that yields any data.
func (c *Client) downloadStationWaveforms(ctx context.Context, plan WaveformPlan, sta availableStation, jobID string, report *Report) error {
	for _, pattern := range c.priorities {
		hits := 0
		for _, channel := range expandChannelPattern(pattern) {
			report.Attempted++

			have, err := c.ledger.HasArtifact(plan.EventName,
				sta.Network, sta.Station, channel, store.KindWaveform)
			if err != nil {
				return err
			}
			if have {
				report.Skipped++
				hits++
				continue
			}

			path := filepath.Join(plan.OutputDir,
				fmt.Sprintf("%s.%s..%s.mseed", sta.Network, sta.Station, channel))
			rec := store.Record{
				JobID:     jobID,
				EventName: plan.EventName,
				Network:   sta.Network,
				Station:   sta.Station,
				Channel:   channel,
				Kind:      store.KindWaveform,
				Path:      path,
				Latitude:  &sta.Latitude,
				Longitude: &sta.Longitude,
				Elevation: &sta.Elevation,
			}

			if err := c.fetchWaveform(ctx, plan, sta, channel, path); err != nil {
				c.logger.Warn("event %s: %s.%s %s failed: %v",
					plan.EventName, sta.Network, sta.Station, channel, err)
				rec.Status = store.StatusFailed
				report.Failed++
			} else {
				rec.Status = store.StatusDownloaded
				report.Downloaded++
				hits++
			}
			if err := c.ledger.Insert(rec); err != nil {
				return err
			}
		}
		if hits > 0 {
			return nil
		}
	}
	return nil
}

// DownloadStations fetches station metadata missing for the channels
// already on disk for one event.
func (c *Client) DownloadStations(ctx context.Context, plan StationPlan) (Report, error) {
	if err := os.MkdirAll(plan.OutputDir, 0o755); err != nil {
		return Report{}, err
	}

	jobID := uuid.NewString()
	var report Report
	for _, st := range plan.Stations {
		network, station := st.Network, st.Code
		report.Attempted++

		have, err := c.ledger.HasArtifact(plan.EventName,
			network, station, "", store.KindStation)
		if err != nil {
			return report, err
		}
		if have {
			report.Skipped++
			continue
		}

		path := filepath.Join(plan.OutputDir,
			fmt.Sprintf("%s.%s.xml", network, station))
		rec := store.Record{
			JobID:     jobID,
			EventName: plan.EventName,
			Network:   network,
			Station:   station,
			Kind:      store.KindStation,
			Path:      path,
		}

		if err := c.fetchStation(ctx, network, station, path); err != nil {
			c.logger.Warn("event %s: station %s.%s failed: %v",
				plan.EventName, network, station, err)
			rec.Status = store.StatusFailed
			report.Failed++
		} else {
			rec.Status = store.StatusDownloaded
			report.Downloaded++
		}
		if err := c.ledger.Insert(rec); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (c *Client) availableStations(ctx context.Context, plan WaveformPlan) ([]availableStation, error) {
	var stations []availableStation
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"minlatitude":    formatFloat(plan.Bounds.MinLatitude),
			"maxlatitude":    formatFloat(plan.Bounds.MaxLatitude),
			"minlongitude":   formatFloat(plan.Bounds.MinLongitude),
			"maxlongitude":   formatFloat(plan.Bounds.MaxLongitude),
			"rotation_axis":  formatAxis(plan.Rotation.Axis),
			"rotation_angle": formatFloat(plan.Rotation.Angle),
			"starttime":      plan.Window.Start.UTC().Format(time.RFC3339),
			"endtime":        plan.Window.End.UTC().Format(time.RFC3339),
		}).
		SetResult(&stations).
		Get("/availability")
	if err != nil {
		return nil, fmt.Errorf("query station availability: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("query station availability: provider returned %s", resp.Status())
	}
	return stations, nil
}

func (c *Client) fetchWaveform(ctx context.Context, plan WaveformPlan, sta availableStation, channel, path string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"network":   sta.Network,
			"station":   sta.Station,
			"channel":   channel,
			"starttime": plan.Window.Start.UTC().Format(time.RFC3339),
			"endtime":   plan.Window.End.UTC().Format(time.RFC3339),
		}).
		Get("/waveform")
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("provider returned %s", resp.Status())
	}
	return os.WriteFile(path, resp.Bytes(), 0o644)
}

func (c *Client) fetchStation(ctx context.Context, network, station, path string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"network": network,
			"station": station,
		}).
		Get("/station")
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("provider returned %s", resp.Status())
	}
	return os.WriteFile(path, resp.Bytes(), 0o644)
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

func formatAxis(axis [3]float64) string {
	return fmt.Sprintf("%g,%g,%g", axis[0], axis[1], axis[2])
}
