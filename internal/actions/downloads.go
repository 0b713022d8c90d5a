package actions

import (
	"context"
	"os"
	"time"

	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/domain"
	"github.com/lasif-tools/cli/internal/downloader"
	"github.com/lasif-tools/cli/internal/format"
	"github.com/lasif-tools/cli/internal/log"
	"github.com/lasif-tools/cli/internal/project"
	"github.com/lasif-tools/cli/internal/ui"
	"github.com/lasif-tools/cli/internal/usage"
)

// DownloadWaveforms fetches the missing waveform files for one event.
func DownloadWaveforms(args []string, flags *dispatchers.ParsedFlags) error {
	return downloadWaveforms(args, flags, defaultDeps())
}

func downloadWaveforms(args []string, flags *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	eventName := args[0]
	info, err := p.EventInfo(eventName)
	if err != nil {
		return err
	}

	settings := p.Config.DownloadSettings
	if flags != nil {
		if provider := flags.String("--provider", ""); provider != "" {
			settings.ProviderURL = provider
		}
	}
	ledger, err := p.OpenLedger()
	if err != nil {
		return err
	}
	defer ledger.Close()

	logger := downloadLogger(p, "waveform_download_log.txt")
	defer logger.Close()

	client := deps.NewDownloadClient(downloader.Options{
		BaseURL:  settings.ProviderURL,
		Username: settings.ArclinkUsername,
	}, ledger, logger)
	defer client.Close()

	// Only the region inside the boundary buffer carries usable data.
	plan := downloader.WaveformPlan{
		EventName: eventName,
		Bounds:    p.Config.Bounds().Shrink(p.Config.Domain.Bounds.BoundaryWidth),
		Rotation:  p.Config.Rotation(),
		Window:    downloader.NewWindow(info.OriginTime, settings.SecondsBeforeEvent, settings.SecondsAfterEvent),
		OutputDir: p.Layout.RawData(eventName),
	}

	report, err := client.DownloadWaveforms(context.Background(), plan)
	if err != nil {
		return err
	}
	printReport(deps, eventName, report)
	return nil
}

// DownloadStations fetches the missing station files for the channels
// already downloaded for one event.
func DownloadStations(args []string, flags *dispatchers.ParsedFlags) error {
	return downloadStations(args, flags, defaultDeps())
}

func downloadStations(args []string, flags *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	eventName := args[0]
	if ok, err := p.HasEvent(eventName); err != nil {
		return err
	} else if !ok {
		return usage.Commandf("event %q not known to this project", eventName)
	}

	if _, err := os.Stat(p.Layout.RawData(eventName)); os.IsNotExist(err) {
		return usage.Commandf("no waveform data for event %q, run download_waveforms first", eventName)
	}

	ledger, err := p.OpenLedger()
	if err != nil {
		return err
	}
	defer ledger.Close()

	stations, err := ledger.StationsForEvent(eventName)
	if err != nil {
		return err
	}
	if len(stations) == 0 {
		return usage.Commandf("no downloaded channels recorded for event %q", eventName)
	}

	logger := downloadLogger(p, "station_download_log.txt")
	defer logger.Close()

	settings := p.Config.DownloadSettings
	if flags != nil {
		if provider := flags.String("--provider", ""); provider != "" {
			settings.ProviderURL = provider
		}
	}
	client := deps.NewDownloadClient(downloader.Options{
		BaseURL:  settings.ProviderURL,
		Username: settings.ArclinkUsername,
	}, ledger, logger)
	defer client.Close()

	report, err := client.DownloadStations(context.Background(), downloader.StationPlan{
		EventName: eventName,
		Stations:  stations,
		OutputDir: p.Layout.StationXML,
	})
	if err != nil {
		return err
	}
	printReport(deps, eventName, report)
	return nil
}

// DownloadHistory lists the recorded download attempts for one event.
func DownloadHistory(args []string, flags *dispatchers.ParsedFlags) error {
	return downloadHistory(args, flags, defaultDeps())
}

func downloadHistory(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	eventName := args[0]

	ledger, err := p.OpenLedger()
	if err != nil {
		return err
	}
	defer ledger.Close()

	records, err := ledger.ListByEvent(eventName)
	if err != nil {
		return err
	}

	out := deps.App.Output
	_, _ = out.Printf("%s recorded for event %s:\n\n",
		format.Count(len(records), "download"), eventName)
	if len(records) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		id := r.Network + "." + r.Station
		if r.Channel != "" {
			id += "." + r.Channel
		}
		rows = append(rows, []string{
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.Kind.String(),
			r.Status.String(),
			id,
		})
	}
	_, _ = out.Printf("%s", ui.Table([]string{"time", "kind", "status", "channel"}, rows))
	return nil
}

// downloadLogger opens the per-run download log inside LOGS. Falls back
// to a no-op logger when the file cannot be created.
func downloadLogger(p *project.Project, name string) domain.Logger {
	if l, err := log.New(p.Layout.LogFile(name), log.LevelInfo); err == nil {
		return l
	}
	return log.NopLogger{}
}

func printReport(deps actionDependencies, eventName string, report downloader.Report) {
	styler := deps.App.Styler
	line := styler.Success(
		"Event " + eventName + ": " +
			format.Count(report.Downloaded, "file") + " downloaded")
	if report.Skipped > 0 {
		line += ", " + format.Count(report.Skipped, "file") + " already present"
	}
	if report.Failed > 0 {
		line += ", " + styler.Warning(format.Count(report.Failed, "file")+" failed")
	}
	_, _ = deps.App.Output.Println(line)
}
