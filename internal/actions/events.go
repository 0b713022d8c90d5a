package actions

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/format"
	"github.com/lasif-tools/cli/internal/quakeml"
	"github.com/lasif-tools/cli/internal/ui"
	"github.com/lasif-tools/cli/internal/usage"
)

// ListEvents prints the events known to the project.
func ListEvents(args []string, flags *dispatchers.ParsedFlags) error {
	return listEvents(args, flags, defaultDeps())
}

func listEvents(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	names, err := p.EventNames()
	if err != nil {
		return err
	}

	out := deps.App.Output
	_, _ = out.Printf("%s in project:\n", format.Count(len(names), "event"))
	for _, name := range names {
		_, _ = out.Printf("\t%s\n", name)
	}
	return nil
}

// EventInfo prints event metadata and the stations with data for it.
func EventInfo(args []string, flags *dispatchers.ParsedFlags) error {
	return eventInfo(args, flags, defaultDeps())
}

func eventInfo(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	info, err := p.EventInfo(args[0])
	if err != nil {
		return err
	}

	out := deps.App.Output
	_, _ = out.Printf("Earthquake with %s at %s\n",
		format.Magnitude(info.Magnitude, info.MagnitudeType), info.Region)
	_, _ = out.Printf("\tLatitude: %s, Longitude: %s, Depth: %s\n",
		format.Latitude(info.Latitude), format.Longitude(info.Longitude),
		format.Depth(info.DepthKM))
	_, _ = out.Printf("\t%s\n", format.OriginTime(info.OriginTime))

	ledger, err := p.OpenLedger()
	if err != nil {
		return err
	}
	defer ledger.Close()

	stations, err := ledger.StationsForEvent(info.Name)
	if err != nil {
		return err
	}
	_, _ = out.Printf("\nStation and waveform information available at %s:\n\n",
		format.Count(len(stations), "station"))

	rows := make([][]string, 0, len(stations))
	for _, st := range stations {
		row := []string{st.ID(), "-", "-", "-"}
		if st.HasCoordinates {
			row[1] = fmt.Sprintf("%.3f", st.Latitude)
			row[2] = fmt.Sprintf("%.3f", st.Longitude)
			row[3] = fmt.Sprintf("%.1f", st.Elevation)
		}
		rows = append(rows, row)
	}
	_, _ = out.Printf("%s", ui.Table(
		[]string{"id", "latitude", "longitude", "elevation"}, rows))
	return nil
}

// AddSpudEvent downloads a moment tensor page and stores it as a project
// event.
func AddSpudEvent(args []string, flags *dispatchers.ParsedFlags) error {
	return addSpudEvent(args, flags, defaultDeps())
}

func addSpudEvent(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	url := args[0]

	event, err := deps.FetchQuakeML(context.Background(), url)
	if err != nil {
		return usage.Commandf("could not load an event from %q: %v", url, err)
	}

	name, err := spudEventName(event)
	if err != nil {
		return usage.Command(err.Error())
	}
	path := filepath.Join(p.Layout.Events, name+".xml")
	if err := quakeml.Write(path, *event); err != nil {
		return err
	}

	_, _ = deps.App.Output.Printf("Added event %s:\n\t%s\n", name, path)
	return nil
}

// spudEventName derives a stable filename from the event's region and
// origin date.
func spudEventName(event *quakeml.Event) (string, error) {
	origin, err := event.PreferredOrigin()
	if err != nil {
		return "", fmt.Errorf("fetched document: %w", err)
	}
	originTime, err := origin.Time.Parse()
	if err != nil {
		return "", fmt.Errorf("fetched document: %w", err)
	}

	region := event.Region()
	if region == "" {
		region = "event"
	}
	region = strings.ToLower(region)
	region = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, region)
	return fmt.Sprintf("%s_%s", region, originTime.Format("2006-01-02")), nil
}
