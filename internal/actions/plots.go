package actions

import (
	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/format"
	"github.com/lasif-tools/cli/internal/visualization"
)

// PlotDomain renders the project's domain extent in the terminal.
func PlotDomain(args []string, flags *dispatchers.ParsedFlags) error {
	return plotDomain(args, flags, defaultDeps())
}

func plotDomain(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	out := visualization.DomainMap(p.Config.Bounds(), p.Config.Rotation(),
		nil, visualization.DefaultMapOptions)
	deps.App.Output.Pager(out)
	return nil
}

// PlotEvent renders one event and the stations that recorded it.
func PlotEvent(args []string, flags *dispatchers.ParsedFlags) error {
	return plotEvent(args, flags, defaultDeps())
}

func plotEvent(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	info, err := p.EventInfo(args[0])
	if err != nil {
		return err
	}

	markers := []visualization.Marker{{
		Latitude:  info.Latitude,
		Longitude: info.Longitude,
		Glyph:     visualization.EventGlyph,
		Label:     info.Name,
	}}

	ledger, err := p.OpenLedger()
	if err != nil {
		return err
	}
	defer ledger.Close()
	stations, err := ledger.StationsForEvent(info.Name)
	if err != nil {
		return err
	}
	for _, st := range stations {
		if !st.HasCoordinates {
			continue
		}
		markers = append(markers, visualization.Marker{
			Latitude:  st.Latitude,
			Longitude: st.Longitude,
			Glyph:     visualization.StationGlyph,
			Label:     st.ID(),
		})
	}

	view := visualization.DomainMap(p.Config.Bounds(), p.Config.Rotation(),
		markers, visualization.DefaultMapOptions)
	view += info.Name + ": " + format.Magnitude(info.Magnitude, info.MagnitudeType) +
		", " + format.Count(len(stations), "station") + " with data\n"
	deps.App.Output.Pager(view)
	return nil
}

// PlotEvents renders all project events on the domain extent.
func PlotEvents(args []string, flags *dispatchers.ParsedFlags) error {
	return plotEvents(args, flags, defaultDeps())
}

func plotEvents(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	infos, err := p.AllEventInfos()
	if err != nil {
		return err
	}

	view := visualization.DomainMap(p.Config.Bounds(), p.Config.Rotation(),
		visualization.EventMarkers(infos), visualization.DefaultMapOptions)
	view += format.Count(len(infos), "event") + " plotted\n"
	deps.App.Output.Pager(view)
	return nil
}
