package actions

import (
	"strconv"

	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/format"
	"github.com/lasif-tools/cli/internal/usage"
	"github.com/lasif-tools/cli/internal/visualization"
)

// ListSTF prints the source time functions known to the project.
func ListSTF(args []string, flags *dispatchers.ParsedFlags) error {
	return listSTF(args, flags, defaultDeps())
}

func listSTF(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	names, err := p.STFNames()
	if err != nil {
		return err
	}

	out := deps.App.Output
	_, _ = out.Printf("%s in project:\n",
		format.Count(len(names), "defined source time function"))
	for _, name := range names {
		_, _ = out.Printf("\t%s\n", name)
	}
	return nil
}

// PlotSTF renders a source time function preview in the terminal.
func PlotSTF(args []string, flags *dispatchers.ParsedFlags) error {
	return plotSTF(args, flags, defaultDeps())
}

func plotSTF(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	name := args[0]
	npts, err := strconv.Atoi(args[1])
	if err != nil || npts <= 0 {
		return usage.Commandf("NPTS must be a positive integer, got %q", args[1])
	}
	delta, err := strconv.ParseFloat(args[2], 64)
	if err != nil || delta <= 0 {
		return usage.Commandf("DELTA must be a positive number, got %q", args[2])
	}

	stf, err := p.LoadSTF(name)
	if err != nil {
		return err
	}
	samples := stf.Evaluate(npts, delta)

	view := deps.App.Styler.Header(name) + "\n" +
		visualization.Waveform(samples, delta, visualization.DefaultWaveformOptions)
	deps.App.Output.Pager(view)
	return nil
}
