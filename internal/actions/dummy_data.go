package actions

import (
	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/format"
)

// GenerateDummyData creates seeded random events and waveform
// placeholders for trying the tool out.
func GenerateDummyData(args []string, flags *dispatchers.ParsedFlags) error {
	return generateDummyData(args, flags, defaultDeps())
}

func generateDummyData(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}

	report, err := p.GenerateDummyData()
	if err != nil {
		return err
	}

	out := deps.App.Output
	_, _ = out.Printf("Generated %s.\n", format.Count(report.Events, "random event"))
	_, _ = out.Printf("Generated %s at %s.\n",
		format.Count(report.Waveforms, "waveform placeholder"),
		format.Count(report.Stations, "station"))
	return nil
}
