// Package cli holds the static command registry. Every command the
// binary understands is registered here; nothing is discovered at
// runtime.
package cli

import (
	"github.com/lasif-tools/cli/internal/actions"
	"github.com/lasif-tools/cli/internal/dispatchers"
)

// BuildTree registers every command and returns the root node. Building
// the tree twice yields the same set of commands.
func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "lasif",
		Summary: "Workflow tool for seismic waveform inversion projects",
		Usage:   "lasif <command> [args] [flags]",
		Flags:   RootFlags,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "init_project",
		Parent:      root,
		Summary:     "Create a new project",
		Usage:       "lasif init_project FOLDER_PATH",
		Description: "Creates a new project at FOLDER_PATH. FOLDER_PATH must not exist yet and will be created.",
		Args:        FolderPathArg,
		Action:      actions.InitProject,
		Category:    dispatchers.CategoryProject,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "info",
		Parent:   root,
		Summary:  "Print information about the current project",
		Usage:    "lasif info",
		Action:   actions.Info,
		Category: dispatchers.CategoryProject,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list_events",
		Parent:   root,
		Summary:  "List all events in the project",
		Usage:    "lasif list_events",
		Action:   actions.ListEvents,
		Category: dispatchers.CategoryEvents,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "event_info",
		Parent:      root,
		Summary:     "Print information about one event",
		Usage:       "lasif event_info EVENT_NAME",
		Description: "Prints the event metadata and a table of the stations with waveform data for it.",
		Args:        EventNameArg,
		Action:      actions.EventInfo,
		Category:    dispatchers.CategoryEvents,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "add_spud_event",
		Parent:      root,
		Summary:     "Add an event from the IRIS SPUD GCMT webservice",
		Usage:       "lasif add_spud_event URL",
		Description: "Fetches the moment tensor page at URL as QuakeML and stores it in the EVENTS folder.",
		Args:        SpudURLArg,
		Action:      actions.AddSpudEvent,
		Category:    dispatchers.CategoryEvents,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "plot_domain",
		Parent:   root,
		Summary:  "Plot the project's domain",
		Usage:    "lasif plot_domain",
		Action:   actions.PlotDomain,
		Category: dispatchers.CategoryPlotting,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "plot_event",
		Parent:   root,
		Summary:  "Plot one event and the stations with data for it",
		Usage:    "lasif plot_event EVENT_NAME",
		Args:     EventNameArg,
		Action:   actions.PlotEvent,
		Category: dispatchers.CategoryPlotting,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "plot_events",
		Parent:   root,
		Summary:  "Plot all events on the domain",
		Usage:    "lasif plot_events",
		Action:   actions.PlotEvents,
		Category: dispatchers.CategoryPlotting,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list_models",
		Parent:   root,
		Summary:  "List all models in the project",
		Usage:    "lasif list_models",
		Action:   actions.ListModels,
		Category: dispatchers.CategoryModels,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "plot_model",
		Parent:   root,
		Summary:  "Browse the components of one model interactively",
		Usage:    "lasif plot_model MODEL_NAME",
		Args:     ModelNameArg,
		Action:   actions.PlotModel,
		Category: dispatchers.CategoryModels,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "download_waveforms",
		Parent:      root,
		Summary:     "Download missing waveform files for one event",
		Usage:       "lasif download_waveforms EVENT_NAME",
		Description: "Fetches the waveforms recorded inside the domain during the event window into DATA/EVENT_NAME/raw. Files already recorded in the download ledger are skipped.",
		Flags:       DownloadFlags,
		Args:        EventNameArg,
		Action:      actions.DownloadWaveforms,
		Category:    dispatchers.CategoryDownload,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "download_stations",
		Parent:      root,
		Summary:     "Download missing station files for one event",
		Usage:       "lasif download_stations EVENT_NAME",
		Description: "Fetches station metadata for every channel already downloaded for the event.",
		Flags:       DownloadFlags,
		Args:        EventNameArg,
		Action:      actions.DownloadStations,
		Category:    dispatchers.CategoryDownload,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "download_history",
		Parent:   root,
		Summary:  "List the recorded download attempts for one event",
		Usage:    "lasif download_history EVENT_NAME",
		Args:     EventNameArg,
		Action:   actions.DownloadHistory,
		Category: dispatchers.CategoryDownload,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list_input_file_templates",
		Parent:   root,
		Summary:  "List all input file templates",
		Usage:    "lasif list_input_file_templates",
		Action:   actions.ListInputFileTemplates,
		Category: dispatchers.CategoryInputFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "generate_input_file_template",
		Parent:   root,
		Summary:  "Generate a fresh input file template for a solver",
		Usage:    "lasif generate_input_file_template SOLVER",
		Args:     SolverArg,
		Action:   actions.GenerateInputFileTemplate,
		Category: dispatchers.CategoryInputFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "generate_input_files",
		Parent:      root,
		Summary:     "Generate the solver input files for one event",
		Usage:       "lasif generate_input_files EVENT_NAME INPUT_FILE_TEMPLATE TYPE SOURCE_TIME_FCT",
		Description: "TYPE denotes the type of simulation to run: normal_simulation, adjoint_forward, or adjoint_reverse.",
		Args:        GenerateInputFilesArgs,
		Action:      actions.GenerateInputFiles,
		Category:    dispatchers.CategoryInputFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list_stf",
		Parent:   root,
		Summary:  "List all source time functions",
		Usage:    "lasif list_stf",
		Action:   actions.ListSTF,
		Category: dispatchers.CategoryInputFiles,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "plot_stf",
		Parent:      root,
		Summary:     "Preview a source time function in the terminal",
		Usage:       "lasif plot_stf SOURCE_TIME_FCT NPTS DELTA",
		Description: "NPTS is the number of samples, DELTA the sample interval in seconds.",
		Args:        PlotSTFArgs,
		Action:      actions.PlotSTF,
		Category:    dispatchers.CategoryPlotting,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "generate_dummy_data",
		Parent:      root,
		Summary:     "Generate random example events and waveforms",
		Usage:       "lasif generate_dummy_data",
		Description: "Useful for debugging, testing, and following the tutorial.",
		Action:      actions.GenerateDummyData,
		Category:    dispatchers.CategoryProject,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show the lasif version",
		Usage:    "lasif version",
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryProject,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "help",
		Parent:  root,
		Summary: "Show help for a command",
		Usage:   "lasif help [command]",
	})

	return root
}
