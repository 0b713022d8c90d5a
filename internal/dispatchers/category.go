package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryProject                       // init_project, info
	CategoryEvents                        // listing and inspecting events
	CategoryPlotting                      // terminal renderings
	CategoryDownload                      // waveform/station retrieval
	CategoryInputFiles                    // solver templates and input files
	CategoryModels                        // earth model handling
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryProject:
		return "project management"
	case CategoryEvents:
		return "events"
	case CategoryPlotting:
		return "plotting"
	case CategoryDownload:
		return "data download"
	case CategoryInputFiles:
		return "solver input files"
	case CategoryModels:
		return "earth models"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryProject,
	CategoryEvents,
	CategoryDownload,
	CategoryPlotting,
	CategoryInputFiles,
	CategoryModels,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
