package cli

import "github.com/lasif-tools/cli/internal/dispatchers"

var (
	EventNameArg = []dispatchers.ArgSpec{
		{
			Name:        "EVENT_NAME",
			Description: "Name of an event, see list_events",
			Required:    true,
		},
	}

	FolderPathArg = []dispatchers.ArgSpec{
		{
			Name:        "FOLDER_PATH",
			Description: "Path of the new project folder, must not exist yet",
			Required:    true,
		},
	}

	SpudURLArg = []dispatchers.ArgSpec{
		{
			Name:        "URL",
			Description: "SPUD moment tensor page URL",
			Required:    true,
		},
	}

	ModelNameArg = []dispatchers.ArgSpec{
		{
			Name:        "MODEL_NAME",
			Description: "Name of a model, see list_models",
			Required:    true,
		},
	}

	SolverArg = []dispatchers.ArgSpec{
		{
			Name:        "SOLVER",
			Description: "Solver to generate a template for (ses3d_4_0)",
			Required:    true,
		},
	}

	PlotSTFArgs = []dispatchers.ArgSpec{
		{
			Name:        "SOURCE_TIME_FCT",
			Description: "Name of a source time function, see list_stf",
			Required:    true,
		},
		{
			Name:        "NPTS",
			Description: "Number of samples",
			Required:    true,
		},
		{
			Name:        "DELTA",
			Description: "Sample interval in seconds",
			Required:    true,
		},
	}

	GenerateInputFilesArgs = []dispatchers.ArgSpec{
		{
			Name:        "EVENT_NAME",
			Description: "Name of an event, see list_events",
			Required:    true,
		},
		{
			Name:        "INPUT_FILE_TEMPLATE",
			Description: "Name of a template, see list_input_file_templates",
			Required:    true,
		},
		{
			Name:        "TYPE",
			Description: "Simulation type: normal_simulation, adjoint_forward, adjoint_reverse",
			Required:    true,
		},
		{
			Name:        "SOURCE_TIME_FCT",
			Description: "Name of a source time function, see list_stf",
			Required:    true,
		},
	}
)
