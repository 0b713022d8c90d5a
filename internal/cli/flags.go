package cli

import "github.com/lasif-tools/cli/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	DownloadFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--provider"},
			ValueHint:   "<url>",
			Description: "Override the provider URL from the project config",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
