package actions

import "github.com/lasif-tools/cli/internal/dispatchers"

// ShowVersion prints the binary version.
func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	_, _ = deps.App.Output.Printf("lasif version %v\n", deps.Version())
	return nil
}
