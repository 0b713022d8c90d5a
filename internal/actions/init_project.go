package actions

import (
	"path/filepath"

	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/project"
)

// InitProject creates a new project skeleton.
func InitProject(args []string, flags *dispatchers.ParsedFlags) error {
	return initProject(args, flags, defaultDeps())
}

func initProject(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	p, err := project.Init(path, filepath.Base(path))
	if err != nil {
		return err
	}

	_, _ = deps.App.Output.Printf("Initialized project in:\n\t%s\n", p.Layout.Root)
	return nil
}
