package actions

import (
	"strings"

	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/format"
)

// ListInputFileTemplates prints the input file templates of the project.
func ListInputFileTemplates(args []string, flags *dispatchers.ParsedFlags) error {
	return listInputFileTemplates(args, flags, defaultDeps())
}

func listInputFileTemplates(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	names, err := p.TemplateNames()
	if err != nil {
		return err
	}

	out := deps.App.Output
	_, _ = out.Printf("%s in project:\n", format.Count(len(names), "input file template"))
	for _, name := range names {
		_, _ = out.Printf("\t%s\n", name)
	}
	return nil
}

// GenerateInputFileTemplate writes a fresh solver template.
func GenerateInputFileTemplate(args []string, flags *dispatchers.ParsedFlags) error {
	return generateInputFileTemplate(args, flags, defaultDeps())
}

func generateInputFileTemplate(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}

	path, err := p.GenerateTemplate(args[0])
	if err != nil {
		return err
	}
	_, _ = deps.App.Output.Printf("Created template at %q. Please edit it.\n", path)
	return nil
}

// GenerateInputFiles produces solver input files for one event.
func GenerateInputFiles(args []string, flags *dispatchers.ParsedFlags) error {
	return generateInputFiles(args, flags, defaultDeps())
}

func generateInputFiles(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	eventName := args[0]
	templateName := args[1]
	simulationType := strings.ToLower(args[2])
	stfName := args[3]

	outDir, err := p.GenerateInputFiles(eventName, templateName, simulationType, stfName)
	if err != nil {
		return err
	}
	_, _ = deps.App.Output.Printf("Generated input files in:\n\t%s\n", outDir)
	return nil
}
