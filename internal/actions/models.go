package actions

import (
	"os"
	"path/filepath"

	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/format"
	"github.com/lasif-tools/cli/internal/usage"
	"github.com/lasif-tools/cli/internal/visualization"
)

// ListModels prints the earth models of the project.
func ListModels(args []string, flags *dispatchers.ParsedFlags) error {
	return listModels(args, flags, defaultDeps())
}

func listModels(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	models, err := p.Models()
	if err != nil {
		return err
	}

	out := deps.App.Output
	_, _ = out.Printf("%s in project:\n", format.Count(len(models), "model"))
	for _, model := range models {
		_, _ = out.Printf("\t%s\n", model)
	}
	return nil
}

// PlotModel opens the interactive component and depth browser for one
// model.
func PlotModel(args []string, flags *dispatchers.ParsedFlags) error {
	return plotModel(args, flags, defaultDeps())
}

func plotModel(args []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	p, err := deps.OpenProject()
	if err != nil {
		return err
	}
	modelName := args[0]

	modelDir := filepath.Join(p.Layout.Models, modelName)
	entries, err := os.ReadDir(modelDir)
	if err != nil {
		if os.IsNotExist(err) {
			return usage.Commandf("model %q not known to this project", modelName)
		}
		return err
	}

	var components []visualization.ModelComponent
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return err
		}
		components = append(components, visualization.ModelComponent{
			Name:      e.Name(),
			SizeBytes: info.Size(),
		})
	}

	bounds := p.Config.Bounds()
	return deps.BrowseModel(visualization.BrowserConfig{
		ModelName:  modelName,
		Components: components,
		MinDepthKM: bounds.MinDepthKM,
		MaxDepthKM: bounds.MaxDepthKM,
	})
}
