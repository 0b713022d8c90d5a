package actions

import (
	"context"

	"github.com/lasif-tools/cli/internal/app"
	"github.com/lasif-tools/cli/internal/domain"
	"github.com/lasif-tools/cli/internal/downloader"
	"github.com/lasif-tools/cli/internal/project"
	"github.com/lasif-tools/cli/internal/quakeml"
	"github.com/lasif-tools/cli/internal/store"
	"github.com/lasif-tools/cli/internal/visualization"
)

// liveApp is set once by main. Tests inject their own dependencies and
// leave it alone.
var liveApp *app.Application

// Configure hands the wired application to the action layer.
func Configure(a *app.Application) {
	liveApp = a
}

type actionDependencies struct {
	App         *app.Application
	Version     func() string
	OpenProject func() (*project.Project, error)

	NewDownloadClient func(opts downloader.Options, ledger *store.Store, logger domain.Logger) *downloader.Client
	FetchQuakeML      func(ctx context.Context, url string) (*quakeml.Event, error)
	BrowseModel       func(config visualization.BrowserConfig) error
}

func defaultDeps() actionDependencies {
	a := liveApp
	if a == nil {
		a = app.New(app.Options{})
	}
	return actionDependencies{
		App:               a,
		Version:           func() string { return app.Version },
		OpenProject:       func() (*project.Project, error) { return project.Open(".") },
		NewDownloadClient: downloader.New,
		FetchQuakeML:      downloader.FetchQuakeML,
		BrowseModel:       visualization.BrowseModel,
	}
}
