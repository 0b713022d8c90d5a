// Package app wires the per-process collaborators: writer, styler, and
// logger. Commands obtain a project themselves since most of them must
// work before or outside one.
package app

import (
	"io"

	"github.com/lasif-tools/cli/internal/domain"
	"github.com/lasif-tools/cli/internal/log"
	"github.com/lasif-tools/cli/internal/paths"
	"github.com/lasif-tools/cli/internal/project"
	"github.com/lasif-tools/cli/internal/ui"
	"github.com/lasif-tools/cli/internal/ui/style"
)

// Name is the binary name used in help and usage output.
const Name = "lasif"

// Version is overridden at build time via -ldflags.
var Version = "0.1.0-dev"

// Options configures the application factory.
type Options struct {
	PagerDisabled bool
	PagerOverride string
	StyleEnabled  bool
}

// Application bundles the collaborators handed to command actions.
type Application struct {
	Logger domain.Logger
	Output *ui.Writer
	Styler domain.Styler
}

// New creates the Application. When the working directory is inside a
// project, the logger writes to the project's LOGS folder; outside one,
// logging is off.
func New(opts Options) *Application {
	var logger domain.Logger = log.NopLogger{}
	if root, err := project.Find("."); err == nil {
		layout := paths.NewLayout(root)
		if l, err := log.New(layout.LogFile("cli.log"), log.LevelDebug); err == nil {
			logger = l
		}
	}

	style.Init(opts.StyleEnabled)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}

	return &Application{
		Logger: logger,
		Output: ui.NewWriter(writerOpts...),
		Styler: style.NewStyler(),
	}
}

// NewForTesting builds an Application writing to the given sink, with no
// logging, paging, or styling.
func NewForTesting(out io.Writer) *Application {
	return &Application{
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(out, ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
}

// Close releases application resources. Calling it more than once is
// fine; only the first call closes the logger.
func (a *Application) Close() error {
	if a.Logger == nil {
		return nil
	}
	err := a.Logger.Close()
	a.Logger = nil
	return err
}
