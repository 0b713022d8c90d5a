package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/lasif-tools/cli/internal/domain"
	"golang.org/x/term"
)

// Writer implements domain.OutputWriter for stdout.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager if appropriate.
func (w *Writer) Pager(content string) {
	if w.pagerDisabled {
		fmt.Fprint(w.out, content)
		return
	}

	// Non-file outputs (like bytes.Buffer) are never paged.
	f, ok := w.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w.out, content)
		return
	}

	if w.pagerOverride != "" {
		if isBypassPager(w.pagerOverride) {
			fmt.Fprint(w.out, content)
			return
		}
		runPagerCmd(w.pagerOverride, content)
		return
	}

	if w.envGetter != nil {
		if envPager := w.envGetter("PAGER"); envPager != "" {
			if isBypassPager(envPager) {
				fmt.Fprint(w.out, content)
				return
			}
			runPagerCmd(envPager, content)
			return
		}
	}

	runPager("less", []string{"-FRSX"}, content)
}

var _ domain.OutputWriter = (*Writer)(nil)
