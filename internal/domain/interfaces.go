package domain

import "io"

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}
