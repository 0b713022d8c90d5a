package usage

import "fmt"

// CommandError is the single error kind a command handler may surface to
// the user. It carries a one-line display message; the dispatcher prints
// it highlighted, followed by the command's help text, and exits 1.
//
// Handlers are responsible for converting collaborator failures they want
// to present nicely into a CommandError. Anything else propagates to the
// process boundary untouched.
type CommandError struct {
	Message string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Message
}

// Command creates a CommandError with the given message.
func Command(message string) *CommandError {
	return &CommandError{Message: message}
}

// Commandf creates a CommandError with a formatted message.
func Commandf(format string, args ...any) *CommandError {
	return &CommandError{Message: fmt.Sprintf(format, args...)}
}

var _ error = (*CommandError)(nil)
