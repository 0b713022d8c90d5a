package usage

import "fmt"

// UnknownCommand is returned when the first token does not name a command.
func UnknownCommand(command string, suggestions ...string) *Error {
	return &Error{
		Kind:        ErrUnknownCommand,
		Message:     fmt.Sprintf("lasif: '%s' is not a lasif command.", command),
		Suggestions: suggestions,
	}
}

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("lasif: invalid flag '%s'", flag),
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("lasif: missing required argument '%s'", arg),
	}
}

// SurplusArgument is returned when more positional arguments are given
// than the command takes.
func SurplusArgument(arg string) *Error {
	return &Error{
		Kind:    ErrSurplusArgument,
		Message: fmt.Sprintf("lasif: unexpected argument '%s'. No other arguments allowed.", arg),
	}
}

// NotInProject is returned when no project root can be found above the
// working directory.
func NotInProject() *Error {
	return &Error{
		Kind:    ErrNotInProject,
		Message: "Not inside a LASIF project.",
	}
}
