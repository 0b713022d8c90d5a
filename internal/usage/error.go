package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrInvalidFlag
	ErrMissingArgument
	ErrSurplusArgument
	ErrNotInProject
)

// Exit codes:
//
//	Exit 1: environment/dispatch errors
//	  - Unknown errors
//	  - Unknown command
//	  - Not inside a project
//	Exit 2: user input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Surplus argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:         1,
	ErrUnknownCommand:  1,
	ErrInvalidFlag:     2,
	ErrMissingArgument: 2,
	ErrSurplusArgument: 2,
	ErrNotInProject:    1,
}

// Error represents a user-facing usage error with semantic type information.
// It is produced by the dispatcher itself, never by command handlers; those
// return *CommandError instead.
type Error struct {
	Kind    ErrorKind
	Message string

	// Suggestions holds similar command names for unknown-command errors.
	Suggestions []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
