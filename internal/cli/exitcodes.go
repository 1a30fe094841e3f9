package cli

import "errors"

// Exit codes for stepmark.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitSyntaxError indicates the input failed to parse.
	ExitSyntaxError = 1

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors used to select exit codes. errSyntaxReported also
// signals that the diagnostic has already been rendered.
var (
	errSyntaxReported = errors.New("syntax error reported")
	errConfig         = errors.New("config error")
	errIO             = errors.New("io error")
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errSyntaxReported):
		return ExitSyntaxError
	case errors.Is(err, errConfig):
		return ExitConfigError
	case errors.Is(err, errIO):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// ErrAlreadyReported returns true if the error's diagnostic has already
// been rendered and should not be logged again.
func ErrAlreadyReported(err error) bool {
	return errors.Is(err, errSyntaxReported)
}
