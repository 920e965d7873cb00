package runtime

import (
	"github.com/manav03panchal/countdown/internal/errors"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitSystemError = 1
	ExitUserError   = 2
)

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	return errors.GetSuggestion(err)
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	return errors.FormatError(err)
}

// ExitCode maps an error to a process exit code. Input problems exit with 2,
// everything else with 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsSystemError(err):
		return ExitSystemError
	case errors.IsUserError(err):
		return ExitUserError
	default:
		return ExitSystemError
	}
}
