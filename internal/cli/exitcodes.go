package cli

import (
	"errors"

	"github.com/thenoetrevino/termllo/internal/config"
	"github.com/thenoetrevino/termllo/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, Trello API failures, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// missing credentials in the config file.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: board, list or card index out of range.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a snapshot or API response that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: negative positions, empty card names, over-long fields.
	ExitValidation = 5
)

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	var usage *UsageError
	var cacheErr *models.CacheReadError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage), errors.Is(err, config.ErrMissingCredentials):
		return ExitUsage
	case models.IsNotFound(err):
		return ExitNotFound
	case models.IsValidation(err):
		return ExitValidation
	case errors.As(err, &cacheErr):
		return ExitDataErr
	default:
		return ExitError
	}
}

// ErrorCode returns the machine readable code used in JSON error output
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	}
	if models.IsTransport(err) {
		return "TRELLO_ERROR"
	}
	return "ERROR"
}

// UsageError reports a wrong combination of flags or arguments
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}
