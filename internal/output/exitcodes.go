package output

import (
	"errors"

	"github.com/abulhuman/fcc-arithmetic-formatter/internal/arrange"
)

// Exit codes:
// 0 = Success
// 1 = User error (invalid problems, bad flags)
// 2 = System error (unreadable file, I/O error)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	// Kind is the validation kind name for problem-set failures, empty
	// otherwise.
	Kind  string
	Cause error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError turns a rejected problem set into a user error. The
// message is the fixed validation message.
func NewValidationError(verr *arrange.ValidationError) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: verr.Error(),
		Kind:    verr.Kind.String(),
		Cause:   verr,
	}
}

// AsExitError converts any error into an *ExitError. Validation errors keep
// their kind; other untyped errors become user errors.
func AsExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	var verr *arrange.ValidationError
	if errors.As(err, &verr) {
		return NewValidationError(verr)
	}
	return &ExitError{
		Code:    ExitUserError,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for untyped errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return AsExitError(err).Code
}
