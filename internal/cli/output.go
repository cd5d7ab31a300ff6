package cli

import (
	"errors"
	"fmt"
)

// Process exit codes. Scripts distinguish "the todo wasn't there" from
// "the command itself was broken".
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // operation failed, e.g. completing an id that does not exist
	ExitCommandError = 2 // bad arguments, unreadable config, unreachable database
)

// ExitError carries an exit code alongside an error so RunE implementations
// can decide the process outcome without touching os.Exit themselves.
type ExitError struct {
	Code    int
	Message string
	Err     error // optional underlying cause
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError builds an ExitError with no underlying cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code and context to an existing error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps an error to a process exit code; anything that is not an
// ExitError counts as a plain failure.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
