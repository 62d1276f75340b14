package errors

import (
	"errors"
	"fmt"
)

// Exit codes for envctl
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitCondaMissing  = 2
	ExitCreateFailed  = 3
	ExitInstallFailed = 4
	ExitConfigError   = 5
)

// CtlError is the base error type for envctl
type CtlError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CtlError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CtlError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *CtlError) ExitCode() int {
	return e.Code
}

// New creates a new CtlError
func New(code int, message string) *CtlError {
	return &CtlError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a CtlError
func Wrap(code int, message string, cause error) *CtlError {
	return &CtlError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// CondaMissing returns an error for an unresolvable conda executable
func CondaMissing(cause error) *CtlError {
	return Wrap(ExitCondaMissing, "conda not found on PATH", cause)
}

// CreateFailed returns an error for a failed environment creation.
// output is the creation command's combined stdout/stderr, reproduced
// verbatim so the operator sees conda's own diagnostic.
func CreateFailed(name, output string, cause error) *CtlError {
	return Wrap(ExitCreateFailed, fmt.Sprintf("failed to create environment %s:\n%s", name, output), cause)
}

// InstallFailed returns an error for a failed dependency install
func InstallFailed(what string, cause error) *CtlError {
	return Wrap(ExitInstallFailed, fmt.Sprintf("failed to install %s", what), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *CtlError {
	return Wrap(ExitConfigError, message, cause)
}

// RemoveFailed returns an error for a failed environment removal
func RemoveFailed(name string, cause error) *CtlError {
	return Wrap(ExitGeneralError, fmt.Sprintf("failed to remove environment %s", name), cause)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetExitCode extracts the exit code from an error chain.
// Returns ExitSuccess for nil and ExitGeneralError for untyped errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ctlErr *CtlError
	if errors.As(err, &ctlErr) {
		return ctlErr.Code
	}

	return ExitGeneralError
}
