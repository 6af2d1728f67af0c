package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution (all cases passed).
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the whole run timed out.
	ExitErrorFailures = 3   // Indicates one or more test cases failed.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ArgumentError represents a malformed exercise invocation: wrong argument
// count or an argument of the wrong type. It is produced by the dynamic
// dispatch layer when a recorded case does not match the exercise signature.
type ArgumentError struct {
	// Exercise is the name of the exercise that rejected the invocation.
	Exercise string
	// Index is the zero-based position of the offending argument, or -1 for
	// an arity mismatch.
	Index int
	// Want describes the expected arity or argument type.
	Want string
	// Got describes what was actually supplied.
	Got string
}

// Error returns a formatted message describing the malformed invocation.
//
// Returns:
//   - string: The error message string.
func (e ArgumentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("exercise %q: want %s, got %s", e.Exercise, e.Want, e.Got)
	}
	return fmt.Sprintf("exercise %q: argument %d: want %s, got %s", e.Exercise, e.Index, e.Want, e.Got)
}

// CaseError encapsulates a test-case execution error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong while invoking an exercise.
type CaseError struct {
	// Cause is the underlying error that triggered this case error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e CaseError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the CaseError.
func (e CaseError) Unwrap() error { return e.Cause }

// TimeoutError represents a wall-clock guard violation. It captures the
// operation name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// PanicError records a panic recovered while executing an exercise. The
// harness converts panics into ordinary case failures so one broken exercise
// cannot abort the suite.
type PanicError struct {
	// Value is the value supplied to panic().
	Value any
}

// Error returns a formatted message describing the recovered panic.
//
// Returns:
//   - string: The error message string.
func (e PanicError) Error() string {
	return fmt.Sprintf("exercise panicked: %v", e.Value)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
