// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--parallel"),
			expected: "invalid value 42 for flag --parallel",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestArgumentError(t *testing.T) {
	t.Parallel()
	t.Run("arity mismatch uses exercise-level message", func(t *testing.T) {
		t.Parallel()
		err := ArgumentError{Exercise: "fibonacci", Index: -1, Want: "1 argument", Got: "3 arguments"}
		want := `exercise "fibonacci": want 1 argument, got 3 arguments`
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("type mismatch names the argument position", func(t *testing.T) {
		t.Parallel()
		err := ArgumentError{Exercise: "wordBreak", Index: 1, Want: "[]string", Got: "int"}
		want := `exercise "wordBreak": argument 1: want []string, got int`
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("errors.As finds ArgumentError through wrapping", func(t *testing.T) {
		t.Parallel()
		inner := ArgumentError{Exercise: "dijkstra", Index: 0, Want: "[][]Edge", Got: "string"}
		wrapped := WrapError(inner, "loading case file")
		var argErr ArgumentError
		if !errors.As(wrapped, &argErr) {
			t.Fatal("expected wrapped error to be ArgumentError")
		}
		if argErr.Exercise != "dijkstra" {
			t.Errorf("expected exercise dijkstra, got %q", argErr.Exercise)
		}
	})
}

func TestCaseError(t *testing.T) {
	t.Parallel()
	cause := errors.New("factorial of negative number")
	err := CaseError{Cause: cause}

	if err.Error() != cause.Error() {
		t.Errorf("expected %q, got %q", cause.Error(), err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := TimeoutError{Operation: "solveNQueens/n=8", Limit: 5 * time.Second}
	want := `operation "solveNQueens/n=8" timed out after 5s`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestPanicError(t *testing.T) {
	t.Parallel()
	err := PanicError{Value: "index out of range"}
	want := "exercise panicked: index out of range"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if got := WrapError(nil, "context"); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("wraps with formatted context", func(t *testing.T) {
		t.Parallel()
		base := errors.New("boom")
		wrapped := WrapError(base, "running case %d", 7)
		if wrapped.Error() != "running case 7: boom" {
			t.Errorf("unexpected message: %q", wrapped.Error())
		}
		if !errors.Is(wrapped, base) {
			t.Error("expected errors.Is to find the base error")
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped cancellation", fmt.Errorf("run aborted: %w", context.Canceled), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
