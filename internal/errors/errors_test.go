package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped sentinel",
			err:      fmt.Errorf("%w: toast ttl must be positive", ErrInvalidConfig),
			expected: "Error: invalid configuration: toast ttl must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", ErrUnknownAction)
	if !Is(err, ErrUnknownAction) {
		t.Error("expected wrapped error to match ErrUnknownAction")
	}
	if Is(err, ErrNoModal) {
		t.Error("did not expect wrapped error to match ErrNoModal")
	}
}
