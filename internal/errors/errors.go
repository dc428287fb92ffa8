package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/mindfulmeet/internal/logger"
)

var (
	// ErrUnknownAction is returned when a control is bound to an action the controller does not handle.
	ErrUnknownAction = errors.New("unknown action")
	// ErrNoModal is returned by modal operations when no dialog is open.
	ErrNoModal = errors.New("no modal is open")
	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
