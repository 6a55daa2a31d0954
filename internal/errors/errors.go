package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/jitsuna/internal/logger"
)

// Error kinds surfaced by the state store. Callers match them with errors.Is.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrHabitNotFound      = errors.New("habit not found")
	ErrHabitLimitExceeded = errors.New("habit limit exceeded")
	ErrHabitExists        = errors.New("habit with this name already exists")
	ErrInvalidHabitName   = errors.New("habit name cannot be empty")
	ErrInvalidHour        = errors.New("reminder hour must be between 0 and 23")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ErrNotLoaded is the cause reported when a store is used before Init or Load,
// or after Close.
var ErrNotLoaded = errors.New("database not loaded")

// Storage wraps a persistence failure so that it matches ErrStorageUnavailable
// while keeping the driver error in the chain. A nil err yields nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}

// IsDomain reports whether err is one of the store's domain error kinds, as
// opposed to a storage failure or an unknown error.
func IsDomain(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrHabitNotFound) ||
		errors.Is(err, ErrHabitLimitExceeded) ||
		errors.Is(err, ErrHabitExists) ||
		errors.Is(err, ErrInvalidHabitName) ||
		errors.Is(err, ErrInvalidHour)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
