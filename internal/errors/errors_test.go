package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestStorage(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		if err := Storage("add habit", nil); err != nil {
			t.Errorf("Storage(nil) = %v, want nil", err)
		}
	})

	t.Run("wraps cause and kind", func(t *testing.T) {
		cause := errors.New("database is locked")
		err := Storage("toggle habit", cause)

		if !errors.Is(err, ErrStorageUnavailable) {
			t.Errorf("errors.Is(err, ErrStorageUnavailable) = false for %v", err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("errors.Is(err, cause) = false for %v", err)
		}
		if !strings.HasPrefix(err.Error(), "toggle habit: ") {
			t.Errorf("error %q should be prefixed with the operation", err.Error())
		}
	})
}

func TestIsDomain(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil", err: nil, expected: false},
		{name: "user not found", err: ErrUserNotFound, expected: true},
		{name: "habit not found", err: ErrHabitNotFound, expected: true},
		{name: "limit exceeded", err: ErrHabitLimitExceeded, expected: true},
		{name: "duplicate habit", err: ErrHabitExists, expected: true},
		{name: "empty name", err: ErrInvalidHabitName, expected: true},
		{name: "invalid hour", err: ErrInvalidHour, expected: true},
		{name: "wrapped domain error", err: fmt.Errorf("remove habit %q: %w", "Read", ErrHabitNotFound), expected: true},
		{name: "storage failure", err: Storage("list habits", errors.New("disk I/O error")), expected: false},
		{name: "unknown error", err: errors.New("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDomain(tt.err); got != tt.expected {
				t.Errorf("IsDomain(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

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
			name:     "domain error",
			err:      ErrHabitLimitExceeded,
			expected: "Error: habit limit exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "simple message",
			format:   "something went wrong",
			args:     nil,
			expected: "Error: something went wrong",
		},
		{
			name:     "formatted message with multiple args",
			format:   "habit %q not found for user %d",
			args:     []interface{}{"Read", 42},
			expected: "Error: habit \"Read\" not found for user 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Formatf(tt.format, tt.args...)
			if result != tt.expected {
				t.Errorf("Formatf(%q, %v) = %q, want %q", tt.format, tt.args, result, tt.expected)
			}
		})
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(errors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		stderrStr := stderr.String()
		if !strings.Contains(stderrStr, "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderrStr, "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

// TestFatal_NilError tests that Fatal does nothing when passed a nil error
func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal_NilError$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
