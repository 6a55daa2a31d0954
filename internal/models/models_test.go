package models

import (
	"errors"
	"testing"

	apperrors "github.com/julianstephens/jitsuna/internal/errors"
)

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{xp: -20, level: 1},
		{xp: 0, level: 1},
		{xp: 5, level: 1},
		{xp: 49, level: 1},
		{xp: 50, level: 2},
		{xp: 99, level: 2},
		{xp: 100, level: 3},
		{xp: 1234, level: 25},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.level {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.level)
		}
	}
}

func TestValidateReminderHour(t *testing.T) {
	tests := []struct {
		hour    int
		wantErr bool
	}{
		{hour: -1, wantErr: true},
		{hour: 0, wantErr: false},
		{hour: 9, wantErr: false},
		{hour: 23, wantErr: false},
		{hour: 24, wantErr: true},
		{hour: 25, wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateReminderHour(tt.hour)
		if tt.wantErr {
			if !errors.Is(err, apperrors.ErrInvalidHour) {
				t.Errorf("ValidateReminderHour(%d) = %v, want ErrInvalidHour", tt.hour, err)
			}
		} else if err != nil {
			t.Errorf("ValidateReminderHour(%d) unexpected error: %v", tt.hour, err)
		}
	}
}

func TestNormalizeHabitName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain", input: "Read", expected: "Read"},
		{name: "surrounding spaces", input: "  Drink water \t", expected: "Drink water"},
		{name: "empty", input: "", wantErr: true},
		{name: "only whitespace", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeHabitName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidHabitName) {
					t.Errorf("NormalizeHabitName(%q) error = %v, want ErrInvalidHabitName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeHabitName(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("NormalizeHabitName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestHabitCompletedOn(t *testing.T) {
	h := Habit{Name: "Read", LastCompletedDate: "2026-10-15"}

	if !h.CompletedOn("2026-10-15") {
		t.Error("CompletedOn(same day) = false, want true")
	}
	if h.CompletedOn("2026-10-16") {
		t.Error("CompletedOn(next day) = true, want false")
	}

	unset := Habit{Name: "Exercise"}
	if unset.CompletedOn("") {
		t.Error("CompletedOn(\"\") on unset habit = true, want false")
	}
}
