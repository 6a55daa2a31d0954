package models

import (
	"strings"
	"time"

	apperrors "github.com/julianstephens/jitsuna/internal/errors"
)

// Habit is a daily habit owned by a single user.
type Habit struct {
	ID     string
	UserID int64
	Name   string
	Streak int
	// LastCompletedDate is a YYYY-MM-DD day, or empty when unset.
	LastCompletedDate string
	CreatedAt         time.Time
}

// CompletedOn reports whether the habit is marked done for day (YYYY-MM-DD).
func (h Habit) CompletedOn(day string) bool {
	return day != "" && h.LastCompletedDate == day
}

// NormalizeHabitName trims surrounding whitespace and rejects empty names.
func NormalizeHabitName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.ErrInvalidHabitName
	}
	return name, nil
}
