package models

import (
	"time"

	"github.com/julianstephens/jitsuna/internal/constants"
	apperrors "github.com/julianstephens/jitsuna/internal/errors"
)

// User is a chat user known to the tracker.
type User struct {
	UserID    int64
	Username  string
	Timezone  string
	XP        int
	Level     int
	CreatedAt time.Time
	// ReminderHour is nil when no reminder is configured.
	ReminderHour *int
}

// Progress is the XP/level pair reported after an XP mutation.
type Progress struct {
	XP    int
	Level int
}

// Progress returns the user's current XP and level.
func (u User) Progress() Progress {
	return Progress{XP: u.XP, Level: u.Level}
}

// LevelForXP returns the level reached with xp experience points.
// Negative xp is treated as zero so the level never drops below 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/constants.XPPerLevel + 1
}

// ValidateReminderHour checks that hour is a valid hour of the day.
func ValidateReminderHour(hour int) error {
	if hour < constants.MinReminderHour || hour > constants.MaxReminderHour {
		return apperrors.ErrInvalidHour
	}
	return nil
}
