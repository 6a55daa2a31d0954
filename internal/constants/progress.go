package constants

const (
	// MaxHabitsPerUser is the hard cap on habits a single user may own.
	MaxHabitsPerUser = 8

	// XPPerLevel is the level divisor: level = xp / XPPerLevel + 1.
	XPPerLevel = 50

	// Reminder hour bounds (inclusive)
	MinReminderHour = 0
	MaxReminderHour = 23

	// Default values for newly registered users
	DefaultTimezone = "UTC"
	DefaultXP       = 0
	DefaultLevel    = 1
)
