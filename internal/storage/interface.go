package storage

import (
	"context"

	"github.com/julianstephens/jitsuna/internal/models"
)

// Provider is the state store contract. Every method is a single statement or
// a single transaction; domain failures are reported with the sentinel errors
// of the internal/errors package and driver failures wrap ErrStorageUnavailable.
// Calls on a store that is not loaded, or was closed, also report
// ErrStorageUnavailable.
//
// Locking differs by backend. PostgreSQL locks only the rows a write touches,
// so writers for different users run in parallel. SQLite has no row locks:
// every write transaction holds the database-wide write lock, so writers are
// serialized across all users and wait up to the busy timeout for their turn.
type Provider interface {
	// Lifecycle
	Init(ctx context.Context) error
	Load(ctx context.Context) error
	Close() error
	Migrate(ctx context.Context) (int, error)
	SchemaVersion(ctx context.Context) (current, latest int, err error)
	Ping(ctx context.Context) error

	// Users
	RegisterUser(ctx context.Context, userID int64, username string) error
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// Habits
	AddHabit(ctx context.Context, userID int64, name string) (string, error)
	RemoveHabit(ctx context.Context, userID int64, name string) error
	ListHabits(ctx context.Context, userID int64) ([]models.Habit, error)
	// ToggleHabit flips today's completion and returns the new state. It never
	// changes the streak or awards XP; callers do that explicitly.
	ToggleHabit(ctx context.Context, userID int64, habitID string) (bool, error)

	// Experience
	AddXP(ctx context.Context, userID int64, amount int) (models.Progress, error)
	GetXP(ctx context.Context, userID int64) (models.Progress, error)

	// Reminders
	SetReminder(ctx context.Context, userID int64, hour int) error
	ClearReminder(ctx context.Context, userID int64) error
	// GetReminder returns set=false for a user without a reminder.
	GetReminder(ctx context.Context, userID int64) (hour int, set bool, err error)
	GetUsersForReminderHour(ctx context.Context, hour int) ([]models.User, error)

	// Utils
	GetConfigPath() string
	// Today is the day ToggleHabit marks, as YYYY-MM-DD. Readers use it to
	// decide whether a habit is done today.
	Today() string
}
