package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/jitsuna/internal/constants"
	apperrors "github.com/julianstephens/jitsuna/internal/errors"
	"github.com/julianstephens/jitsuna/internal/logger"
	"github.com/julianstephens/jitsuna/internal/models"
)

const userColumns = "user_id, username, timezone, xp, level, reminder_hour, created_at"

// RegisterUser creates the user with default stats. Existing users are left
// untouched, including their username.
func (s *Store) RegisterUser(ctx context.Context, userID int64, username string) error {
	var name sql.NullString
	if username != "" {
		name = sql.NullString{String: username, Valid: true}
	}

	db, err := s.conn("register user")
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO users (user_id, username, timezone, xp, level, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO NOTHING`,
		userID, name, constants.DefaultTimezone, constants.DefaultXP, constants.DefaultLevel,
		s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return apperrors.Storage("register user", err)
	}

	if n, err := result.RowsAffected(); err == nil && n > 0 {
		logger.Debug("Registered user", "user_id", userID)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (models.User, error) {
	db, err := s.conn("get user")
	if err != nil {
		return models.User{}, err
	}

	row := db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE user_id = ?", userID)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, apperrors.Storage("get user", err)
	}
	return u, nil
}

// AddXP adjusts the user's XP by amount and recomputes the level in the same
// statement. XP is floored at zero.
func (s *Store) AddXP(ctx context.Context, userID int64, amount int) (models.Progress, error) {
	var p models.Progress
	db, err := s.conn("add xp")
	if err != nil {
		return models.Progress{}, err
	}

	err = db.QueryRowContext(ctx, `
		UPDATE users
		SET xp = MAX(xp + ?1, 0),
			level = MAX(xp + ?1, 0) / ?2 + 1
		WHERE user_id = ?3
		RETURNING xp, level`,
		amount, constants.XPPerLevel, userID).Scan(&p.XP, &p.Level)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Progress{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return models.Progress{}, apperrors.Storage("add xp", err)
	}

	logger.Debug("Adjusted XP", "user_id", userID, "amount", amount, "xp", p.XP, "level", p.Level)
	return p, nil
}

func (s *Store) GetXP(ctx context.Context, userID int64) (models.Progress, error) {
	var p models.Progress
	db, err := s.conn("get xp")
	if err != nil {
		return models.Progress{}, err
	}

	err = db.QueryRowContext(ctx, "SELECT xp, level FROM users WHERE user_id = ?", userID).Scan(&p.XP, &p.Level)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Progress{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return models.Progress{}, apperrors.Storage("get xp", err)
	}
	return p, nil
}

func (s *Store) SetReminder(ctx context.Context, userID int64, hour int) error {
	if err := models.ValidateReminderHour(hour); err != nil {
		return err
	}
	return s.updateReminder(ctx, userID, sql.NullInt64{Int64: int64(hour), Valid: true})
}

func (s *Store) ClearReminder(ctx context.Context, userID int64) error {
	return s.updateReminder(ctx, userID, sql.NullInt64{})
}

func (s *Store) updateReminder(ctx context.Context, userID int64, hour sql.NullInt64) error {
	db, err := s.conn("set reminder")
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, "UPDATE users SET reminder_hour = ? WHERE user_id = ?", hour, userID)
	if err != nil {
		return apperrors.Storage("set reminder", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("set reminder", err)
	}
	if rows == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetReminder returns the configured hour. set is false when the user has no
// reminder, which is not an error.
func (s *Store) GetReminder(ctx context.Context, userID int64) (hour int, set bool, err error) {
	var h sql.NullInt64
	db, err := s.conn("get reminder")
	if err != nil {
		return 0, false, err
	}

	err = db.QueryRowContext(ctx, "SELECT reminder_hour FROM users WHERE user_id = ?", userID).Scan(&h)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, apperrors.ErrUserNotFound
	}
	if err != nil {
		return 0, false, apperrors.Storage("get reminder", err)
	}
	if !h.Valid {
		return 0, false, nil
	}
	return int(h.Int64), true, nil
}

// GetUsersForReminderHour lists the users whose reminder is set to hour,
// ordered by user id.
func (s *Store) GetUsersForReminderHour(ctx context.Context, hour int) ([]models.User, error) {
	if err := models.ValidateReminderHour(hour); err != nil {
		return nil, err
	}

	db, err := s.conn("list reminder users")
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE reminder_hour = ? ORDER BY user_id", hour)
	if err != nil {
		return nil, apperrors.Storage("list reminder users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.Storage("list reminder users", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("list reminder users", err)
	}
	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (models.User, error) {
	var u models.User
	var username sql.NullString
	var reminder sql.NullInt64
	var createdAt string

	if err := row.Scan(&u.UserID, &username, &u.Timezone, &u.XP, &u.Level, &reminder, &createdAt); err != nil {
		return models.User{}, err
	}

	u.Username = username.String
	if reminder.Valid {
		h := int(reminder.Int64)
		u.ReminderHour = &h
	}

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at for user %d: %w", u.UserID, err)
	}
	u.CreatedAt = t

	return u, nil
}
