package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/jitsuna/internal/constants"
	apperrors "github.com/julianstephens/jitsuna/internal/errors"
	"github.com/julianstephens/jitsuna/internal/logger"
	"github.com/julianstephens/jitsuna/internal/models"
)

// AddHabit creates a habit for an existing user and returns its id. The
// ownership check, the per-user cap and the name check run in the same
// transaction as the insert.
func (s *Store) AddHabit(ctx context.Context, userID int64, name string) (string, error) {
	name, err := models.NormalizeHabitName(name)
	if err != nil {
		return "", err
	}

	db, err := s.conn("add habit")
	if err != nil {
		return "", err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", apperrors.Storage("add habit", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM users WHERE user_id = ?", userID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrUserNotFound
	}
	if err != nil {
		return "", apperrors.Storage("add habit", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM habits WHERE user_id = ?", userID).Scan(&count); err != nil {
		return "", apperrors.Storage("add habit", err)
	}
	if count >= constants.MaxHabitsPerUser {
		return "", apperrors.ErrHabitLimitExceeded
	}

	err = tx.QueryRowContext(ctx, "SELECT 1 FROM habits WHERE user_id = ? AND name = ?", userID, name).Scan(&exists)
	if err == nil {
		return "", apperrors.ErrHabitExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.Storage("add habit", err)
	}

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO habits (id, user_id, name, streak, last_completed_date, created_at)
		VALUES (?, ?, ?, 0, NULL, ?)`,
		id, userID, name, s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", apperrors.Storage("add habit", err)
	}

	if err := tx.Commit(); err != nil {
		return "", apperrors.Storage("add habit", err)
	}

	logger.Debug("Added habit", "user_id", userID, "habit_id", id, "name", name)
	return id, nil
}

// RemoveHabit deletes the user's habit with the given name.
func (s *Store) RemoveHabit(ctx context.Context, userID int64, name string) error {
	db, err := s.conn("remove habit")
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, "DELETE FROM habits WHERE user_id = ? AND name = ?", userID, name)
	if err != nil {
		return apperrors.Storage("remove habit", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("remove habit", err)
	}
	if rows == 0 {
		return apperrors.ErrHabitNotFound
	}

	logger.Debug("Removed habit", "user_id", userID, "name", name)
	return nil
}

// ListHabits returns the user's habits in creation order.
func (s *Store) ListHabits(ctx context.Context, userID int64) ([]models.Habit, error) {
	db, err := s.conn("list habits")
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, name, streak, last_completed_date, created_at
		FROM habits WHERE user_id = ?
		ORDER BY rowid`, userID)
	if err != nil {
		return nil, apperrors.Storage("list habits", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var lastCompleted sql.NullString
		var createdAt string

		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Streak, &lastCompleted, &createdAt); err != nil {
			return nil, apperrors.Storage("list habits", err)
		}

		h.LastCompletedDate = lastCompleted.String
		h.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
		}

		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("list habits", err)
	}

	return habits, nil
}

// ToggleHabit flips the habit's completion for today and reports whether it
// is now completed. Streak and XP are not touched.
func (s *Store) ToggleHabit(ctx context.Context, userID int64, habitID string) (bool, error) {
	today := s.Today()

	var lastCompleted sql.NullString
	db, err := s.conn("toggle habit")
	if err != nil {
		return false, err
	}

	err = db.QueryRowContext(ctx, `
		UPDATE habits
		SET last_completed_date = CASE WHEN last_completed_date = ?1 THEN NULL ELSE ?1 END
		WHERE id = ?2 AND user_id = ?3
		RETURNING last_completed_date`,
		today, habitID, userID).Scan(&lastCompleted)
	if errors.Is(err, sql.ErrNoRows) {
		return false, apperrors.ErrHabitNotFound
	}
	if err != nil {
		return false, apperrors.Storage("toggle habit", err)
	}

	completed := lastCompleted.Valid && lastCompleted.String == today
	logger.Debug("Toggled habit", "user_id", userID, "habit_id", habitID, "day", today, "completed", completed)
	return completed, nil
}
