package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/julianstephens/jitsuna/internal/constants"
	apperrors "github.com/julianstephens/jitsuna/internal/errors"
	"github.com/julianstephens/jitsuna/internal/logger"
	"github.com/julianstephens/jitsuna/internal/models"
)

// AddHabit creates a habit for an existing user and returns its id. The
// owner's row is locked for the duration of the transaction so concurrent
// adds for one user are serialized while other users proceed.
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

	var locked int64
	err = tx.QueryRowContext(ctx, "SELECT user_id FROM users WHERE user_id = $1 FOR UPDATE", userID).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrUserNotFound
	}
	if err != nil {
		return "", apperrors.Storage("add habit", err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM habits WHERE user_id = $1", userID).Scan(&count); err != nil {
		return "", apperrors.Storage("add habit", err)
	}
	if count >= constants.MaxHabitsPerUser {
		return "", apperrors.ErrHabitLimitExceeded
	}

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO habits (id, user_id, name, streak, last_completed_date, created_at)
		VALUES ($1, $2, $3, 0, NULL, $4)`,
		id, userID, name, s.now().UTC())
	if isUniqueViolation(err) {
		return "", apperrors.ErrHabitExists
	}
	if err != nil {
		return "", apperrors.Storage("add habit", err)
	}

	if err := tx.Commit(); err != nil {
		return "", apperrors.Storage("add habit", err)
	}

	logger.Debug("Added habit", "user_id", userID, "habit_id", id, "name", name)
	return id, nil
}

func (s *Store) RemoveHabit(ctx context.Context, userID int64, name string) error {
	db, err := s.conn("remove habit")
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, "DELETE FROM habits WHERE user_id = $1 AND name = $2", userID, name)
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

func (s *Store) ListHabits(ctx context.Context, userID int64) ([]models.Habit, error) {
	db, err := s.conn("list habits")
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, name, streak, last_completed_date, created_at
		FROM habits WHERE user_id = $1
		ORDER BY seq`, userID)
	if err != nil {
		return nil, apperrors.Storage("list habits", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var lastCompleted sql.NullString

		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Streak, &lastCompleted, &h.CreatedAt); err != nil {
			return nil, apperrors.Storage("list habits", err)
		}
		h.LastCompletedDate = lastCompleted.String

		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("list habits", err)
	}

	return habits, nil
}

// ToggleHabit flips the habit's completion for today in a single row update.
func (s *Store) ToggleHabit(ctx context.Context, userID int64, habitID string) (bool, error) {
	today := s.Today()

	var lastCompleted sql.NullString
	db, err := s.conn("toggle habit")
	if err != nil {
		return false, err
	}

	err = db.QueryRowContext(ctx, `
		UPDATE habits
		SET last_completed_date = CASE WHEN last_completed_date = $1 THEN NULL ELSE $1 END
		WHERE id = $2 AND user_id = $3
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
