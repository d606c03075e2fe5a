package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"timekeeper/internal/domain/goal"
)

// GetActiveSession возвращает текущий запущенный таймер
// или nil, если таймер не запущен.
func (s *Storage) GetActiveSession(ctx context.Context) (*goal.ActiveSession, error) {
	var as goal.ActiveSession

	err := s.db.QueryRowContext(ctx, `
		SELECT goal_id, start_time, last_updated
		FROM active_session
		WHERE id = 1
	`).Scan(&as.GoalID, &as.StartTime, &as.LastUpdated)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения активной сессии: %w", err)
	}

	return &as, nil
}

func (s *Storage) SetActiveSession(ctx context.Context, as goal.ActiveSession) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO active_session (id, goal_id, start_time, last_updated)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET goal_id = excluded.goal_id,
		                              start_time = excluded.start_time,
		                              last_updated = excluded.last_updated
	`, as.GoalID, as.StartTime, as.LastUpdated)

	if err != nil {
		return fmt.Errorf("ошибка сохранения активной сессии: %w", err)
	}

	return nil
}

func (s *Storage) ClearActiveSession(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM active_session WHERE id = 1")
	if err != nil {
		return fmt.Errorf("ошибка сброса активной сессии: %w", err)
	}

	return nil
}

func upsertActive(ctx context.Context, tx *sql.Tx, as goal.ActiveSession) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO active_session (id, goal_id, start_time, last_updated)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET goal_id = excluded.goal_id,
		                              start_time = excluded.start_time,
		                              last_updated = excluded.last_updated
	`, as.GoalID, as.StartTime, as.LastUpdated)
	return err
}
