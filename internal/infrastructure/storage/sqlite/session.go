package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"timekeeper/internal/domain/goal"
)

// LoadSessions возвращает все завершенные сессии в порядке начала.
func (s *Storage) LoadSessions(ctx context.Context) ([]goal.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, goal_id, start_time, end_time, duration, instance_id
		FROM sessions
		ORDER BY start_time
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки сессий: %w", err)
	}
	defer rows.Close()

	var sessions []goal.Session
	for rows.Next() {
		var sess goal.Session

		if err := rows.Scan(&sess.ID, &sess.GoalID, &sess.StartTime,
			&sess.EndTime, &sess.Duration, &sess.InstanceID); err != nil {
			s.log.Warn("пропущена поврежденная запись сессии", "error", err)
			continue
		}

		sess.Sanitize()
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения сессий: %w", err)
	}

	return sessions, nil
}

// LoadGoalSessions возвращает сессии одной цели.
func (s *Storage) LoadGoalSessions(ctx context.Context, goalID string) ([]goal.Session, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, goal_id, start_time, end_time, duration, instance_id
		FROM sessions
		WHERE goal_id = ?
		ORDER BY start_time
	`, goalID)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки сессий цели: %w", err)
	}
	defer rows.Close()

	var sessions []goal.Session
	for rows.Next() {
		var sess goal.Session

		if err := rows.Scan(&sess.ID, &sess.GoalID, &sess.StartTime,
			&sess.EndTime, &sess.Duration, &sess.InstanceID); err != nil {
			s.log.Warn("пропущена поврежденная запись сессии", "error", err)
			continue
		}

		sess.Sanitize()
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения сессий: %w", err)
	}

	return sessions, nil
}

func (s *Storage) SaveSession(ctx context.Context, sess goal.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, goal_id, start_time, end_time, duration, instance_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sess.ID, sess.GoalID, sess.StartTime, sess.EndTime, sess.Duration, sess.InstanceID)

	if err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	return nil
}

func insertSession(ctx context.Context, tx *sql.Tx, sess goal.Session) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (id, goal_id, start_time, end_time, duration, instance_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sess.ID, sess.GoalID, sess.StartTime, sess.EndTime, sess.Duration, sess.InstanceID)
	return err
}
