package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"timekeeper/internal/domain/goal"
)

// LoadGoals возвращает все цели, включая архивные. Битые строки
// пропускаются с предупреждением в лог, чтобы одна поврежденная
// запись не блокировала работу приложения.
func (s *Storage) LoadGoals(ctx context.Context) ([]goal.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, total_hours, total_time_spent,
		       is_active, is_archived, start_time, created_at, last_modified, instance_id
		FROM goals
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки целей: %w", err)
	}
	defer rows.Close()

	var goals []goal.Goal
	for rows.Next() {
		var g goal.Goal
		var startTime sql.NullInt64

		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.TotalHours, &g.TotalTimeSpent,
			&g.IsActive, &g.IsArchived, &startTime, &g.CreatedAt, &g.LastModified, &g.InstanceID); err != nil {
			s.log.Warn("пропущена поврежденная запись цели", "error", err)
			continue
		}

		if startTime.Valid {
			v := startTime.Int64
			g.StartTime = &v
		}

		g.Sanitize()
		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения целей: %w", err)
	}

	return goals, nil
}

func (s *Storage) GetGoal(ctx context.Context, id string) (*goal.Goal, error) {
	var g goal.Goal
	var startTime sql.NullInt64

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, total_hours, total_time_spent,
		       is_active, is_archived, start_time, created_at, last_modified, instance_id
		FROM goals
		WHERE id = ?
	`, id).Scan(&g.ID, &g.Title, &g.Description, &g.TotalHours, &g.TotalTimeSpent,
		&g.IsActive, &g.IsArchived, &startTime, &g.CreatedAt, &g.LastModified, &g.InstanceID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, goal.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения цели: %w", err)
	}

	if startTime.Valid {
		v := startTime.Int64
		g.StartTime = &v
	}

	g.Sanitize()

	return &g, nil
}

func (s *Storage) SaveGoal(ctx context.Context, g goal.Goal) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM goals WHERE id = ?)", g.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("ошибка проверки существования цели: %w", err)
	}

	startTime := sql.NullInt64{}
	if g.StartTime != nil {
		startTime = sql.NullInt64{Int64: *g.StartTime, Valid: true}
	}

	if exists {
		_, err = s.db.ExecContext(ctx, `
			UPDATE goals
			SET title = ?, description = ?, total_hours = ?, total_time_spent = ?,
			    is_active = ?, is_archived = ?, start_time = ?, last_modified = ?, instance_id = ?
			WHERE id = ?
		`, g.Title, g.Description, g.TotalHours, g.TotalTimeSpent,
			g.IsActive, g.IsArchived, startTime, g.LastModified, g.InstanceID, g.ID)
	} else {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO goals (id, title, description, total_hours, total_time_spent,
			                   is_active, is_archived, start_time, created_at, last_modified, instance_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, g.ID, g.Title, g.Description, g.TotalHours, g.TotalTimeSpent,
			g.IsActive, g.IsArchived, startTime, g.CreatedAt, g.LastModified, g.InstanceID)
	}

	if err != nil {
		return fmt.Errorf("ошибка сохранения цели: %w", err)
	}

	return nil
}

func (s *Storage) DeleteGoal(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("ошибка удаления цели: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return goal.ErrNotFound
	}

	return nil
}

func insertGoal(ctx context.Context, tx *sql.Tx, g goal.Goal) error {
	startTime := sql.NullInt64{}
	if g.StartTime != nil {
		startTime = sql.NullInt64{Int64: *g.StartTime, Valid: true}
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO goals (id, title, description, total_hours, total_time_spent,
		                   is_active, is_archived, start_time, created_at, last_modified, instance_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.Title, g.Description, g.TotalHours, g.TotalTimeSpent,
		g.IsActive, g.IsArchived, startTime, g.CreatedAt, g.LastModified, g.InstanceID)
	return err
}
