package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"timekeeper/internal/domain/achievement"
)

func (s *Storage) LoadAchievements(ctx context.Context) ([]achievement.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, goal_id, unlocked_at, seen, instance_id
		FROM achievements
		ORDER BY unlocked_at
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки достижений: %w", err)
	}
	defer rows.Close()

	var records []achievement.Record
	for rows.Next() {
		var rec achievement.Record

		if err := rows.Scan(&rec.ID, &rec.GoalID, &rec.UnlockedAt, &rec.Seen, &rec.InstanceID); err != nil {
			s.log.Warn("пропущена поврежденная запись достижения", "error", err)
			continue
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения достижений: %w", err)
	}

	return records, nil
}

func (s *Storage) SaveAchievement(ctx context.Context, rec achievement.Record) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM achievements WHERE id = ?)", rec.ID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("ошибка проверки существования достижения: %w", err)
	}

	if exists {
		_, err = s.db.ExecContext(ctx, `
			UPDATE achievements
			SET goal_id = ?, unlocked_at = ?, seen = ?, instance_id = ?
			WHERE id = ?
		`, rec.GoalID, rec.UnlockedAt, rec.Seen, rec.InstanceID, rec.ID)
	} else {
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO achievements (id, goal_id, unlocked_at, seen, instance_id)
			VALUES (?, ?, ?, ?, ?)
		`, rec.ID, rec.GoalID, rec.UnlockedAt, rec.Seen, rec.InstanceID)
	}

	if err != nil {
		return fmt.Errorf("ошибка сохранения достижения: %w", err)
	}

	return nil
}

// MarkSeen помечает все непросмотренные достижения просмотренными.
func (s *Storage) MarkSeen(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "UPDATE achievements SET seen = 1 WHERE seen = 0")
	if err != nil {
		return fmt.Errorf("ошибка обновления достижений: %w", err)
	}

	return nil
}

func insertAchievement(ctx context.Context, tx *sql.Tx, rec achievement.Record) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO achievements (id, goal_id, unlocked_at, seen, instance_id)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.GoalID, rec.UnlockedAt, rec.Seen, rec.InstanceID)
	return err
}
