package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"golang.org/x/exp/slog"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
)

// Storage — локальное SQLite-хранилище клиента. Схема создается
// миграциями до открытия хранилища.
type Storage struct {
	db         *sql.DB
	instanceID string
	log        *slog.Logger
}

func New(path string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	s := &Storage{db: db, log: log}

	if err := s.ensureInstanceID(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации идентификатора устройства: %w", err)
	}

	return s, nil
}

// ensureInstanceID читает идентификатор устройства из meta,
// при первом запуске генерирует и сохраняет новый.
func (s *Storage) ensureInstanceID() error {
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = 'instance_id'").Scan(&s.instanceID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	s.instanceID = uuid.NewString()
	_, err = s.db.Exec("INSERT INTO meta (key, value) VALUES ('instance_id', ?)", s.instanceID)
	return err
}

func (s *Storage) InstanceID() string {
	return s.instanceID
}

// ReplaceAll атомарно заменяет все данные результатом слияния.
// Либо применяется всё, либо ничего.
func (s *Storage) ReplaceAll(
	ctx context.Context,
	goals []goal.Goal,
	sessions []goal.Session,
	achievements []achievement.Record,
	active *goal.ActiveSession,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"goals", "sessions", "achievements", "active_session"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("ошибка очистки таблицы %s: %w", table, err)
		}
	}

	for _, g := range goals {
		if err := insertGoal(ctx, tx, g); err != nil {
			return fmt.Errorf("ошибка сохранения цели %s: %w", g.ID, err)
		}
	}
	for _, sess := range sessions {
		if err := insertSession(ctx, tx, sess); err != nil {
			return fmt.Errorf("ошибка сохранения сессии %s: %w", sess.ID, err)
		}
	}
	for _, rec := range achievements {
		if err := insertAchievement(ctx, tx, rec); err != nil {
			return fmt.Errorf("ошибка сохранения достижения %s: %w", rec.ID, err)
		}
	}
	if active != nil {
		if err := upsertActive(ctx, tx, *active); err != nil {
			return fmt.Errorf("ошибка сохранения активной сессии: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
