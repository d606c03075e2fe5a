package sync

import (
	"context"

	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
)

// Repository доступ к локальному хранилищу четырех коллекций.
// Загрузчики обязаны возвращать уже санированные данные и никогда не
// отдавать ошибку из-за одной испорченной строки.
type Repository interface {
	InstanceID() string

	LoadGoals(ctx context.Context) ([]goal.Goal, error)
	LoadSessions(ctx context.Context) ([]goal.Session, error)
	LoadAchievements(ctx context.Context) ([]achievement.Record, error)
	GetActiveSession(ctx context.Context) (*goal.ActiveSession, error)

	// ReplaceAll атомарно перезаписывает все четыре коллекции одной
	// транзакцией: при прерывании процесса посреди записи состояние
	// не может оказаться разорванным.
	ReplaceAll(
		ctx context.Context,
		goals []goal.Goal,
		sessions []goal.Session,
		achievements []achievement.Record,
		active *goal.ActiveSession,
	) error
}
