package sync

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
	"timekeeper/internal/domain/merge"
	"timekeeper/internal/domain/snapshot"
)

// Servicer интерфейс сервиса синхронизации
type Servicer interface {
	// Export собирает снапшот текущего состояния локального хранилища.
	Export(ctx context.Context) (*snapshot.Snapshot, error)

	// ImportRaw проверяет структуру недоверенного снапшота и сливает его.
	ImportRaw(ctx context.Context, raw []byte) (*MergeReport, error)

	// Import сливает уже разобранный снапшот в локальное хранилище.
	Import(ctx context.Context, remote snapshot.Snapshot) (*MergeReport, error)
}

// Service оркестрирует поток данных ядра: разбор -> слияние -> атомарная
// запись -> переоценка достижений. Сам ничего не считает - вся логика
// в чистых функциях merge и achievement.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewService создает сервис синхронизации
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *Service) Export(ctx context.Context) (*snapshot.Snapshot, error) {
	goals, sessions, achievements, active, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	snap := snapshot.Build(
		snapshot.InstanceContext{ID: s.repo.InstanceID()},
		s.now().UnixMilli(),
		goals, sessions, achievements, active,
	)
	return &snap, nil
}

func (s *Service) ImportRaw(ctx context.Context, raw []byte) (*MergeReport, error) {
	remote, err := snapshot.Parse(raw)
	if err != nil {
		// Слияние не запускается: структурно неверный вход отклоняется
		// на границе.
		return nil, err
	}
	return s.Import(ctx, *remote)
}

func (s *Service) Import(ctx context.Context, remote snapshot.Snapshot) (*MergeReport, error) {
	local, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}

	if remote.InstanceID == local.InstanceID {
		s.log.Debug("merging snapshot from own instance", "instance_id", remote.InstanceID)
	}

	result := merge.Merge(*local, remote)

	// Переоценка достижений по слитому состоянию. Монотонность гарантирует,
	// что пришедшие с другой стороны записи не потеряются.
	records, unlocked := achievement.Evaluate(
		result.Goals, result.Achievements,
		s.now().UnixMilli(), s.repo.InstanceID(),
	)

	if err := s.repo.ReplaceAll(ctx, result.Goals, result.Sessions, records, result.ActiveSession); err != nil {
		return nil, fmt.Errorf("persist merged state: %w", err)
	}

	after := snapshot.Build(
		snapshot.InstanceContext{ID: local.InstanceID},
		local.ExportedAt,
		result.Goals, result.Sessions, records, result.ActiveSession,
	)

	report := &MergeReport{
		Before:    snapshot.Summarize(local),
		After:     snapshot.Summarize(&after),
		Conflicts: result.Conflicts,
		Unlocked:  unlocked,
	}

	s.log.Info("snapshot merged",
		"remote_instance", remote.InstanceID,
		"conflicts", len(report.Conflicts),
		"goals", report.After.Goals,
		"sessions", report.After.Sessions,
		"unlocked", len(unlocked),
	)

	return report, nil
}

func (s *Service) loadAll(ctx context.Context) (
	[]goal.Goal, []goal.Session, []achievement.Record, *goal.ActiveSession, error,
) {
	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load goals: %w", err)
	}
	sessions, err := s.repo.LoadSessions(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load sessions: %w", err)
	}
	achievements, err := s.repo.LoadAchievements(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load achievements: %w", err)
	}
	active, err := s.repo.GetActiveSession(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load active session: %w", err)
	}
	return goals, sessions, achievements, active, nil
}
