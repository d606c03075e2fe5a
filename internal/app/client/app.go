package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"timekeeper/internal/app/client/config"
	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
	"timekeeper/internal/domain/stats"
	"timekeeper/internal/domain/sync"
	"timekeeper/internal/infrastructure/migration"
	"timekeeper/internal/infrastructure/storage/sqlite"
)

// App связывает хранилище, сервис синхронизации и HTTP-клиент пиров.
// Все команды CLI работают через его методы.
type App struct {
	config      *config.Config
	log         *slog.Logger
	storage     *sqlite.Storage
	syncService sync.Servicer
	peers       *peerClient
	now         func() time.Time
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	// Применяем миграции до открытия хранилища
	if err := migration.New(cfg.MigrationsPath, cfg.DatabasePath, migration.DefaultEngine).Up(); err != nil {
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	storage, err := sqlite.New(cfg.DatabasePath, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации хранилища: %w", err)
	}

	app := &App{
		config:      cfg,
		log:         log,
		storage:     storage,
		syncService: sync.NewService(storage, log),
		peers:       newPeerClient(cfg, log),
		now:         time.Now,
	}

	log.Debug("Клиент инициализирован",
		"instance_id", storage.InstanceID(),
		"database", cfg.DatabasePath,
	)

	return app, nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

// InstanceID возвращает идентификатор этого устройства.
func (a *App) InstanceID() string {
	return a.storage.InstanceID()
}

// SyncService отдает сервис синхронизации для HTTP-слоя.
func (a *App) SyncService() sync.Servicer {
	return a.syncService
}

// CreateGoal создает новую цель.
func (a *App) CreateGoal(ctx context.Context, title, description string, totalHours float64) (*goal.Goal, error) {
	if strings.TrimSpace(title) == "" {
		return nil, goal.ErrEmptyTitle
	}
	if totalHours <= 0 {
		totalHours = goal.DefaultTotalHours
	}

	now := a.now().UnixMilli()
	g := goal.Goal{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(title),
		Description:  description,
		TotalHours:   totalHours,
		CreatedAt:    now,
		LastModified: now,
		InstanceID:   a.storage.InstanceID(),
	}

	if err := a.storage.SaveGoal(ctx, g); err != nil {
		return nil, err
	}

	a.log.Info("Цель создана", "goal_id", g.ID, "title", g.Title)

	return &g, nil
}

// ListGoals возвращает цели; архивные включаются по запросу.
func (a *App) ListGoals(ctx context.Context, includeArchived bool) ([]goal.Goal, error) {
	goals, err := a.storage.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}

	if includeArchived {
		return goals, nil
	}

	visible := goals[:0]
	for _, g := range goals {
		if !g.IsArchived {
			visible = append(visible, g)
		}
	}
	return visible, nil
}

func (a *App) GetGoal(ctx context.Context, id string) (*goal.Goal, error) {
	return a.storage.GetGoal(ctx, id)
}

// StartTimer запускает таймер по цели. Одновременно может быть
// запущен только один таймер.
func (a *App) StartTimer(ctx context.Context, goalID string) (*goal.Goal, error) {
	active, err := a.storage.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, goal.ErrAlreadyActive
	}

	g, err := a.storage.GetGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	now := a.now().UnixMilli()
	g.IsActive = true
	g.StartTime = &now
	g.Touch(now, a.storage.InstanceID())

	if err := a.storage.SaveGoal(ctx, *g); err != nil {
		return nil, err
	}

	as := goal.ActiveSession{GoalID: g.ID, StartTime: now, LastUpdated: now}
	if err := a.storage.SetActiveSession(ctx, as); err != nil {
		return nil, err
	}

	a.log.Info("Таймер запущен", "goal_id", g.ID)

	return g, nil
}

// StopTimer останавливает таймер, фиксирует завершенную сессию
// и возвращает ее вместе с новыми достижениями.
func (a *App) StopTimer(ctx context.Context) (*goal.Session, []achievement.Record, error) {
	active, err := a.storage.GetActiveSession(ctx)
	if err != nil {
		return nil, nil, err
	}
	if active == nil {
		return nil, nil, goal.ErrNotActive
	}

	now := a.now().UnixMilli()

	g, err := a.storage.GetGoal(ctx, active.GoalID)
	if err != nil {
		// Цель активной сессии удалена: сбрасываем таймер и выходим.
		_ = a.storage.ClearActiveSession(ctx)
		return nil, nil, fmt.Errorf("цель активной сессии не найдена: %w", err)
	}

	sess := goal.Session{
		ID:         uuid.NewString(),
		GoalID:     g.ID,
		StartTime:  active.StartTime,
		EndTime:    now,
		Duration:   now - active.StartTime,
		InstanceID: a.storage.InstanceID(),
	}
	sess.Sanitize()

	g.TotalTimeSpent += sess.Duration
	g.IsActive = false
	g.StartTime = nil
	g.Touch(now, a.storage.InstanceID())

	if err := a.storage.SaveSession(ctx, sess); err != nil {
		return nil, nil, err
	}
	if err := a.storage.SaveGoal(ctx, *g); err != nil {
		return nil, nil, err
	}
	if err := a.storage.ClearActiveSession(ctx); err != nil {
		return nil, nil, err
	}

	unlocked, err := a.evaluateAchievements(ctx)
	if err != nil {
		return nil, nil, err
	}

	a.log.Info("Таймер остановлен",
		"goal_id", g.ID,
		"duration_ms", sess.Duration,
		"unlocked", len(unlocked),
	)

	return &sess, unlocked, nil
}

// ActiveTimer возвращает текущий запущенный таймер или nil.
func (a *App) ActiveTimer(ctx context.Context) (*goal.ActiveSession, error) {
	return a.storage.GetActiveSession(ctx)
}

// AddSession добавляет завершенную сессию вручную, задним числом.
func (a *App) AddSession(ctx context.Context, goalID string, start, end int64) (*goal.Session, []achievement.Record, error) {
	if end <= start {
		return nil, nil, fmt.Errorf("окончание сессии должно быть позже начала")
	}

	g, err := a.storage.GetGoal(ctx, goalID)
	if err != nil {
		return nil, nil, err
	}

	now := a.now().UnixMilli()
	sess := goal.Session{
		ID:         uuid.NewString(),
		GoalID:     g.ID,
		StartTime:  start,
		EndTime:    end,
		Duration:   end - start,
		InstanceID: a.storage.InstanceID(),
	}

	g.TotalTimeSpent += sess.Duration
	g.Touch(now, a.storage.InstanceID())

	if err := a.storage.SaveSession(ctx, sess); err != nil {
		return nil, nil, err
	}
	if err := a.storage.SaveGoal(ctx, *g); err != nil {
		return nil, nil, err
	}

	unlocked, err := a.evaluateAchievements(ctx)
	if err != nil {
		return nil, nil, err
	}

	return &sess, unlocked, nil
}

// ArchiveGoal скрывает цель из списков, не удаляя ее данные.
func (a *App) ArchiveGoal(ctx context.Context, id string) error {
	return a.setArchived(ctx, id, true)
}

// RestoreGoal возвращает цель из архива.
func (a *App) RestoreGoal(ctx context.Context, id string) error {
	return a.setArchived(ctx, id, false)
}

func (a *App) setArchived(ctx context.Context, id string, archived bool) error {
	g, err := a.storage.GetGoal(ctx, id)
	if err != nil {
		return err
	}

	g.IsArchived = archived
	g.Touch(a.now().UnixMilli(), a.storage.InstanceID())

	return a.storage.SaveGoal(ctx, *g)
}

// DeleteGoal безвозвратно удаляет цель. Сессии и достижения
// остаются: история времени не искажается.
func (a *App) DeleteGoal(ctx context.Context, id string) error {
	active, err := a.storage.GetActiveSession(ctx)
	if err != nil {
		return err
	}
	if active != nil && active.GoalID == id {
		return goal.ErrAlreadyActive
	}

	return a.storage.DeleteGoal(ctx, id)
}

// Achievements возвращает все разблокированные достижения.
func (a *App) Achievements(ctx context.Context) ([]achievement.Record, error) {
	return a.storage.LoadAchievements(ctx)
}

// MarkAchievementsSeen помечает достижения просмотренными.
func (a *App) MarkAchievementsSeen(ctx context.Context) error {
	return a.storage.MarkSeen(ctx)
}

// GoalStats собирает статистику по дневной активности.
type GoalStats struct {
	Daily        []stats.DayTotal
	Streak       int
	BestDayHours float64
}

// Stats считает дневную статистику; при goalID == "" учитываются все цели.
func (a *App) Stats(ctx context.Context, goalID string) (*GoalStats, error) {
	var sessions []goal.Session
	var err error

	if goalID == "" {
		sessions, err = a.storage.LoadSessions(ctx)
	} else {
		sessions, err = a.storage.LoadGoalSessions(ctx, goalID)
	}
	if err != nil {
		return nil, err
	}

	loc := time.Local

	return &GoalStats{
		Daily:        stats.DailyTotals(sessions, loc),
		Streak:       stats.LongestStreak(sessions, loc),
		BestDayHours: stats.BestDayHours(sessions, loc),
	}, nil
}

// evaluateAchievements переоценивает пороги по всем целям
// и сохраняет новые записи.
func (a *App) evaluateAchievements(ctx context.Context) ([]achievement.Record, error) {
	goals, err := a.storage.LoadGoals(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := a.storage.LoadAchievements(ctx)
	if err != nil {
		return nil, err
	}

	_, unlocked := achievement.Evaluate(goals, existing, a.now().UnixMilli(), a.storage.InstanceID())

	for _, rec := range unlocked {
		if err := a.storage.SaveAchievement(ctx, rec); err != nil {
			return nil, err
		}
	}

	return unlocked, nil
}
