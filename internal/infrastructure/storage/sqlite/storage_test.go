package sqlite

import (
	"context"
	"golang.org/x/exp/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
	"timekeeper/internal/infrastructure/migration"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "timekeeper.db")

	err := migration.New("../../../../migrations", dbPath, migration.DefaultEngine).Up()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	s, err := New(dbPath, log)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s, dbPath
}

func TestStorage_InstanceIDPersists(t *testing.T) {
	s, dbPath := newTestStorage(t)

	id := s.InstanceID()
	require.Len(t, id, 36)
	require.NoError(t, s.Close())

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	s2, err := New(dbPath, log)
	require.NoError(t, err)
	defer s2.Close()

	assert.Equal(t, id, s2.InstanceID())
}

func TestStorage_GoalCRUD(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	start := int64(1700000500000)
	g := goal.Goal{
		ID:             "g1",
		Title:          "Изучить Go",
		TotalHours:     100,
		TotalTimeSpent: 3600000,
		IsActive:       true,
		StartTime:      &start,
		CreatedAt:      1700000000000,
		LastModified:   1700000500000,
		InstanceID:     s.InstanceID(),
	}

	require.NoError(t, s.SaveGoal(ctx, g))

	got, err := s.GetGoal(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, g.Title, got.Title)
	require.NotNil(t, got.StartTime)
	assert.Equal(t, start, *got.StartTime)

	g.Title = "Изучить Go глубоко"
	g.IsActive = false
	g.StartTime = nil
	require.NoError(t, s.SaveGoal(ctx, g))

	got, err = s.GetGoal(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Изучить Go глубоко", got.Title)
	assert.Nil(t, got.StartTime)

	goals, err := s.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Len(t, goals, 1)

	require.NoError(t, s.DeleteGoal(ctx, "g1"))

	_, err = s.GetGoal(ctx, "g1")
	assert.ErrorIs(t, err, goal.ErrNotFound)
	assert.ErrorIs(t, s.DeleteGoal(ctx, "g1"), goal.ErrNotFound)
}

func TestStorage_SessionsOrderedByStart(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	late := goal.Session{ID: "s2", GoalID: "g1", StartTime: 2000, EndTime: 3000, Duration: 1000, InstanceID: "a"}
	early := goal.Session{ID: "s1", GoalID: "g1", StartTime: 1000, EndTime: 1500, Duration: 500, InstanceID: "a"}
	other := goal.Session{ID: "s3", GoalID: "g2", StartTime: 1200, EndTime: 1300, Duration: 100, InstanceID: "a"}

	require.NoError(t, s.SaveSession(ctx, late))
	require.NoError(t, s.SaveSession(ctx, early))
	require.NoError(t, s.SaveSession(ctx, other))

	sessions, err := s.LoadSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, "s1", sessions[0].ID)
	assert.Equal(t, "s3", sessions[1].ID)
	assert.Equal(t, "s2", sessions[2].ID)

	forGoal, err := s.LoadGoalSessions(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, forGoal, 2)
	assert.Equal(t, "s1", forGoal[0].ID)
}

func TestStorage_ActiveSessionLifecycle(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	as, err := s.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, as)

	require.NoError(t, s.SetActiveSession(ctx, goal.ActiveSession{GoalID: "g1", StartTime: 100, LastUpdated: 100}))
	require.NoError(t, s.SetActiveSession(ctx, goal.ActiveSession{GoalID: "g2", StartTime: 200, LastUpdated: 200}))

	as, err = s.GetActiveSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, as)
	assert.Equal(t, "g2", as.GoalID)

	require.NoError(t, s.ClearActiveSession(ctx))

	as, err = s.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, as)
}

func TestStorage_Achievements(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	rec := achievement.Record{ID: "goal-progress:25:g1", GoalID: "g1", UnlockedAt: 500, InstanceID: "a"}
	require.NoError(t, s.SaveAchievement(ctx, rec))

	records, err := s.LoadAchievements(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Seen)

	require.NoError(t, s.MarkSeen(ctx))

	records, err = s.LoadAchievements(ctx)
	require.NoError(t, err)
	assert.True(t, records[0].Seen)
}

func TestStorage_ReplaceAll(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveGoal(ctx, goal.Goal{ID: "old", Title: "старая", TotalHours: 10, CreatedAt: 1, LastModified: 1, InstanceID: "a"}))
	require.NoError(t, s.SaveSession(ctx, goal.Session{ID: "olds", GoalID: "old", StartTime: 1, EndTime: 2, Duration: 1, InstanceID: "a"}))
	require.NoError(t, s.SetActiveSession(ctx, goal.ActiveSession{GoalID: "old", StartTime: 1, LastUpdated: 1}))

	goals := []goal.Goal{{ID: "g1", Title: "новая", TotalHours: 10, CreatedAt: 2, LastModified: 2, InstanceID: "b"}}
	sessions := []goal.Session{{ID: "s1", GoalID: "g1", StartTime: 3, EndTime: 4, Duration: 1, InstanceID: "b"}}
	records := []achievement.Record{{ID: "goal-progress:25:g1", GoalID: "g1", UnlockedAt: 4, InstanceID: "b"}}

	require.NoError(t, s.ReplaceAll(ctx, goals, sessions, records, nil))

	gotGoals, err := s.LoadGoals(ctx)
	require.NoError(t, err)
	require.Len(t, gotGoals, 1)
	assert.Equal(t, "g1", gotGoals[0].ID)

	gotSessions, err := s.LoadSessions(ctx)
	require.NoError(t, err)
	require.Len(t, gotSessions, 1)
	assert.Equal(t, "s1", gotSessions[0].ID)

	gotRecords, err := s.LoadAchievements(ctx)
	require.NoError(t, err)
	require.Len(t, gotRecords, 1)

	// nil означает «таймер не запущен»: старая активная сессия удалена.
	as, err := s.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, as)

	active := goal.ActiveSession{GoalID: "g1", StartTime: 5, LastUpdated: 5}
	require.NoError(t, s.ReplaceAll(ctx, goals, sessions, records, &active))

	as, err = s.GetActiveSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, as)
	assert.Equal(t, "g1", as.GoalID)
}
