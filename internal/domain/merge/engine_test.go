package merge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
	"timekeeper/internal/domain/snapshot"
)

func snap(instanceID string, goals []goal.Goal, sessions []goal.Session, achs []achievement.Record, active *goal.ActiveSession) snapshot.Snapshot {
	return snapshot.Build(snapshot.InstanceContext{ID: instanceID}, 1700000000000,
		goals, sessions, achs, active)
}

func TestMergeGoalLWW(t *testing.T) {
	local := snap("a", []goal.Goal{
		{ID: "g1", Title: "локальная", LastModified: 100, InstanceID: "a"},
	}, nil, nil, nil)
	remote := snap("b", []goal.Goal{
		{ID: "g1", Title: "удаленная", LastModified: 200, InstanceID: "b"},
	}, nil, nil, nil)

	result := Merge(local, remote)

	require.Len(t, result.Goals, 1)
	assert.Equal(t, "удаленная", result.Goals[0].Title)

	require.Len(t, result.Conflicts, 1)
	c := result.Conflicts[0]
	assert.Equal(t, EntityGoal, c.Type)
	assert.Equal(t, "g1", c.ID)
	assert.Equal(t, ResolutionRemote, c.Resolution)

	// Обратное направление: локальная свежее.
	result = Merge(remote, local)
	assert.Equal(t, "удаленная", result.Goals[0].Title)
	assert.Equal(t, ResolutionLocal, result.Conflicts[0].Resolution)
}

func TestMergeGoalTieBreak(t *testing.T) {
	lg := goal.Goal{ID: "g1", Title: "от a", LastModified: 100, InstanceID: "a"}
	rg := goal.Goal{ID: "g1", Title: "от b", LastModified: 100, InstanceID: "b"}

	// Лексикографически больший instanceId побеждает: "b" > "a".
	result := Merge(snap("a", []goal.Goal{lg}, nil, nil, nil), snap("b", []goal.Goal{rg}, nil, nil, nil))
	require.Len(t, result.Goals, 1)
	assert.Equal(t, "от b", result.Goals[0].Title)
	assert.Equal(t, ResolutionRemote, result.Conflicts[0].Resolution)

	// Поменяли instanceId местами: победитель обязан перевернуться.
	lg.InstanceID, rg.InstanceID = "b", "a"
	result = Merge(snap("b", []goal.Goal{lg}, nil, nil, nil), snap("a", []goal.Goal{rg}, nil, nil, nil))
	assert.Equal(t, "от a", result.Goals[0].Title)
	assert.Equal(t, ResolutionLocal, result.Conflicts[0].Resolution)
}

func TestMergeGoalOneSided(t *testing.T) {
	local := snap("a", []goal.Goal{{ID: "g1", Title: "только локальная"}}, nil, nil, nil)
	remote := snap("b", []goal.Goal{{ID: "g2", Title: "только удаленная"}}, nil, nil, nil)

	result := Merge(local, remote)

	require.Len(t, result.Goals, 2)
	// Порядок: локальные в исходном порядке, затем новые удаленные.
	assert.Equal(t, "g1", result.Goals[0].ID)
	assert.Equal(t, "g2", result.Goals[1].ID)
	assert.Empty(t, result.Conflicts, "односторонние цели не конфликт")
}

func TestMergeSessionDedup(t *testing.T) {
	shared := []goal.Session{
		{ID: "s1", GoalID: "g1", StartTime: 300, EndTime: 400, Duration: 100},
		{ID: "s2", GoalID: "g1", StartTime: 100, EndTime: 200, Duration: 100},
	}
	localOnly := goal.Session{ID: "s3", GoalID: "g1", StartTime: 500, EndTime: 600, Duration: 100}
	remoteOnly := goal.Session{ID: "s4", GoalID: "g1", StartTime: 50, EndTime: 90, Duration: 40}

	local := snap("a", nil, append([]goal.Session{localOnly}, shared...), nil, nil)
	remote := snap("b", nil, append([]goal.Session{remoteOnly}, shared...), nil, nil)

	result := Merge(local, remote)

	// N общих + M локальных + M удаленных.
	require.Len(t, result.Sessions, 4)

	// Пересортировано по startTime по возрастанию.
	for i := 1; i < len(result.Sessions); i++ {
		assert.LessOrEqual(t, result.Sessions[i-1].StartTime, result.Sessions[i].StartTime)
	}
	assert.Equal(t, "s4", result.Sessions[0].ID)
	assert.Empty(t, result.Conflicts)
}

func TestMergeAchievementsEarlierUnlockWins(t *testing.T) {
	local := snap("a", nil, nil, []achievement.Record{
		{ID: "goal-progress:50:g1", GoalID: "g1", UnlockedAt: 2000, Seen: true, InstanceID: "a"},
	}, nil)
	remote := snap("b", nil, nil, []achievement.Record{
		{ID: "goal-progress:50:g1", GoalID: "g1", UnlockedAt: 1000, Seen: false, InstanceID: "b"},
	}, nil)

	result := Merge(local, remote)

	require.Len(t, result.Achievements, 1)
	got := result.Achievements[0]
	assert.Equal(t, int64(1000), got.UnlockedAt, "остается более ранний unlockedAt")
	assert.True(t, got.Seen, "seen монотонен: уведомление уже показывалось")
	assert.Empty(t, result.Conflicts, "коллизия достижений безобидна")
}

func TestMergeActiveSession(t *testing.T) {
	remoteActive := &goal.ActiveSession{GoalID: "g1", StartTime: 1000, LastUpdated: 5000}

	t.Run("both nil", func(t *testing.T) {
		result := Merge(snap("a", nil, nil, nil, nil), snap("b", nil, nil, nil, nil))
		assert.Nil(t, result.ActiveSession)
	})

	t.Run("local nil takes remote", func(t *testing.T) {
		result := Merge(snap("a", nil, nil, nil, nil), snap("b", nil, nil, nil, remoteActive))
		require.NotNil(t, result.ActiveSession)
		assert.Equal(t, *remoteActive, *result.ActiveSession)
	})

	t.Run("greater lastUpdated wins", func(t *testing.T) {
		localActive := &goal.ActiveSession{GoalID: "g2", StartTime: 900, LastUpdated: 7000}
		result := Merge(snap("a", nil, nil, nil, localActive), snap("b", nil, nil, nil, remoteActive))
		assert.Equal(t, "g2", result.ActiveSession.GoalID)
	})

	t.Run("equal lastUpdated keeps local", func(t *testing.T) {
		localActive := &goal.ActiveSession{GoalID: "g2", StartTime: 900, LastUpdated: 5000}
		result := Merge(snap("a", nil, nil, nil, localActive), snap("b", nil, nil, nil, remoteActive))
		assert.Equal(t, "g2", result.ActiveSession.GoalID)
	})
}

func TestMergeIdempotent(t *testing.T) {
	start := int64(1000)
	s := snap("a",
		[]goal.Goal{{ID: "g1", Title: "Гитара", TotalHours: 10, IsActive: true, StartTime: &start, LastModified: 100, InstanceID: "a"}},
		[]goal.Session{{ID: "s1", GoalID: "g1", StartTime: 10, EndTime: 20, Duration: 10}},
		[]achievement.Record{{ID: "goal-progress:25:g1", GoalID: "g1", UnlockedAt: 50}},
		&goal.ActiveSession{GoalID: "g1", StartTime: 1000, LastUpdated: 2000})

	result := Merge(s, s)

	assert.Equal(t, s.Goals, result.Goals)
	assert.Equal(t, s.Sessions, result.Sessions)
	assert.Equal(t, s.Achievements, result.Achievements)
	assert.Equal(t, *s.ActiveSession, *result.ActiveSession)

	// Единственные конфликты - ничьи, разрешенные в идентичное содержимое.
	for _, c := range result.Conflicts {
		assert.Equal(t, c.Local, c.Remote)
	}
}

func TestMergeDeterministic(t *testing.T) {
	local := snap("a",
		[]goal.Goal{
			{ID: "g1", LastModified: 100, InstanceID: "a"},
			{ID: "g2", LastModified: 300, InstanceID: "a"},
		},
		[]goal.Session{{ID: "s1", StartTime: 100}, {ID: "s2", StartTime: 100}},
		[]achievement.Record{{ID: "x", UnlockedAt: 5}},
		nil)
	remote := snap("b",
		[]goal.Goal{
			{ID: "g2", LastModified: 300, InstanceID: "b"},
			{ID: "g3", LastModified: 50, InstanceID: "b"},
		},
		[]goal.Session{{ID: "s2", StartTime: 100}, {ID: "s3", StartTime: 40}},
		[]achievement.Record{{ID: "x", UnlockedAt: 9}},
		nil)

	first, err := json.Marshal(Merge(local, remote))
	require.NoError(t, err)
	second, err := json.Marshal(Merge(local, remote))
	require.NoError(t, err)

	assert.Equal(t, first, second, "повторное слияние тех же входов побайтово идентично")
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	start := int64(1000)
	localGoals := []goal.Goal{{ID: "g1", Title: "до", StartTime: &start, IsActive: true, LastModified: 100, InstanceID: "a"}}
	local := snap("a", localGoals, nil, nil, nil)
	remote := snap("b", []goal.Goal{{ID: "g1", Title: "после", LastModified: 200, InstanceID: "b"}}, nil, nil, nil)

	result := Merge(local, remote)

	// Результат не делит память с входами.
	result.Goals[0].Title = "мутация"
	assert.Equal(t, "до", local.Goals[0].Title)
	assert.Equal(t, "после", remote.Goals[0].Title)

	require.NotNil(t, local.Goals[0].StartTime)
	assert.Equal(t, int64(1000), *local.Goals[0].StartTime)
}
