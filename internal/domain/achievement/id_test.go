package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeeper/internal/domain/goal"
)

func TestIDRoundTrip(t *testing.T) {
	id := ID{Kind: KindGoalProgress, GoalID: "g1", Percent: 50}
	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestIDGoalIDWithDelimiter(t *testing.T) {
	// Двоеточие внутри goalID не должно ломать разбор: goalID занимает
	// последний сегмент целиком.
	id := ID{Kind: KindGoalProgress, GoalID: "urn:goal:42", Percent: 75}
	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, "urn:goal:42", parsed.GoalID)
	assert.Equal(t, 75, parsed.Percent)
}

func TestParseIDErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no segments", "goal-progress"},
		{"unknown kind", "streak:3:g1"},
		{"bad percent", "goal-progress:abc:g1"},
		{"percent out of range", "goal-progress:0:g1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseID(tt.in)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}
}

func TestResolveDefinition(t *testing.T) {
	goals := []goal.Goal{{ID: "g1", Title: "Гитара", TotalHours: 10}}

	t.Run("current format with live goal", func(t *testing.T) {
		def := ResolveDefinition(Record{ID: "goal-progress:50:g1", GoalID: "g1"}, goals)
		assert.Equal(t, 50, def.ID.Percent)
		assert.Contains(t, def.Title, "Гитара")
	})

	t.Run("goal deleted", func(t *testing.T) {
		def := ResolveDefinition(Record{ID: "goal-progress:50:gone", GoalID: "gone"}, goals)
		assert.Equal(t, 50, def.ID.Percent)
		assert.Contains(t, def.Title, "удаленная цель")
	})

	t.Run("legacy underscore format", func(t *testing.T) {
		def := ResolveDefinition(Record{ID: "g1_progress_25", GoalID: "g1"}, goals)
		assert.Equal(t, 25, def.ID.Percent)
		assert.Equal(t, "g1", def.ID.GoalID)
	})

	t.Run("unknown format still renders", func(t *testing.T) {
		def := ResolveDefinition(Record{ID: "???", GoalID: "g9"}, goals)
		assert.NotEmpty(t, def.Title)
		assert.Contains(t, def.Description, "???")
	})
}
