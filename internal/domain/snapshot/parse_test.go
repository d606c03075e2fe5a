package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeeper/internal/domain/goal"
)

func validRaw(t *testing.T) []byte {
	t.Helper()
	snap := Build(InstanceContext{ID: "inst-a"}, 1700000000000,
		[]goal.Goal{{ID: "g1", Title: "Гитара", TotalHours: 10, CreatedAt: 1, LastModified: 2, InstanceID: "inst-a"}},
		[]goal.Session{{ID: "s1", GoalID: "g1", StartTime: 100, EndTime: 200, Duration: 100, InstanceID: "inst-a"}},
		nil, nil)
	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	return raw
}

func TestParseValid(t *testing.T) {
	snap, err := Parse(validRaw(t))
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, snap.Version)
	assert.Equal(t, "inst-a", snap.InstanceID)
	assert.Len(t, snap.Goals, 1)
	assert.Len(t, snap.Sessions, 1)
	assert.Empty(t, snap.Achievements)
	assert.Nil(t, snap.ActiveSession)
}

func TestParseStructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{"not an object", `[1,2,3]`, ""},
		{"garbage", `not json`, ""},
		{"missing version", `{"instanceId":"a","exportedAt":1,"goals":[],"sessions":[],"achievements":[]}`, "version"},
		{"string version", `{"version":"1","instanceId":"a","exportedAt":1,"goals":[],"sessions":[],"achievements":[]}`, "version"},
		{"numeric instanceId", `{"version":1,"instanceId":7,"exportedAt":1,"goals":[],"sessions":[],"achievements":[]}`, "instanceId"},
		{"missing exportedAt", `{"version":1,"instanceId":"a","goals":[],"sessions":[],"achievements":[]}`, "exportedAt"},
		{"goals not array", `{"version":1,"instanceId":"a","exportedAt":1,"goals":{},"sessions":[],"achievements":[]}`, "goals"},
		{"sessions missing", `{"version":1,"instanceId":"a","exportedAt":1,"goals":[],"achievements":[]}`, "sessions"},
		{"achievements null", `{"version":1,"instanceId":"a","exportedAt":1,"goals":[],"sessions":[],"achievements":null}`, "achievements"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.False(t, Valid([]byte(tt.raw)))
		})
	}
}

func TestParseVersionGate(t *testing.T) {
	raw := `{"version":99,"instanceId":"a","exportedAt":1,"goals":[],"sessions":[],"achievements":[]}`
	_, err := Parse([]byte(raw))
	assert.ErrorIs(t, err, ErrVersionUnsupported)

	// Версия ниже текущей принимается.
	old := `{"version":0,"instanceId":"a","exportedAt":1,"goals":[],"sessions":[],"achievements":[]}`
	_, err = Parse([]byte(old))
	assert.NoError(t, err)
}

func TestBuildCopiesInput(t *testing.T) {
	goals := []goal.Goal{{ID: "g1", Title: "до"}}
	active := &goal.ActiveSession{GoalID: "g1", StartTime: 5, LastUpdated: 6}

	snap := Build(InstanceContext{ID: "i"}, 10, goals, nil, nil, active)

	goals[0].Title = "после"
	active.LastUpdated = 99

	assert.Equal(t, "до", snap.Goals[0].Title)
	assert.Equal(t, int64(6), snap.ActiveSession.LastUpdated)
	assert.NotNil(t, snap.Sessions, "пустые коллекции сериализуются как [], не null")
	assert.NotNil(t, snap.Achievements)
}

func TestSummarize(t *testing.T) {
	snap := Build(InstanceContext{ID: "i"}, 10,
		[]goal.Goal{
			{ID: "g1", TotalTimeSpent: 100, LastModified: 500},
			{ID: "g2", TotalTimeSpent: 50, LastModified: 900},
		},
		[]goal.Session{{ID: "s1"}},
		nil, nil)

	st := Summarize(&snap)
	assert.Equal(t, 2, st.Goals)
	assert.Equal(t, 1, st.Sessions)
	assert.Equal(t, 0, st.Achievements)
	assert.Equal(t, int64(150), st.TotalTimeSpent)
	assert.Equal(t, int64(900), st.LastModified)
}
