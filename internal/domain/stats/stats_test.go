package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeeper/internal/domain/goal"
)

func sessionOn(t *testing.T, day string, hours int64) goal.Session {
	t.Helper()
	start, err := time.ParseInLocation("2006-01-02 15:04", day, time.UTC)
	require.NoError(t, err)
	dur := hours * goal.MsPerHour
	return goal.Session{
		ID:        day,
		GoalID:    "g1",
		StartTime: start.UnixMilli(),
		EndTime:   start.UnixMilli() + dur,
		Duration:  dur,
	}
}

func TestLongestStreak(t *testing.T) {
	// Три дня подряд, затем пропуск 4 мая: серия остается равной трем.
	sessions := []goal.Session{
		sessionOn(t, "2024-05-01 10:00", 1),
		sessionOn(t, "2024-05-02 11:00", 2),
		sessionOn(t, "2024-05-03 09:00", 1),
		sessionOn(t, "2024-05-05 10:00", 1),
	}

	assert.Equal(t, 3, LongestStreak(sessions, time.UTC))
}

func TestLongestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, LongestStreak(nil, time.UTC))
}

func TestLongestStreakSingleDayManySessions(t *testing.T) {
	sessions := []goal.Session{
		sessionOn(t, "2024-05-01 10:00", 1),
		sessionOn(t, "2024-05-01 15:00", 1),
	}
	assert.Equal(t, 1, LongestStreak(sessions, time.UTC))
}

func TestLongestStreakDSTTolerance(t *testing.T) {
	// Весенний перевод часов: в Европе ночь 31 марта 2024 короче на час,
	// расстояние между полуночами - 23 часа. Серия не должна рваться.
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("нет базы таймзон")
	}

	mk := func(day string) goal.Session {
		start, perr := time.ParseInLocation("2006-01-02 15:04", day, loc)
		require.NoError(t, perr)
		return goal.Session{
			ID:        day,
			StartTime: start.UnixMilli(),
			EndTime:   start.UnixMilli() + goal.MsPerHour,
			Duration:  goal.MsPerHour,
		}
	}

	sessions := []goal.Session{
		mk("2024-03-30 12:00"),
		mk("2024-03-31 12:00"),
		mk("2024-04-01 12:00"),
	}
	assert.Equal(t, 3, LongestStreak(sessions, loc))
}

func TestDailyTotals(t *testing.T) {
	sessions := []goal.Session{
		sessionOn(t, "2024-05-01 10:00", 1),
		sessionOn(t, "2024-05-01 20:00", 2),
		sessionOn(t, "2024-05-02 08:00", 4),
		{ID: "zero", StartTime: 0, EndTime: 0, Duration: 0}, // игнорируется
	}

	totals := DailyTotals(sessions, time.UTC)
	require.Len(t, totals, 2)
	assert.Equal(t, 3*goal.MsPerHour, totals[0].DurationMs)
	assert.Equal(t, 4*goal.MsPerHour, totals[1].DurationMs)
	assert.True(t, totals[0].Day.Before(totals[1].Day))
}

func TestBestDayHours(t *testing.T) {
	sessions := []goal.Session{
		sessionOn(t, "2024-05-01 10:00", 1),
		sessionOn(t, "2024-05-02 08:00", 4),
	}
	assert.InDelta(t, 4.0, BestDayHours(sessions, time.UTC), 1e-9)
	assert.Equal(t, 0.0, BestDayHours(nil, time.UTC))
}
