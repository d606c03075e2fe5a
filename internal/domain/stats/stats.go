// Package stats агрегирует историю сессий для отображения: суммы по
// календарным дням, самая длинная серия дней подряд, лучший день.
package stats

import (
	"sort"
	"time"

	"timekeeper/internal/domain/goal"
)

// DayTotal суммарное время за один календарный день
type DayTotal struct {
	Day        time.Time // полночь локального дня
	DurationMs int64
}

// DailyTotals раскладывает сессии (по всем целям) по календарным дням
// в указанной таймзоне. Результат отсортирован по дате. Сессии с нулевой
// длительностью не учитываются.
func DailyTotals(sessions []goal.Session, loc *time.Location) []DayTotal {
	byDay := make(map[time.Time]int64)
	for _, s := range sessions {
		if s.Duration <= 0 {
			continue
		}
		t := time.UnixMilli(s.StartTime).In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		byDay[day] += s.Duration
	}

	totals := make([]DayTotal, 0, len(byDay))
	for day, dur := range byDay {
		totals = append(totals, DayTotal{Day: day, DurationMs: dur})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Day.Before(totals[j].Day) })
	return totals
}

// LongestStreak возвращает длину самой длинной серии последовательных
// календарных дней с ненулевым временем. Соседство дней проверяется по
// расстоянию между их полуночами с допуском в час: переход на летнее или
// зимнее время дает сутки длиной 23 или 25 часов.
func LongestStreak(sessions []goal.Session, loc *time.Location) int {
	totals := DailyTotals(sessions, loc)
	if len(totals) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(totals); i++ {
		gap := totals[i].Day.Sub(totals[i-1].Day)
		if gap >= 23*time.Hour && gap <= 25*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// BestDayHours возвращает наибольшую дневную сумму в часах.
func BestDayHours(sessions []goal.Session, loc *time.Location) float64 {
	var best int64
	for _, dt := range DailyTotals(sessions, loc) {
		if dt.DurationMs > best {
			best = dt.DurationMs
		}
	}
	return float64(best) / float64(goal.MsPerHour)
}
