// Package merge реализует детерминированное слияние двух независимо
// изменявшихся снапшотов в один. Функция чистая: входы не мутируются,
// одинаковые входы всегда дают одинаковый результат. Симметрия не
// гарантируется и не требуется - local и remote играют разные роли.
package merge

import (
	"sort"

	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
	"timekeeper/internal/domain/snapshot"
)

// Merge объединяет два снапшота по стратегиям для каждого типа сущностей:
// цели - last-write-wins по lastModified, сессии - дедупликация по id,
// достижения - дедупликация с более ранним unlockedAt, активная сессия -
// более свежий lastUpdated. Для корректно типизированных входов функция
// не может завершиться неудачей; структурная проверка - забота вызывающего.
func Merge(local, remote snapshot.Snapshot) Result {
	goals, conflicts := mergeGoals(local.Goals, remote.Goals)

	return Result{
		Goals:         goals,
		Sessions:      mergeSessions(local.Sessions, remote.Sessions),
		Achievements:  mergeAchievements(local.Achievements, remote.Achievements),
		ActiveSession: mergeActive(local.ActiveSession, remote.ActiveSession),
		Conflicts:     conflicts,
	}
}

// mergeGoals применяет LWW по lastModified с детерминированным разрешением
// ничьей: при равных метках побеждает лексикографически больший instanceId.
// Это жертвует "справедливостью" выбора устройства ради воспроизводимости
// слияния при коллизии часов. Порядок результата: локальные цели в исходном
// порядке, затем новые цели с удаленной стороны.
func mergeGoals(local, remote []goal.Goal) ([]goal.Goal, []Conflict) {
	remoteByID := make(map[string]goal.Goal, len(remote))
	for _, g := range remote {
		remoteByID[g.ID] = g
	}

	localIDs := make(map[string]struct{}, len(local))
	merged := make([]goal.Goal, 0, len(local)+len(remote))
	var conflicts []Conflict

	for _, lg := range local {
		localIDs[lg.ID] = struct{}{}

		rg, both := remoteByID[lg.ID]
		if !both {
			merged = append(merged, copyGoal(lg))
			continue
		}

		remoteWins := rg.LastModified > lg.LastModified ||
			(rg.LastModified == lg.LastModified && rg.InstanceID > lg.InstanceID)

		winner, resolution := lg, ResolutionLocal
		if remoteWins {
			winner, resolution = rg, ResolutionRemote
		}

		merged = append(merged, copyGoal(winner))
		conflicts = append(conflicts, Conflict{
			Type:       EntityGoal,
			ID:         lg.ID,
			Local:      copyGoal(lg),
			Remote:     copyGoal(rg),
			Resolution: resolution,
		})
	}

	for _, rg := range remote {
		if _, seen := localIDs[rg.ID]; !seen {
			merged = append(merged, copyGoal(rg))
		}
	}

	return merged, conflicts
}

// mergeSessions объединяет неизменяемые сессии: совпадающий id означает
// один и тот же интервал, берется первый вставленный, конфликт не пишется.
// Результат пересортирован по startTime для стабильного человекочитаемого
// порядка; стабильная сортировка сохраняет детерминизм при равных метках.
func mergeSessions(local, remote []goal.Session) []goal.Session {
	seen := make(map[string]struct{}, len(local)+len(remote))
	merged := make([]goal.Session, 0, len(local)+len(remote))

	for _, s := range append(append([]goal.Session{}, local...), remote...) {
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		merged = append(merged, s)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartTime < merged[j].StartTime
	})
	return merged
}

// mergeAchievements объединяет записи достижений. Коллизия id считается
// безобидной (гонка разблокировок или расхождение часов): остается более
// ранний unlockedAt - достижение "на самом деле" заработано в самый ранний
// подтвержденный момент. Флаг seen монотонный: если любая сторона уже
// показала уведомление, повторного не будет.
func mergeAchievements(local, remote []achievement.Record) []achievement.Record {
	index := make(map[string]int, len(local)+len(remote))
	merged := make([]achievement.Record, 0, len(local)+len(remote))

	for _, r := range append(append([]achievement.Record{}, local...), remote...) {
		at, dup := index[r.ID]
		if !dup {
			index[r.ID] = len(merged)
			merged = append(merged, r)
			continue
		}

		kept := &merged[at]
		if r.UnlockedAt < kept.UnlockedAt {
			seen := kept.Seen || r.Seen
			*kept = r
			kept.Seen = seen
		} else if r.Seen {
			kept.Seen = true
		}
	}

	return merged
}

// mergeActive выбирает живую активную сессию: недавно обновленная сторона
// считается последней подтвержденной. При равенстве остается локальная.
func mergeActive(local, remote *goal.ActiveSession) *goal.ActiveSession {
	switch {
	case local == nil && remote == nil:
		return nil
	case local == nil:
		cp := *remote
		return &cp
	case remote == nil:
		cp := *local
		return &cp
	case remote.LastUpdated > local.LastUpdated:
		cp := *remote
		return &cp
	default:
		cp := *local
		return &cp
	}
}

// copyGoal делает копию без разделяемой памяти: результат слияния не должен
// удерживать ссылки на входные снапшоты.
func copyGoal(g goal.Goal) goal.Goal {
	if g.StartTime != nil {
		st := *g.StartTime
		g.StartTime = &st
	}
	return g
}
