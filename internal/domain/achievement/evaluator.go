package achievement

import (
	"timekeeper/internal/domain/goal"
)

// Evaluate вычисляет достижения, которые должны быть разблокированы при
// текущем состоянии целей. Функция чистая и монотонная: уже существующие
// записи никогда не пересматриваются и не удаляются, к ним только
// добавляются новые с unlockedAt = now и seen = false.
//
// Возвращает полный обновленный набор записей и отдельно свежие записи
// для уведомления.
func Evaluate(goals []goal.Goal, existing []Record, now int64, instanceID string) (updated, unlocked []Record) {
	byID := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		byID[r.ID] = struct{}{}
	}

	updated = make([]Record, len(existing))
	copy(updated, existing)

	progress := make(map[string]float64, len(goals))
	for _, g := range goals {
		progress[g.ID] = g.Progress()
	}

	for _, def := range BuildCatalog(goals) {
		key := def.ID.String()
		if _, ok := byID[key]; ok {
			continue
		}
		if progress[def.ID.GoalID] < float64(def.ID.Percent)/100 {
			continue
		}

		rec := Record{
			ID:         key,
			GoalID:     def.ID.GoalID,
			UnlockedAt: now,
			Seen:       false,
			InstanceID: instanceID,
		}
		updated = append(updated, rec)
		unlocked = append(unlocked, rec)
	}

	return updated, unlocked
}
