package achievement

import (
	"fmt"
	"strconv"
	"strings"

	"timekeeper/internal/domain/goal"
)

// ResolveDefinition восстанавливает определение достижения по сохраненной
// записи. Нужна для отображения истории: запись может ссылаться на давно
// удаленную цель или быть создана старой версией приложения с другим
// форматом идентификатора. Запись никогда не отбрасывается молча -
// в худшем случае получается обобщенное описание.
//
// Разбор старых форматов - шим обратной совместимости, не контракт:
// миграции между схемами достижений у приложения нет.
func ResolveDefinition(rec Record, goals []goal.Goal) Definition {
	titles := make(map[string]string, len(goals))
	for _, g := range goals {
		titles[g.ID] = g.Title
	}

	if id, err := ParseID(rec.ID); err == nil {
		title, ok := titles[id.GoalID]
		if !ok {
			title = "удаленная цель"
		}
		return Definition{
			ID:          id,
			Title:       fmt.Sprintf("%d%% — %s", id.Percent, title),
			Description: fmt.Sprintf("Достигнуто %d%% от цели «%s»", id.Percent, title),
		}
	}

	if id, ok := parseLegacyID(rec.ID); ok {
		title, found := titles[id.GoalID]
		if !found {
			title = "удаленная цель"
		}
		return Definition{
			ID:          id,
			Title:       fmt.Sprintf("%d%% — %s", id.Percent, title),
			Description: fmt.Sprintf("Достигнуто %d%% от цели «%s»", id.Percent, title),
		}
	}

	// Совсем неизвестный формат: показываем хоть что-то.
	return Definition{
		ID:          ID{Kind: KindGoalProgress, GoalID: rec.GoalID},
		Title:       "Достижение",
		Description: fmt.Sprintf("Достижение из прежней версии приложения (%s)", rec.ID),
	}
}

// parseLegacyID разбирает идентификаторы старой схемы вида
// "<goalID>_progress_<percent>". Формат хрупкий: goalID с подчеркиванием
// внутри разбирается только благодаря поиску суффикса с конца.
func parseLegacyID(s string) (ID, bool) {
	idx := strings.LastIndex(s, "_progress_")
	if idx <= 0 {
		return ID{}, false
	}

	percent, err := strconv.Atoi(s[idx+len("_progress_"):])
	if err != nil || percent <= 0 || percent > 100 {
		return ID{}, false
	}

	return ID{Kind: KindGoalProgress, GoalID: s[:idx], Percent: percent}, true
}
