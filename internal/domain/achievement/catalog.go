package achievement

import (
	"fmt"

	"timekeeper/internal/domain/goal"
)

// PercentThresholds пороги выполнения цели, за которые выдаются достижения
var PercentThresholds = []int{25, 50, 75, 100}

// BuildCatalog строит каталог определений достижений по текущим целям.
// Цель с нулевым (или испорченным) объемом часов пропускается целиком:
// условие разблокировки для нее не определено.
func BuildCatalog(goals []goal.Goal) []Definition {
	var defs []Definition
	for _, g := range goals {
		if g.TotalHours <= 0 {
			continue
		}
		for _, percent := range PercentThresholds {
			defs = append(defs, Definition{
				ID: ID{Kind: KindGoalProgress, GoalID: g.ID, Percent: percent},
				Title: fmt.Sprintf("%d%% — %s", percent, g.Title),
				Description: fmt.Sprintf(
					"Достигнуто %d%% от цели «%s» (%.1f ч)",
					percent, g.Title, g.TotalHours,
				),
			})
		}
	}
	return defs
}
