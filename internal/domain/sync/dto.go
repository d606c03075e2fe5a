package sync

import (
	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/merge"
	"timekeeper/internal/domain/snapshot"
)

// MergeReport итог слияния для пользовательской сводки "до/после":
// импорт и синхронизация никогда не проходят молча.
type MergeReport struct {
	Before    snapshot.Stats       `json:"before"`
	After     snapshot.Stats       `json:"after"`
	Conflicts []merge.Conflict     `json:"conflicts"`
	Unlocked  []achievement.Record `json:"unlocked,omitempty"`
}
