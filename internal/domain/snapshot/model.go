package snapshot

import (
	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
)

// SchemaVersion текущая поддерживаемая версия формата снапшота.
// Снапшоты с большей версией отклоняются до слияния, с меньшей или равной -
// принимаются (схема развивается только вперед).
const SchemaVersion = 1

// Snapshot версионированный слепок всех данных инстанса. Используется и для
// файлового экспорта/импорта, и как тело обмена между пирами. Отдельно не
// хранится - собирается по требованию.
type Snapshot struct {
	Version       int                  `json:"version"`
	InstanceID    string               `json:"instanceId"`
	ExportedAt    int64                `json:"exportedAt"`
	Goals         []goal.Goal          `json:"goals"`
	Sessions      []goal.Session       `json:"sessions"`
	Achievements  []achievement.Record `json:"achievements"`
	ActiveSession *goal.ActiveSession  `json:"activeSession"`
}

// InstanceContext явный контекст инстанса, передаваемый в сборку снапшота
// и оценку достижений вместо чтения глобального состояния.
type InstanceContext struct {
	ID string
}
