package merge

import (
	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
)

// EntityType тип сущности, к которой относится конфликт
type EntityType string

const (
	EntityGoal        EntityType = "goal"
	EntitySession     EntityType = "session"
	EntityAchievement EntityType = "achievement"
)

// Resolution как был разрешен конфликт
type Resolution string

const (
	ResolutionLocal  Resolution = "local"
	ResolutionRemote Resolution = "remote"
	ResolutionMerge  Resolution = "merge"
)

// Conflict запись журнала разрешенных конфликтов. Слияние никогда не
// молчит о спорных местах: каждая пара одинаковых id целей оставляет след
// с обеими версиями для пользовательской сводки.
type Conflict struct {
	Type       EntityType `json:"type"`
	ID         string     `json:"id"`
	Local      any        `json:"local"`
	Remote     any        `json:"remote"`
	Resolution Resolution `json:"resolution"`
}

// Result итог слияния двух снапшотов
type Result struct {
	Goals         []goal.Goal
	Sessions      []goal.Session
	Achievements  []achievement.Record
	ActiveSession *goal.ActiveSession
	Conflicts     []Conflict
}
