package snapshot

import (
	"timekeeper/internal/domain/achievement"
	"timekeeper/internal/domain/goal"
)

// Build собирает снапшот из четырех коллекций. Входные срезы копируются:
// снапшот не делит память с вызывающим и может спокойно сериализоваться
// или уходить в слияние, пока хранилище продолжает жить своей жизнью.
func Build(
	inst InstanceContext,
	now int64,
	goals []goal.Goal,
	sessions []goal.Session,
	achievements []achievement.Record,
	active *goal.ActiveSession,
) Snapshot {
	snap := Snapshot{
		Version:      SchemaVersion,
		InstanceID:   inst.ID,
		ExportedAt:   now,
		Goals:        make([]goal.Goal, len(goals)),
		Sessions:     make([]goal.Session, len(sessions)),
		Achievements: make([]achievement.Record, len(achievements)),
	}
	copy(snap.Goals, goals)
	copy(snap.Sessions, sessions)
	copy(snap.Achievements, achievements)

	if active != nil {
		cp := *active
		snap.ActiveSession = &cp
	}

	return snap
}

// Stats сводка по снапшоту для подтверждения перед импортом/слиянием
type Stats struct {
	Goals          int   `json:"goals"`
	Sessions       int   `json:"sessions"`
	Achievements   int   `json:"achievements"`
	TotalTimeSpent int64 `json:"totalTimeSpent"` // мс, по всем целям
	LastModified   int64 `json:"lastModified"`   // самая свежая правка цели
}

// Summarize считает легкую сводку по снапшоту.
func Summarize(s *Snapshot) Stats {
	st := Stats{
		Goals:        len(s.Goals),
		Sessions:     len(s.Sessions),
		Achievements: len(s.Achievements),
	}
	for _, g := range s.Goals {
		st.TotalTimeSpent += g.TotalTimeSpent
		if g.LastModified > st.LastModified {
			st.LastModified = g.LastModified
		}
	}
	return st
}
