package goal

import (
	"time"
)

const (
	// MsPerHour количество миллисекунд в часе
	MsPerHour = int64(time.Hour / time.Millisecond)

	// DefaultTotalHours запасное значение цели в часах для поврежденных записей
	DefaultTotalHours = 10.0
)

// Goal - отслеживаемая цель с накопленным временем
type Goal struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	TotalHours     float64 `json:"totalHours"`
	TotalTimeSpent int64   `json:"totalTimeSpent"` // миллисекунды
	IsActive       bool    `json:"isActive"`
	IsArchived     bool    `json:"isArchived"`
	StartTime      *int64  `json:"startTime,omitempty"` // epoch ms, есть только при isActive
	CreatedAt      int64   `json:"createdAt"`
	LastModified   int64   `json:"lastModified"`
	InstanceID     string  `json:"instanceId"`
}

// Session - неизменяемый завершенный интервал времени по цели
type Session struct {
	ID         string `json:"id"`
	GoalID     string `json:"goalId"`
	StartTime  int64  `json:"startTime"`
	EndTime    int64  `json:"endTime"`
	Duration   int64  `json:"duration"` // endTime - startTime, мс
	InstanceID string `json:"instanceId"`
}

// ActiveSession - синглтон текущего запущенного таймера
type ActiveSession struct {
	GoalID      string `json:"goalId"`
	StartTime   int64  `json:"startTime"`
	LastUpdated int64  `json:"lastUpdated"`
}

// Progress возвращает долю выполнения цели в диапазоне [0..1+].
// Для цели без заданного объема часов всегда 0.
func (g *Goal) Progress() float64 {
	if g.TotalHours <= 0 {
		return 0
	}
	return float64(g.TotalTimeSpent) / (g.TotalHours * float64(MsPerHour))
}

// Touch обновляет lastModified и владельца записи.
// Корректность слияния зависит от того, что каждый мутатор вызывает Touch.
func (g *Goal) Touch(now int64, instanceID string) {
	g.LastModified = now
	g.InstanceID = instanceID
}

// Sanitize приводит запись к безопасному виду при чтении из хранилища.
// Никогда не возвращает ошибку: поврежденные поля заменяются значениями
// по умолчанию, чтобы не ронять загрузку всего набора данных.
func (g *Goal) Sanitize() {
	if g.TotalHours <= 0 || g.TotalHours != g.TotalHours { // отрицательное или NaN
		g.TotalHours = DefaultTotalHours
	}
	if g.TotalTimeSpent < 0 {
		g.TotalTimeSpent = 0
	}
	if g.IsActive && g.StartTime == nil {
		g.IsActive = false
	}
	if !g.IsActive {
		g.StartTime = nil
	}
	if g.LastModified <= 0 {
		g.LastModified = g.CreatedAt
	}
}

// Sanitize восстанавливает производное поле duration.
func (s *Session) Sanitize() {
	if s.Duration != s.EndTime-s.StartTime {
		s.Duration = s.EndTime - s.StartTime
	}
	if s.Duration < 0 {
		s.Duration = 0
	}
}

// Matches проверяет инвариант синглтона: активная сессия должна ссылаться
// на активную цель с тем же startTime.
func (a *ActiveSession) Matches(g *Goal) bool {
	if g == nil || !g.IsActive || g.StartTime == nil {
		return false
	}
	return a.GoalID == g.ID && a.StartTime == *g.StartTime
}
