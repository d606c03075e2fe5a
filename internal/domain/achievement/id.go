package achievement

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind вид достижения
type Kind string

const (
	// KindGoalProgress достижение за процент выполнения конкретной цели
	KindGoalProgress Kind = "goal-progress"
)

// ID структурированный идентификатор достижения. Внутри ядра идентификатор
// всегда разобран на составляющие; в строку он превращается только на границе
// хранилища и wire-формата.
type ID struct {
	Kind    Kind
	GoalID  string
	Percent int
}

// String сериализует идентификатор в стабильную строковую форму
// "goal-progress:<percent>:<goalID>". GoalID стоит последним сегментом,
// поэтому разделитель внутри него не ломает разбор.
func (id ID) String() string {
	return fmt.Sprintf("%s:%d:%s", id.Kind, id.Percent, id.GoalID)
}

// ParseID разбирает строковую форму идентификатора.
func ParseID(s string) (ID, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}

	kind := Kind(parts[0])
	if kind != KindGoalProgress {
		return ID{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidID, parts[0])
	}

	percent, err := strconv.Atoi(parts[1])
	if err != nil || percent <= 0 || percent > 100 {
		return ID{}, fmt.Errorf("%w: bad percent %q", ErrInvalidID, parts[1])
	}

	return ID{Kind: kind, Percent: percent, GoalID: parts[2]}, nil
}
