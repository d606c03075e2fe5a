package achievement

// Record - свидетельство достигнутого порога. Запись неизменяема после
// создания за единственным исключением: флаг seen один раз переходит
// false -> true при показе уведомления.
type Record struct {
	ID         string `json:"id"` // сериализованная форма ID
	GoalID     string `json:"goalId"`
	UnlockedAt int64  `json:"unlockedAt"`
	Seen       bool   `json:"seen"`
	InstanceID string `json:"instanceId"`
}

// Definition описание разблокируемого достижения, производное от текущих целей
type Definition struct {
	ID          ID
	Title       string
	Description string
}

// CollectUnseen возвращает записи, о которых пользователь еще не уведомлен.
func CollectUnseen(records []Record) []Record {
	var unseen []Record
	for _, r := range records {
		if !r.Seen {
			unseen = append(unseen, r)
		}
	}
	return unseen
}

// MarkSeen помечает все записи как показанные и возвращает новый срез,
// не трогая входной.
func MarkSeen(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		out[i].Seen = true
	}
	return out
}
