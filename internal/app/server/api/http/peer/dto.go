package peer

import (
	"timekeeper/internal/domain/snapshot"
)

// Request/Response структуры для GetSnapshot
type getSnapshotInput struct{}

type getSnapshotOutput struct {
	Body snapshot.Snapshot
}

// Request/Response структуры для Sync. Тело запроса принимается сырым:
// структурная проверка снапшота выполняется доменным парсером, а не
// схемой API.
type syncInput struct {
	RawBody []byte `contentType:"application/json"`
}

type syncOutput struct {
	Body snapshot.Snapshot
}
