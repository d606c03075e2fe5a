package peer

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getSnapshotOp() huma.Operation {
	return huma.Operation{
		OperationID: "peer-get-snapshot",
		Method:      http.MethodGet,
		Path:        "/api/v1/snapshot",
		Summary:     "Получить снапшот состояния",
		Description: "Возвращает полный снапшот данных этого экземпляра",
		Tags:        []string{"peer"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) syncOp() huma.Operation {
	return huma.Operation{
		OperationID: "peer-sync",
		Method:      http.MethodPost,
		Path:        "/api/v1/sync",
		Summary:     "Обменяться снапшотами",
		Description: "Сливает присланный снапшот с локальным состоянием и возвращает результат слияния",
		Tags:        []string{"peer"},
		Middlewares: h.middleware,
	}
}
