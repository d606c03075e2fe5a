package peer

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"timekeeper/internal/domain/snapshot"
	"timekeeper/internal/domain/sync"
)

type Handler struct {
	service    sync.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service sync.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getSnapshotOp(), h.getSnapshot)
	huma.Register(api, h.syncOp(), h.sync)
}

func (h *Handler) getSnapshot(ctx context.Context, _ *getSnapshotInput) (*getSnapshotOutput, error) {
	snap, err := h.service.Export(ctx)
	if err != nil {
		h.log.Error("snapshot export failed", "error", err)
		return nil, huma.Error500InternalServerError("не удалось собрать снапшот")
	}

	return &getSnapshotOutput{Body: *snap}, nil
}

func (h *Handler) sync(ctx context.Context, input *syncInput) (*syncOutput, error) {
	report, err := h.service.ImportRaw(ctx, input.RawBody)
	if err != nil {
		var vErr *snapshot.ValidationError
		switch {
		case errors.As(err, &vErr):
			return nil, huma.Error422UnprocessableEntity(vErr.Error())
		case errors.Is(err, snapshot.ErrVersionUnsupported):
			return nil, huma.Error400BadRequest(err.Error())
		default:
			h.log.Error("snapshot merge failed", "error", err)
			return nil, huma.Error500InternalServerError("не удалось слить снапшот")
		}
	}

	h.log.Info("peer sync completed",
		"conflicts", len(report.Conflicts),
		"goals", report.After.Goals,
	)

	merged, err := h.service.Export(ctx)
	if err != nil {
		h.log.Error("snapshot export failed", "error", err)
		return nil, huma.Error500InternalServerError("не удалось собрать снапшот")
	}

	return &syncOutput{Body: *merged}, nil
}
