//GET  /api/v1/health    # Статус и идентификатор экземпляра
//GET  /api/v1/snapshot  # Полный снапшот данных
//POST /api/v1/sync      # Слить присланный снапшот и вернуть результат

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "timekeeper/internal/app/server/api/http/health"
	"timekeeper/internal/app/server/api/http/middleware"
	"timekeeper/internal/app/server/api/http/middleware/logger"
	peerAPI "timekeeper/internal/app/server/api/http/peer"
	"timekeeper/internal/domain/sync"
)

type Handlers struct {
	Health *healthAPI.Handler
	Peer   *peerAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(service sync.Servicer, instanceID string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Timekeeper Peer API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(service, instanceID, log)
	h.Health.SetupRoutes(API)
	h.Peer.SetupRoutes(API)

	return mux
}

func handlers(service sync.Servicer, instanceID string, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(instanceID, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	peerHandler := peerAPI.NewHandler(service, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Peer:   peerHandler,
	}
}
