package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timekeeper/internal/app/server/api"
	"timekeeper/internal/app/server/config"
	"timekeeper/internal/domain/sync"
	"timekeeper/internal/infrastructure/migration"
	"timekeeper/internal/infrastructure/storage/sqlite"
	"timekeeper/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := migration.New(cfg.DB.Migrations, cfg.DB.DatabasePath, migration.DefaultEngine).Up(); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	storage, err := sqlite.New(cfg.DB.DatabasePath, log)
	if err != nil {
		log.Error("storage init failed", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	service := sync.NewService(storage, log)
	mux := api.New(service, storage.InstanceID(), log)

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Info("server started",
		"address", cfg.Server.RunAddress,
		"instance_id", storage.InstanceID(),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
