// cmd/client/cmd/serve.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"timekeeper/internal/app/server/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Принимать синхронизацию от других устройств",
	Long: `Поднимает HTTP-сервер, через который другие экземпляры могут
забрать снапшот этого устройства или обменяться с ним данными.

Остановка — Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		mux := api.New(app.SyncService(), app.InstanceID(), log)

		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		fmt.Printf("▶ Сервер запущен на %s\n", addr)
		fmt.Println("  Подключение с другого устройства: timekeeper sync peer <адрес>")

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ошибка сервера: %w", err)
			}
		case <-stop:
			fmt.Println("\nОстановка сервера...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("ошибка остановки сервера: %w", err)
			}
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "адрес прослушивания (по умолчанию из конфигурации)")
}
