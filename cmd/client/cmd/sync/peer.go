// cmd/client/cmd/sync/peer.go
package sync

import (
	"fmt"

	"github.com/spf13/cobra"
)

var PullCmd = &cobra.Command{
	Use:   "pull <адрес>",
	Short: "Забрать данные пира",
	Long: `Забирает снапшот запущенного экземпляра по адресу (например
localhost:8954) и сливает его локально. Пир при этом не меняется.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Запрос снапшота у %s...\n", args[0])

		report, err := app.PullFromPeer(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка синхронизации с пиром: %w", err)
		}

		printReport(cmd, app, report)

		return nil
	},
}

var PeerCmd = &cobra.Command{
	Use:   "peer <адрес>",
	Short: "Двусторонний обмен с пиром",
	Long: `Отправляет локальный снапшот запущенному экземпляру, получает его
слитое состояние и применяет его локально. После обмена оба экземпляра
сходятся к одинаковому состоянию.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("Обмен снапшотами с %s...\n", args[0])

		report, err := app.SyncWithPeer(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка синхронизации с пиром: %w", err)
		}

		printReport(cmd, app, report)

		return nil
	},
}
