// cmd/client/cmd/goal/archive.go
package goal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Архивировать цель",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if err := app.ArchiveGoal(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка архивации цели: %w", err)
		}

		fmt.Println("✅ Цель перемещена в архив")
		return nil
	},
}

var RestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Вернуть цель из архива",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if err := app.RestoreGoal(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка восстановления цели: %w", err)
		}

		fmt.Println("✅ Цель восстановлена из архива")
		return nil
	},
}

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить цель",
	Long: `Безвозвратно удаляет цель. Завершенные сессии сохраняются:
история потраченного времени не искажается.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if err := app.DeleteGoal(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("ошибка удаления цели: %w", err)
		}

		fmt.Println("✅ Цель удалена")
		return nil
	},
}
