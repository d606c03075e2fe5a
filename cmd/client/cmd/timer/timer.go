// cmd/client/cmd/timer/timer.go
package timer

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"timekeeper/internal/app/client"
	"timekeeper/internal/domain/achievement"
)

var TimerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Управление таймером",
	Long:  `Запуск и остановка таймера. Одновременно может идти только один таймер.`,
}

var StartCmd = &cobra.Command{
	Use:   "start <id цели>",
	Short: "Запустить таймер по цели",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		g, err := app.StartTimer(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("ошибка запуска таймера: %w", err)
		}

		fmt.Printf("▶ Таймер запущен: %s\n", g.Title)
		return nil
	},
}

var StopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Остановить таймер",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		sess, unlocked, err := app.StopTimer(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка остановки таймера: %w", err)
		}

		duration := time.Duration(sess.Duration) * time.Millisecond
		fmt.Printf("⏹ Таймер остановлен, записано %v\n", duration.Round(time.Second))

		printUnlocked(cmd, app, unlocked)

		return nil
	},
}

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать текущий таймер",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		active, err := app.ActiveTimer(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения таймера: %w", err)
		}

		if active == nil {
			fmt.Println("Таймер не запущен")
			return nil
		}

		elapsed := time.Since(time.UnixMilli(active.StartTime))
		fmt.Printf("▶ Таймер идет: %v\n", elapsed.Round(time.Second))

		if g, err := app.GetGoal(cmd.Context(), active.GoalID); err == nil {
			fmt.Printf("  Цель: %s\n", g.Title)
		}

		return nil
	},
}

// printUnlocked выводит новые достижения после записи времени.
func printUnlocked(cmd *cobra.Command, app *client.App, unlocked []achievement.Record) {
	if len(unlocked) == 0 {
		return
	}

	goals, err := app.ListGoals(cmd.Context(), true)
	if err != nil {
		goals = nil
	}

	highlight := color.New(color.FgYellow, color.Bold)
	fmt.Println()
	for _, rec := range unlocked {
		def := achievement.ResolveDefinition(rec, goals)
		highlight.Printf("🏆 Новое достижение: %s\n", def.Title)
		fmt.Printf("   %s\n", def.Description)
	}
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value("app").(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
