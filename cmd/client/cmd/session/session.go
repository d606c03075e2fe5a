// cmd/client/cmd/session/session.go
package session

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"timekeeper/internal/app/client"
	"timekeeper/internal/domain/achievement"
)

var (
	addStart    string
	addDuration time.Duration
)

var SessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Управление сессиями",
}

var AddCmd = &cobra.Command{
	Use:   "add <id цели>",
	Short: "Добавить сессию задним числом",
	Long: `Добавляет завершенную сессию вручную, например когда таймер
забыли запустить. Время начала задается в формате "2006-01-02 15:04".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value("app").(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		start, err := time.ParseInLocation("2006-01-02 15:04", addStart, time.Local)
		if err != nil {
			return fmt.Errorf("неверный формат времени начала: %w", err)
		}
		if addDuration <= 0 {
			return fmt.Errorf("длительность должна быть положительной")
		}

		end := start.Add(addDuration)

		sess, unlocked, err := app.AddSession(cmd.Context(), args[0], start.UnixMilli(), end.UnixMilli())
		if err != nil {
			return fmt.Errorf("ошибка добавления сессии: %w", err)
		}

		fmt.Printf("✅ Сессия записана: %v с %s\n",
			time.Duration(sess.Duration)*time.Millisecond,
			start.Format("2006-01-02 15:04"))

		if len(unlocked) > 0 {
			goals, _ := app.ListGoals(cmd.Context(), true)
			highlight := color.New(color.FgYellow, color.Bold)
			for _, rec := range unlocked {
				def := achievement.ResolveDefinition(rec, goals)
				highlight.Printf("🏆 Новое достижение: %s\n", def.Title)
			}
		}

		return nil
	},
}

func init() {
	AddCmd.Flags().StringVar(&addStart, "start", "", "время начала (2006-01-02 15:04)")
	AddCmd.Flags().DurationVar(&addDuration, "duration", 0, "длительность (например 1h30m)")
	_ = AddCmd.MarkFlagRequired("start")
	_ = AddCmd.MarkFlagRequired("duration")
}
