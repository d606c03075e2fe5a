// cmd/client/cmd/achievement/achievement.go
package achievement

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"timekeeper/internal/app/client"
	"timekeeper/internal/domain/achievement"
)

var markSeen bool

var AchievementCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Просмотр достижений",
	Long: `Показывает разблокированные достижения. Непросмотренные выделяются;
флаг --seen помечает их просмотренными.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value("app").(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		records, err := app.Achievements(cmd.Context())
		if err != nil {
			return fmt.Errorf("ошибка получения достижений: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("Достижений пока нет")
			return nil
		}

		goals, err := app.ListGoals(cmd.Context(), true)
		if err != nil {
			goals = nil
		}

		unseen := color.New(color.FgYellow, color.Bold)
		fmt.Printf("Достижений: %d\n\n", len(records))

		for _, rec := range records {
			def := achievement.ResolveDefinition(rec, goals)
			line := fmt.Sprintf("🏆 %s — %s", def.Title,
				time.UnixMilli(rec.UnlockedAt).Format("2006-01-02"))

			if rec.Seen {
				fmt.Println(line)
			} else {
				unseen.Printf("%s (новое)\n", line)
			}
			fmt.Printf("   %s\n", def.Description)
		}

		if markSeen {
			if err := app.MarkAchievementsSeen(cmd.Context()); err != nil {
				return fmt.Errorf("ошибка обновления достижений: %w", err)
			}
			fmt.Println("\n✅ Достижения помечены просмотренными")
		}

		return nil
	},
}

func init() {
	AchievementCmd.Flags().BoolVar(&markSeen, "seen", false, "пометить достижения просмотренными")
}
