// cmd/client/cmd/stats/stats.go
package stats

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"timekeeper/internal/app/client"
	"timekeeper/internal/domain/goal"
)

var (
	statsGoalID string
	statsDays   int
)

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Статистика по времени",
	Long: `Дневная статистика: сколько времени записано по дням, самая длинная
серия подряд идущих дней и лучший день.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _ := cmd.Context().Value("app").(*client.App)
		if app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		st, err := app.Stats(cmd.Context(), statsGoalID)
		if err != nil {
			return fmt.Errorf("ошибка подсчета статистики: %w", err)
		}

		if len(st.Daily) == 0 {
			fmt.Println("Записанного времени пока нет")
			return nil
		}

		fmt.Printf("🔥 Серия: %d дней подряд\n", st.Streak)
		fmt.Printf("⭐ Лучший день: %.1f ч\n\n", st.BestDayHours)

		daily := st.Daily
		if statsDays > 0 && len(daily) > statsDays {
			daily = daily[len(daily)-statsDays:]
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "День\tВремя\t\n")
		for _, day := range daily {
			hours := float64(day.DurationMs) / float64(goal.MsPerHour)
			fmt.Fprintf(w, "%s\t%.1f ч\t\n", day.Day.Format("2006-01-02"), hours)
		}
		w.Flush()

		return nil
	},
}

func init() {
	StatsCmd.Flags().StringVar(&statsGoalID, "goal", "", "статистика только по одной цели")
	StatsCmd.Flags().IntVar(&statsDays, "days", 14, "сколько последних дней показывать (0 - все)")
}
