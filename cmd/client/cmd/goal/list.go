// cmd/client/cmd/goal/list.go
package goal

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"timekeeper/internal/domain/goal"
)

var (
	listFormat   string
	showArchived bool
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список целей",
	Long:  `Просмотр целей с прогрессом. Архивные цели показываются по флагу --archived.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		goals, err := app.ListGoals(cmd.Context(), showArchived)
		if err != nil {
			return fmt.Errorf("ошибка получения списка целей: %w", err)
		}

		switch listFormat {
		case "json":
			return printGoalsJSON(goals)
		case "table":
			return printGoalsTable(goals)
		default:
			return printGoalsSimple(goals)
		}
	},
}

func printGoalsSimple(goals []goal.Goal) error {
	if len(goals) == 0 {
		fmt.Println("Цели не найдены")
		return nil
	}

	fmt.Printf("Найдено целей: %d\n\n", len(goals))

	for i, g := range goals {
		status := " "
		if g.IsActive {
			status = "▶"
		}
		if g.IsArchived {
			status = "✗"
		}

		spent := float64(g.TotalTimeSpent) / float64(goal.MsPerHour)
		fmt.Printf("%d. [%s] %s — %.1f из %.1f ч (%.0f%%)\n",
			i+1, status, g.Title, spent, g.TotalHours, g.Progress()*100)
		fmt.Printf("   ID: %s\n", g.ID)
		if g.Description != "" {
			fmt.Printf("   %s\n", g.Description)
		}
		fmt.Println()
	}

	return nil
}

func printGoalsTable(goals []goal.Goal) error {
	if len(goals) == 0 {
		fmt.Println("Цели не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tНазвание\tПотрачено\tПлан\tПрогресс\tСтатус\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")

	for _, g := range goals {
		status := "—"
		if g.IsActive {
			status = "Активна"
		}
		if g.IsArchived {
			status = "Архив"
		}

		spent := float64(g.TotalTimeSpent) / float64(goal.MsPerHour)
		fmt.Fprintf(w, "%s\t%s\t%.1f ч\t%.1f ч\t%.0f%%\t%s\t\n",
			g.ID, truncate(g.Title, 30), spent, g.TotalHours, g.Progress()*100, status)
	}

	w.Flush()
	fmt.Printf("\nВсего целей: %d\n", len(goals))
	return nil
}

func printGoalsJSON(goals []goal.Goal) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(goals)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json)")
	ListCmd.Flags().BoolVar(&showArchived, "archived", false, "показывать архивные цели")
}
