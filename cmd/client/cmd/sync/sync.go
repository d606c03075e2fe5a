// cmd/client/cmd/sync/sync.go
package sync

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"timekeeper/internal/app/client"
	"timekeeper/internal/domain/achievement"
	domainsync "timekeeper/internal/domain/sync"
)

const maxConflictsShown = 5

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Обмен данными между устройствами",
	Long: `Сведение данных нескольких экземпляров приложения к одному состоянию.

Снапшот можно выгрузить в файл и слить на другом устройстве, либо
обменяться напрямую с запущенным экземпляром по адресу.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value("app").(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

// readPassword запрашивает пароль без эха.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(password), nil
}

// printReport выводит сводку "до/после" и журнал конфликтов.
func printReport(cmd *cobra.Command, app *client.App, report *domainsync.MergeReport) {
	green := color.New(color.FgGreen)
	green.Println("✅ Слияние завершено")

	fmt.Printf("Целей: %d → %d\n", report.Before.Goals, report.After.Goals)
	fmt.Printf("Сессий: %d → %d\n", report.Before.Sessions, report.After.Sessions)
	fmt.Printf("Достижений: %d → %d\n", report.Before.Achievements, report.After.Achievements)

	if len(report.Conflicts) > 0 {
		yellow := color.New(color.FgYellow)
		yellow.Printf("\n⚠️  Конфликтов разрешено: %d\n", len(report.Conflicts))

		shown := report.Conflicts
		if len(shown) > maxConflictsShown {
			shown = shown[:maxConflictsShown]
		}
		for _, c := range shown {
			fmt.Printf("  • %s %s — выбрана версия: %s\n", c.Type, c.ID, c.Resolution)
		}
		if rest := len(report.Conflicts) - maxConflictsShown; rest > 0 {
			fmt.Printf("  ... и еще %d\n", rest)
		}
	}

	if len(report.Unlocked) > 0 {
		goals, err := app.ListGoals(cmd.Context(), true)
		if err != nil {
			goals = nil
		}

		highlight := color.New(color.FgYellow, color.Bold)
		fmt.Println()
		for _, rec := range report.Unlocked {
			def := achievement.ResolveDefinition(rec, goals)
			highlight.Printf("🏆 Новое достижение: %s\n", def.Title)
		}
	}
}
