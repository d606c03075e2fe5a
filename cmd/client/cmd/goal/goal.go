// cmd/client/cmd/goal/goal.go
package goal

import (
	"fmt"

	"github.com/spf13/cobra"

	"timekeeper/internal/app/client"
)

var GoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Управление целями",
	Long: `Создание и просмотр целей, на которые ведется учет времени.

Каждая цель имеет плановый объем в часах; по мере накопления времени
открываются достижения за 25%, 50%, 75% и 100% прогресса.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, _ := cmd.Context().Value("app").(*client.App)
	if app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}
