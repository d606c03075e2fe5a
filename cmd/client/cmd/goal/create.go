// cmd/client/cmd/goal/create.go
package goal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createDescription string
	createHours       float64
)

var CreateCmd = &cobra.Command{
	Use:   "create <название>",
	Short: "Создать цель",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		g, err := app.CreateGoal(cmd.Context(), args[0], createDescription, createHours)
		if err != nil {
			return fmt.Errorf("ошибка создания цели: %w", err)
		}

		fmt.Printf("✅ Цель создана: %s\n", g.Title)
		fmt.Printf("   ID: %s\n", g.ID)
		fmt.Printf("   Плановый объем: %.1f ч\n", g.TotalHours)

		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createDescription, "description", "d", "", "описание цели")
	CreateCmd.Flags().Float64Var(&createHours, "hours", 0, "плановый объем в часах")
}
