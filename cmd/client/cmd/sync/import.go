// cmd/client/cmd/sync/import.go
package sync

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importEncrypted bool

var ImportCmd = &cobra.Command{
	Use:   "import <файл>",
	Short: "Слить снапшот из файла",
	Long: `Читает снапшот другого устройства и сливает его с локальными данными.
Локальное состояние и файл не конфликтуют молча: после слияния выводится
сводка и журнал разрешенных конфликтов.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		var password string
		if importEncrypted {
			password, err = readPassword("Пароль файла: ")
			if err != nil {
				return err
			}
		}

		report, err := app.ImportFromFile(cmd.Context(), args[0], password)
		if err != nil {
			return fmt.Errorf("ошибка импорта: %w", err)
		}

		printReport(cmd, app, report)

		return nil
	},
}

func init() {
	ImportCmd.Flags().BoolVarP(&importEncrypted, "encrypted", "e", false, "файл зашифрован паролем")
}
