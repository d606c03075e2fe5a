// cmd/client/cmd/sync/export.go
package sync

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportEncrypt bool

var ExportCmd = &cobra.Command{
	Use:   "export <файл>",
	Short: "Выгрузить снапшот в файл",
	Long: `Записывает полный снапшот данных в файл для переноса на другое
устройство. С флагом --encrypt файл шифруется паролем.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		var password string
		if exportEncrypt {
			password, err = readPassword("Пароль для шифрования: ")
			if err != nil {
				return err
			}
			confirm, err := readPassword("Повторите пароль: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("пароли не совпадают")
			}
			if len(password) < 8 {
				return fmt.Errorf("пароль должен содержать минимум 8 символов")
			}
		}

		snap, err := app.ExportToFile(cmd.Context(), args[0], password)
		if err != nil {
			return fmt.Errorf("ошибка экспорта: %w", err)
		}

		fmt.Printf("✅ Снапшот выгружен в %s\n", args[0])
		fmt.Printf("   Целей: %d, сессий: %d, достижений: %d\n",
			len(snap.Goals), len(snap.Sessions), len(snap.Achievements))
		if exportEncrypt {
			fmt.Println("   Файл зашифрован")
		}

		return nil
	},
}

func init() {
	ExportCmd.Flags().BoolVarP(&exportEncrypt, "encrypt", "e", false, "зашифровать файл паролем")
}
