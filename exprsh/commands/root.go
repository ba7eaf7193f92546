package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"exprcalc/history"
)

var (
	home  string
	store *history.Store
)

func Execute() error {
	root := &cobra.Command{
		Use:   "exprsh",
		Short: "Terminal front end for the exprcalc expression calculator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".exprsh")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			store, err = history.Open(afero.NewOsFs(), filepath.Join(home, "history.json"))
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.exprsh)")

	root.AddCommand(evalCmd(), replCmd(), historyCmd())
	return root.Execute()
}
