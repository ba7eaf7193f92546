package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"exprcalc/eval"
)

func historyCmd() *cobra.Command {
	var clear bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the persisted calculation history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clear {
				return store.Clear()
			}
			for _, e := range store.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s = %s\n",
					e.Time.Format(time.DateTime), e.Expr, eval.Format(e.Result))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clear, "clear", false, "delete the stored history")
	return cmd
}
