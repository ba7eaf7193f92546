package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"exprcalc/eval"
	"exprcalc/history"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate an arithmetic expression and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			v, err := eval.Evaluate(expr)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), eval.Format(v))

			store.Add(history.Entry{Expr: expr, Result: v, Time: time.Now()})
			return store.Persist()
		},
	}
}
