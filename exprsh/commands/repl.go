package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"exprcalc/calc"
	"exprcalc/eval"
	"exprcalc/history"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive key-by-key calculator session",
		Long: `repl reads calculator keys from stdin, one line at a time. Digits, operators
and the decimal point in a line are applied left to right; the words C, DEL
and = apply a single key. Built-ins: history, quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runREPL(in io.Reader, out io.Writer) error {
	buf := calc.New()
	fmt.Fprintln(out, buf.Text())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return store.Persist()
		case "history":
			printHistory(out)
			continue
		}
		applyKeys(buf, line, out)
		fmt.Fprintln(out, buf.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return store.Persist()
}

// applyKeys feeds a line of input into the buffer. A line that is a single
// named key (C, DEL, =) counts as one press; otherwise every character is a
// separate key.
func applyKeys(buf *calc.Buffer, line string, out io.Writer) {
	if tok, ok := calc.ParseToken(line); ok {
		applyToken(buf, tok)
		return
	}
	for _, r := range line {
		if r == ' ' {
			continue
		}
		tok, ok := calc.ParseToken(string(r))
		if !ok {
			fmt.Fprintf(out, "ignoring %q\n", r)
			continue
		}
		applyToken(buf, tok)
	}
}

// applyToken presses one key, recording successful evaluations in the
// history store.
func applyToken(buf *calc.Buffer, tok calc.Token) {
	if tok.Kind == calc.KindEquals {
		// Record the result before the buffer overwrites the expression.
		if expr := buf.Text(); expr != "0" {
			if v, err := eval.Evaluate(expr); err == nil {
				store.Add(history.Entry{Expr: expr, Result: v, Time: time.Now()})
			}
		}
	}
	buf.Apply(tok)
}

func printHistory(out io.Writer) {
	for _, e := range store.Entries() {
		fmt.Fprintf(out, "%s = %s\n", e.Expr, eval.Format(e.Result))
	}
}
