package main

import (
	"os"

	"exprcalc/exprsh/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
