// Package commands defines the exprsh CLI.
//
// Commands
//
//   - eval     Evaluate an expression and print the result
//   - repl     Interactive key-by-key calculator session
//   - history  Show or clear the persisted calculation history
//
// # Implementation
//
// The root command resolves the data directory and opens the history store
// before any subcommand runs, so handlers share one store instance.
package commands
