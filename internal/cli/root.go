// Package cli implements the todo command-line interface.
//
// The CLI is a thin consumer of the typed query layer: each command opens
// the store, calls one todo operation and renders the result. Errors carry
// exit codes via ExitError; the add/list/complete commands otherwise pass
// backend errors through untouched.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hesselink/todo-go/internal/store"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose    bool
	DSN        string // overrides env and config file when set
	ConfigFile string
}

// NewRootCommand creates the root command for the todo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A todo list backed by postgres",
		Long:          "A todo list CLI built on a typed query-construction layer over postgres.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts.Verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.DSN, "dsn", "", "postgres connection string")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to YAML config file")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCompleteCommand(opts))

	return cmd
}

func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// openStore resolves the DSN and opens the database, applying the schema.
func openStore(opts *RootOptions) (*store.Store, error) {
	dsn, err := ResolveDSN(opts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "resolve database config", err)
	}

	slog.Debug("opening database", "dsn", dsn)
	st, err := store.Open(dsn)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open database", err)
	}
	return st, nil
}
