package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hesselink/todo-go/internal/todo"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new todo",
		Long: `Add a new todo with the given name.

The id, creation time and completion state are filled in by the database
from the column defaults.

Example:
  todo add "buy milk"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := st.Close(); closeErr != nil {
					slog.Error("error closing database", "error", closeErr)
				}
			}()

			if err := todo.Add(cmd.Context(), st.DB(), args[0]); err != nil {
				return WrapExitError(ExitCommandError, "add failed", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %q\n", args[0])
			return nil
		},
	}
}
