package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hesselink/todo-go/internal/todo"
)

// NewCompleteCommand creates the complete command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a todo as done",
		Long: `Mark the todo with the given id as completed, recording the
completion time.

Example:
  todo complete 3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError,
					fmt.Sprintf("failed to parse argument as number: %s", args[0]), err)
			}

			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := st.Close(); closeErr != nil {
					slog.Error("error closing database", "error", closeErr)
				}
			}()

			found, err := todo.Complete(cmd.Context(), st.DB(), id)
			if err != nil {
				return WrapExitError(ExitCommandError, "complete failed", err)
			}
			if !found {
				return NewExitError(ExitFailure, fmt.Sprintf("no todo with id %d", id))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "completed %d\n", id)
			return nil
		},
	}
}
