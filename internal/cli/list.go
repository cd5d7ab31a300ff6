package cli

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hesselink/todo-go/internal/todo"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	All bool
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Long: `List incomplete todos, oldest first.

With --all, completed todos are included as well, newest first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "include completed todos")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	st, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	var records []todo.Record
	if opts.All {
		records, err = todo.All(cmd.Context(), st.DB())
	} else {
		records, err = todo.Pending(cmd.Context(), st.DB())
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "list failed", err)
	}

	renderList(cmd, records, opts.All)
	return nil
}

func renderList(cmd *cobra.Command, records []todo.Record, showStatus bool) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	header := []string{"ID", "Name", "Created"}
	if showStatus {
		header = append(header, "Status")
	}
	table.SetHeader(header)

	done := color.New(color.FgGreen)
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Name,
			r.CreatedTime.Local().Format(time.DateTime),
		}
		if showStatus {
			status := "open"
			if r.Completed {
				status = done.Sprint("done")
			}
			row = append(row, status)
		}
		table.Append(row)
	}
	table.Render()
}
