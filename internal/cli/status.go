package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"aide/internal/reminder"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show reminder counters and pending reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := rootOpts.Store()
			if err != nil {
				return err
			}

			formatter := rootOpts.Formatter()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, formatter.FormatSummary(store.StatusSummary()))

			pending := store.List(reminder.ListOptions{})
			if len(pending) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.FormatReminderList(pending))
			}
			return nil
		},
	}
}
