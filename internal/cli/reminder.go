package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aide/internal/reminder"
)

// NewReminderCommand creates the reminder command group.
func NewReminderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"rem"},
		Short:   "Manage reminders",
	}

	cmd.AddCommand(newReminderAddCommand(rootOpts))
	cmd.AddCommand(newReminderListCommand(rootOpts))
	cmd.AddCommand(newReminderCompleteCommand(rootOpts))
	cmd.AddCommand(newReminderDeleteCommand(rootOpts))

	return cmd
}

func newReminderAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		description string
		due         string
		priority    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := rootOpts.Store()
			if err != nil {
				return err
			}

			rec, err := store.Add(reminder.AddParams{
				Title:       args[0],
				Description: description,
				Priority:    reminder.Priority(priority),
				DueDate:     due,
			})
			if err != nil {
				return err
			}

			rootOpts.logEvent("reminder added", zap.Int64("id", rec.ID), zap.String("title", rec.Title))

			formatter := rootOpts.Formatter()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSuccess(
				fmt.Sprintf("Reminder #%d added: %s", rec.ID, rec.Title)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "longer free-form note")
	cmd.Flags().StringVar(&due, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "priority: low, medium or high (default medium)")

	return cmd
}

func newReminderListCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		all      bool
		priority string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := rootOpts.Store()
			if err != nil {
				return err
			}

			opts := reminder.ListOptions{IncludeCompleted: all}
			if priority != "" {
				p := reminder.Priority(priority)
				if !p.Valid() {
					return &reminder.ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", priority)}
				}
				opts.Priority = p
			}

			reminders := store.List(opts)
			fmt.Fprintln(cmd.OutOrStdout(), rootOpts.Formatter().FormatReminderList(reminders))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include completed reminders")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "only show this priority")

	return cmd
}

func newReminderCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"done"},
		Short:   "Mark a reminder as completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := rootOpts.Store()
			if err != nil {
				return err
			}

			rec, err := store.Complete(id)
			if err != nil {
				return err
			}

			rootOpts.logEvent("reminder completed", zap.Int64("id", rec.ID))

			formatter := rootOpts.Formatter()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSuccess(
				fmt.Sprintf("Reminder #%d completed: %s", rec.ID, rec.Title)))
			return nil
		},
	}
}

func newReminderDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a reminder",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := rootOpts.Store()
			if err != nil {
				return err
			}

			if !yes {
				rec, err := store.Get(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Delete reminder #%d %q? [y/N] ", rec.ID, rec.Title)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := store.Delete(id); err != nil {
				return err
			}

			rootOpts.logEvent("reminder deleted", zap.Int64("id", id))

			formatter := rootOpts.Formatter()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSuccess(
				fmt.Sprintf("Reminder #%d deleted", id)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, &reminder.ValidationError{Field: "id", Reason: fmt.Sprintf("%q is not a valid reminder id", arg)}
	}
	return id, nil
}
