package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"aide/internal/calendar"
)

const eventTimeLayout = "2006-01-02 15:04"

// NewCalendarCommand creates the calendar command group.
func NewCalendarCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List and create calendar events",
	}

	cmd.AddCommand(newCalendarListCommand(rootOpts))
	cmd.AddCommand(newCalendarAddCommand(rootOpts))

	return cmd
}

func newCalendarListCommand(rootOpts *RootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show upcoming events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.Assistant()
			if err != nil {
				return err
			}

			spinner := rootOpts.spinner()
			spinner.Start("Fetching events...")
			events, err := a.UpcomingEvents(cmd.Context(), days)
			spinner.Stop()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), rootOpts.Formatter().FormatEventList(events))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "how many days ahead to look")

	return cmd
}

func newCalendarAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		start       string
		end         string
		description string
		location    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a calendar event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := time.ParseInLocation(eventTimeLayout, start, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --start %q, want \"YYYY-MM-DD HH:MM\"", start)
			}
			endAt, err := time.ParseInLocation(eventTimeLayout, end, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --end %q, want \"YYYY-MM-DD HH:MM\"", end)
			}

			a, err := rootOpts.Assistant()
			if err != nil {
				return err
			}

			created, err := a.CreateEvent(cmd.Context(), calendar.Event{
				Title:       args[0],
				Description: description,
				Location:    location,
				Start:       startAt,
				End:         endAt,
			})
			if err != nil {
				return err
			}

			formatter := rootOpts.Formatter()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSuccess(
				fmt.Sprintf("Event %q created (%s)", created.Title, created.UID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "event start time, \"YYYY-MM-DD HH:MM\" (required)")
	cmd.Flags().StringVar(&end, "end", "", "event end time, \"YYYY-MM-DD HH:MM\" (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "event description")
	cmd.Flags().StringVar(&location, "location", "", "event location")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
