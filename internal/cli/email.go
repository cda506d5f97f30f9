package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// EmailOptions holds flags for the email command.
type EmailOptions struct {
	*RootOptions
	Max  int
	Days int
	NoAI bool
}

// NewEmailCommand creates the email command.
func NewEmailCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EmailOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Summarize unread email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.Assistant()
			if err != nil {
				return err
			}

			formatter := opts.Formatter()
			spinner := opts.spinner()

			if opts.NoAI {
				spinner.Start("Fetching email...")
				envelopes, err := a.RecentEmails(cmd.Context(), opts.Days, opts.Max)
				spinner.Stop()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEnvelopeList(envelopes))
				return nil
			}

			if _, err := opts.Provider(); err != nil {
				return err
			}

			spinner.Start("Fetching and summarizing email...")
			digest, err := a.EmailSummary(cmd.Context(), opts.Max)
			spinner.Stop()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMarkdown(digest))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Max, "max", 20, "maximum number of emails to fetch")
	cmd.Flags().IntVar(&opts.Days, "days", 7, "how many days back to list (with --list)")
	cmd.Flags().BoolVar(&opts.NoAI, "list", false, "list envelopes instead of summarizing")

	cmd.AddCommand(newEmailReadCommand(rootOpts))

	return cmd
}

func newEmailReadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read <uid>",
		Short: "Show one email by UID (from the --list output)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid message UID %q", args[0])
			}

			a, err := rootOpts.Assistant()
			if err != nil {
				return err
			}

			spinner := rootOpts.spinner()
			spinner.Start("Fetching email...")
			msg, err := a.ReadEmail(cmd.Context(), uint32(uid))
			spinner.Stop()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), rootOpts.Formatter().FormatMessage(*msg))
			return nil
		},
	}
}
