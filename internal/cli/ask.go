package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewAskCommand creates the ask command.
func NewAskCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the AI a one-shot question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := rootOpts.Provider(); err != nil {
				return err
			}

			a, err := rootOpts.Assistant()
			if err != nil {
				return err
			}

			formatter := rootOpts.Formatter()
			spinner := rootOpts.spinner()
			spinner.Start("Thinking...")

			answer, err := a.Ask(cmd.Context(), strings.Join(args, " "))
			spinner.Stop()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMarkdown(answer))
			return nil
		},
	}
}
