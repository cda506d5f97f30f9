package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"aide/internal/scheduler"
)

// NewWatchCommand creates the watch command, which runs the background
// scheduler until interrupted.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run scheduled jobs (daily email digest, due-reminder scan)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.Config()
			if err != nil {
				return err
			}

			a, err := rootOpts.Assistant()
			if err != nil {
				return err
			}

			store, err := rootOpts.Store()
			if err != nil {
				return err
			}

			logger, err := rootOpts.Logger()
			if err != nil {
				return err
			}

			sched := scheduler.New(a, store, logger)

			if cfg.Scheduler.EmailSummaryAt != "" {
				// Fail now rather than on every scheduled run.
				if cfg.Email.Host == "" {
					return fmt.Errorf("email digest is scheduled but no email account is configured")
				}
				if _, err := rootOpts.Provider(); err != nil {
					return fmt.Errorf("email digest is scheduled but the AI provider is unavailable: %w", err)
				}
				if err := sched.ScheduleEmailSummary(cfg.Scheduler.EmailSummaryAt, 20); err != nil {
					return err
				}
			}
			if cfg.Scheduler.ReminderScan > 0 {
				if err := sched.ScheduleReminderScan(cfg.Scheduler.ReminderScan); err != nil {
					return err
				}
			}

			jobs := sched.Jobs()
			if len(jobs) == 0 {
				return fmt.Errorf("no jobs configured, check the scheduler section of the config")
			}

			formatter := rootOpts.Formatter()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatInfo(
				fmt.Sprintf("Watching (%v). Press Ctrl+C to stop.", jobs)))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return sched.Run(ctx)
		},
	}
}
