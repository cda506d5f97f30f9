package cli

import (
	"os"

	"github.com/spf13/cobra"

	"aide/internal/chat"
	"aide/internal/repl"
)

// NewChatCommand creates the interactive chat command.
func NewChatCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.Config()
			if err != nil {
				return err
			}

			provider, err := rootOpts.Provider()
			if err != nil {
				return err
			}

			session := chat.NewSession(&cfg.Model, cfg.Session.MaxHistory)
			if cfg.Session.SaveHistory {
				if _, statErr := os.Stat(cfg.Session.HistoryFile); statErr == nil {
					_ = session.Load(cfg.Session.HistoryFile)
				}
			}

			r, err := repl.NewREPL(session, provider, cfg)
			if err != nil {
				return err
			}

			runErr := r.Start(cmd.Context())
			if saveErr := r.SaveHistory(); saveErr != nil && runErr == nil {
				runErr = saveErr
			}
			return runErr
		},
	}
}
