// Package cli wires the cobra command tree for the aide binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aide/internal/api"
	"aide/internal/assistant"
	"aide/internal/calendar"
	"aide/internal/config"
	"aide/internal/email"
	"aide/internal/logging"
	"aide/internal/reminder"
	"aide/internal/ui"
)

// RootOptions holds global flags and the lazily built application
// state shared by all commands.
type RootOptions struct {
	ConfigPath string
	NoColor    bool

	cfg      *config.Config
	logger   *zap.Logger
	provider api.Provider
	store    *reminder.Store
	closers  []func() error
}

// NewRootCommand creates the root command for the aide CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "aide",
		Short:         "aide - personal assistant in your terminal",
		Long:          "A personal assistant CLI: ask an AI, check email and calendar, and keep reminders.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (default ~/.aide/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewAskCommand(opts))
	cmd.AddCommand(NewChatCommand(opts))
	cmd.AddCommand(NewEmailCommand(opts))
	cmd.AddCommand(NewCalendarCommand(opts))
	cmd.AddCommand(NewReminderCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))

	return cmd
}

// Config loads and caches the configuration.
func (o *RootOptions) Config() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}

	path := o.ConfigPath
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	o.cfg = cfg
	return cfg, nil
}

// Logger returns the file logger configured in the config.
func (o *RootOptions) Logger() (*zap.Logger, error) {
	if o.logger != nil {
		return o.logger, nil
	}

	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	o.logger = logger
	o.closers = append(o.closers, func() error {
		_ = logger.Sync()
		return nil
	})
	return logger, nil
}

// logEvent writes an operation record when logging is configured.
func (o *RootOptions) logEvent(msg string, fields ...zap.Field) {
	logger, err := o.Logger()
	if err != nil {
		return
	}
	logger.Info(msg, fields...)
}

// Formatter builds the output formatter, honoring --no-color.
func (o *RootOptions) Formatter() *ui.Formatter {
	colored := !o.NoColor
	if o.cfg != nil {
		colored = colored && o.cfg.UI.ColoredOutput
	}
	return ui.NewFormatter(colored)
}

func (o *RootOptions) spinner() *ui.Spinner {
	colored := !o.NoColor
	if o.cfg != nil {
		colored = colored && o.cfg.UI.ColoredOutput
	}
	return ui.NewSpinner(colored)
}

// Provider builds and caches the AI provider.
func (o *RootOptions) Provider() (api.Provider, error) {
	if o.provider != nil {
		return o.provider, nil
	}

	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := api.NewProvider(cfg.GetProviderConfig())
	if err != nil {
		return nil, err
	}

	o.provider = provider
	o.closers = append(o.closers, provider.Close)
	return provider, nil
}

// Store opens and caches the reminder store using the configured
// backend.
func (o *RootOptions) Store() (*reminder.Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}

	var repo reminder.Repository
	switch cfg.Reminders.Backend {
	case config.BackendSQLite:
		sqlRepo, err := reminder.NewSQLiteRepository(cfg.Reminders.Path)
		if err != nil {
			return nil, err
		}
		o.closers = append(o.closers, sqlRepo.Close)
		repo = sqlRepo
	case config.BackendFile, "":
		repo = reminder.NewFileRepository(cfg.Reminders.Path)
	default:
		return nil, fmt.Errorf("unknown reminders backend: %s", cfg.Reminders.Backend)
	}

	store, err := reminder.NewStore(repo)
	if err != nil {
		return nil, err
	}

	o.store = store
	return store, nil
}

// Assistant wires the orchestrator with whatever adapters the config
// enables.
func (o *RootOptions) Assistant() (*assistant.Assistant, error) {
	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}

	logger, err := o.Logger()
	if err != nil {
		return nil, err
	}

	aOpts := assistant.Options{
		Model:  &cfg.Model,
		Logger: logger,
	}

	if provider, err := o.Provider(); err == nil {
		aOpts.Provider = provider
		aOpts.Summarizer = email.NewSummarizer(provider, &cfg.Model)
	}

	if cfg.Email.Host != "" {
		aOpts.Mailbox = email.NewClient(cfg.Email)
	}

	calClient := calendar.NewClient(cfg.Calendar)
	if calClient.IsConfigured() {
		aOpts.Calendar = calClient
	}

	return assistant.New(aOpts), nil
}

// Close releases everything the command tree opened.
func (o *RootOptions) Close() error {
	var firstErr error
	for i := len(o.closers) - 1; i >= 0; i-- {
		if err := o.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	o.closers = nil
	return firstErr
}
