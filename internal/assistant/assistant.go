// Package assistant ties the AI provider, the email and calendar
// adapters, and the reminder store behind one operation per user-facing
// command.
package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"aide/internal/api"
	"aide/internal/calendar"
	"aide/internal/config"
	"aide/internal/email"
)

// Mailbox is the slice of the email client the assistant needs.
type Mailbox interface {
	FetchUnread(ctx context.Context, limit int) ([]email.Envelope, error)
	FetchRecent(ctx context.Context, sinceDays, limit int) ([]email.Envelope, error)
	FetchMessage(ctx context.Context, uid uint32) (*email.Message, error)
}

// Calendar is the slice of the CalDAV client the assistant needs.
type Calendar interface {
	Upcoming(ctx context.Context, days int) ([]calendar.Event, error)
	CreateEvent(ctx context.Context, event calendar.Event) (*calendar.Event, error)
}

// Summarizer produces an inbox digest from a batch of envelopes.
type Summarizer interface {
	Summarize(ctx context.Context, envelopes []email.Envelope) (string, error)
}

// Assistant is the orchestrator behind the CLI commands.
type Assistant struct {
	provider   api.Provider
	mailbox    Mailbox
	summarizer Summarizer
	cal        Calendar
	model      *config.ModelConfig
	logger     *zap.Logger
}

type Options struct {
	Provider   api.Provider
	Mailbox    Mailbox
	Summarizer Summarizer
	Calendar   Calendar
	Model      *config.ModelConfig
	Logger     *zap.Logger
}

func New(opts Options) *Assistant {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{
		provider:   opts.Provider,
		mailbox:    opts.Mailbox,
		summarizer: opts.Summarizer,
		cal:        opts.Calendar,
		model:      opts.Model,
		logger:     logger,
	}
}

// Ask sends a one-shot question to the AI provider.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	if a.provider == nil {
		return "", fmt.Errorf("AI provider is not configured")
	}

	resp, err := a.provider.SendMessage(ctx, api.MessageRequest{
		Messages: []api.Message{
			{Role: "user", Content: question},
		},
		System:      a.model.SystemPrompt,
		Model:       a.model.Name,
		MaxTokens:   a.model.MaxTokens,
		Temperature: a.model.Temperature,
	})
	if err != nil {
		a.logger.Error("ask failed", zap.Error(err))
		return "", err
	}

	a.logger.Info("ask completed",
		zap.String("provider", a.provider.Name()),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens))

	return resp.Content, nil
}

// EmailSummary fetches unread mail and returns an AI digest of it.
func (a *Assistant) EmailSummary(ctx context.Context, limit int) (string, error) {
	if a.mailbox == nil || a.summarizer == nil {
		return "", fmt.Errorf("email is not configured")
	}

	envelopes, err := a.mailbox.FetchUnread(ctx, limit)
	if err != nil {
		a.logger.Error("email fetch failed", zap.Error(err))
		return "", err
	}

	digest, err := a.summarizer.Summarize(ctx, envelopes)
	if err != nil {
		a.logger.Error("email summary failed", zap.Error(err))
		return "", err
	}

	a.logger.Info("email summary completed", zap.Int("emails", len(envelopes)))
	return digest, nil
}

// RecentEmails lists envelopes from the last sinceDays days.
func (a *Assistant) RecentEmails(ctx context.Context, sinceDays, limit int) ([]email.Envelope, error) {
	if a.mailbox == nil {
		return nil, fmt.Errorf("email is not configured")
	}

	envelopes, err := a.mailbox.FetchRecent(ctx, sinceDays, limit)
	if err != nil {
		a.logger.Error("email fetch failed", zap.Error(err))
		return nil, err
	}

	a.logger.Info("emails listed", zap.Int("emails", len(envelopes)))
	return envelopes, nil
}

// ReadEmail downloads one message by UID, body included.
func (a *Assistant) ReadEmail(ctx context.Context, uid uint32) (*email.Message, error) {
	if a.mailbox == nil {
		return nil, fmt.Errorf("email is not configured")
	}

	msg, err := a.mailbox.FetchMessage(ctx, uid)
	if err != nil {
		a.logger.Error("email read failed", zap.Uint32("uid", uid), zap.Error(err))
		return nil, err
	}

	a.logger.Info("email read", zap.Uint32("uid", uid), zap.String("subject", msg.Envelope.Subject))
	return msg, nil
}

// UpcomingEvents lists calendar events for the next days.
func (a *Assistant) UpcomingEvents(ctx context.Context, days int) ([]calendar.Event, error) {
	if a.cal == nil {
		return nil, fmt.Errorf("calendar is not configured")
	}

	events, err := a.cal.Upcoming(ctx, days)
	if err != nil {
		a.logger.Error("calendar query failed", zap.Error(err))
		return nil, err
	}

	a.logger.Info("events listed", zap.Int("events", len(events)), zap.Int("days", days))
	return events, nil
}

// CreateEvent adds a new calendar event.
func (a *Assistant) CreateEvent(ctx context.Context, event calendar.Event) (*calendar.Event, error) {
	if a.cal == nil {
		return nil, fmt.Errorf("calendar is not configured")
	}

	created, err := a.cal.CreateEvent(ctx, event)
	if err != nil {
		a.logger.Error("event creation failed", zap.String("title", event.Title), zap.Error(err))
		return nil, err
	}

	a.logger.Info("event created", zap.String("uid", created.UID), zap.String("title", created.Title))
	return created, nil
}
