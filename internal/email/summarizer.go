package email

import (
	"context"
	"fmt"
	"strings"

	"aide/internal/api"
	"aide/internal/config"
)

const summarySystemPrompt = "You summarize a user's inbox. Group related emails, " +
	"call out anything that needs a reply or action, and keep it short."

// Summarizer turns a batch of envelopes into a short natural-language
// digest using the configured AI provider.
type Summarizer struct {
	provider api.Provider
	model    *config.ModelConfig
}

func NewSummarizer(provider api.Provider, model *config.ModelConfig) *Summarizer {
	return &Summarizer{
		provider: provider,
		model:    model,
	}
}

// Summarize sends the envelope listing to the AI provider and returns
// the digest text. An empty batch short-circuits without an API call.
func (s *Summarizer) Summarize(ctx context.Context, envelopes []Envelope) (string, error) {
	if len(envelopes) == 0 {
		return "No new emails.", nil
	}

	var b strings.Builder
	b.WriteString("Summarize these emails:\n\n")
	for _, env := range envelopes {
		fmt.Fprintf(&b, "- From: %s | Subject: %s | Date: %s\n",
			env.From, env.Subject, env.Date.Format("2006-01-02 15:04"))
	}

	resp, err := s.provider.SendMessage(ctx, api.MessageRequest{
		Messages: []api.Message{
			{Role: "user", Content: b.String()},
		},
		System:      summarySystemPrompt,
		Model:       s.model.Name,
		MaxTokens:   s.model.MaxTokens,
		Temperature: s.model.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("summarizing emails: %w", err)
	}

	return resp.Content, nil
}
