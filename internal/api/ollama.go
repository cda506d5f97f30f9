package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"aide/internal/config"
)

const ollamaChatPath = "/api/chat"

// OllamaProvider implements Provider against a local Ollama server.
// Only the non-streaming form of the chat endpoint is used.
type OllamaProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOllamaProvider creates a provider for the Ollama server named in
// the configuration. Missing settings fall back to a stock local
// install (http://localhost:11434, 120s timeout).
func NewOllamaProvider(cfg config.OllamaConfig) (*OllamaProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	timeout := 120 * time.Second
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return &OllamaProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Wire types for the chat endpoint.
type ollamaChat struct {
	Model    string       `json:"model"`
	Messages []ollamaTurn `json:"messages"`
	Stream   bool         `json:"stream"`
	Options  struct {
		Temperature float64 `json:"temperature,omitempty"`
		NumPredict  int     `json:"num_predict,omitempty"`
	} `json:"options,omitempty"`
}

type ollamaTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaReply struct {
	Message         ollamaTurn `json:"message"`
	DoneReason      string     `json:"done_reason,omitempty"`
	PromptEvalCount int        `json:"prompt_eval_count"`
	EvalCount       int        `json:"eval_count"`
}

// SendMessage performs one chat round trip against /api/chat.
func (p *OllamaProvider) SendMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error) {
	chat := ollamaChat{Model: req.Model, Messages: chatTurns(req)}
	chat.Options.Temperature = req.Temperature
	chat.Options.NumPredict = req.MaxTokens

	payload, err := json.Marshal(chat)
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+ollamaChatPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling Ollama at %s: %w", p.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("Ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var reply ollamaReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decoding Ollama response: %w", err)
	}

	return &MessageResponse{
		Content:    reply.Message.Content,
		StopReason: reply.DoneReason,
		Usage: Usage{
			InputTokens:  reply.PromptEvalCount,
			OutputTokens: reply.EvalCount,
		},
	}, nil
}

// chatTurns flattens the request into Ollama's message list, with the
// system prompt as the leading turn.
func chatTurns(req MessageRequest) []ollamaTurn {
	turns := make([]ollamaTurn, 0, len(req.Messages)+1)
	if req.System != "" {
		turns = append(turns, ollamaTurn{Role: "system", Content: req.System})
	}
	for _, m := range req.Messages {
		turns = append(turns, ollamaTurn{Role: m.Role, Content: m.Content})
	}
	return turns
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// Close is a no-op; the provider holds no connection state.
func (p *OllamaProvider) Close() error {
	return nil
}
