package api

import "context"

// Provider is the seam between the assistant and a concrete chat
// backend. The DeepSeek API and a local Ollama server both satisfy it.
type Provider interface {
	// SendMessage performs one chat completion round trip.
	SendMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error)

	// Name identifies the backend in logs and the chat banner.
	Name() string

	// Close releases whatever the backend holds open.
	Close() error
}
