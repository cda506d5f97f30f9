package chat

import (
	"aide/internal/api"
)

type History struct {
	messages []api.Message
	maxSize  int
}

func NewHistory(maxSize int) *History {
	return &History{
		messages: make([]api.Message, 0),
		maxSize:  maxSize,
	}
}

func (h *History) Add(msg api.Message) {
	h.messages = append(h.messages, msg)

	for len(h.messages) > h.maxSize {
		h.messages = h.messages[1:]
	}

	// Keep the window starting on a user turn so the model never sees
	// an answer without its question.
	for len(h.messages) > 0 && h.messages[0].Role == "assistant" {
		h.messages = h.messages[1:]
	}
}

func (h *History) GetAll() []api.Message {
	return h.messages
}

func (h *History) Clear() {
	h.messages = make([]api.Message, 0)
}

func (h *History) Size() int {
	return len(h.messages)
}

func (h *History) IsEmpty() bool {
	return len(h.messages) == 0
}
