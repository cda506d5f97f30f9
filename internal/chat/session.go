package chat

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"aide/internal/api"
	"aide/internal/config"
)

// Session holds a multi-turn conversation and builds API requests from it.
type Session struct {
	history      *History
	systemPrompt string
	config       *config.ModelConfig
}

type SessionData struct {
	Messages     []api.Message `json:"messages"`
	SystemPrompt string        `json:"system_prompt"`
	Timestamp    time.Time     `json:"timestamp"`
}

func NewSession(cfg *config.ModelConfig, maxHistory int) *Session {
	return &Session{
		history:      NewHistory(maxHistory),
		systemPrompt: cfg.SystemPrompt,
		config:       cfg,
	}
}

func (s *Session) AddUserMessage(content string) {
	s.history.Add(api.Message{
		Role:    "user",
		Content: content,
	})
}

func (s *Session) AddAssistantMessage(content string) {
	s.history.Add(api.Message{
		Role:    "assistant",
		Content: content,
	})
}

func (s *Session) GetMessages() []api.Message {
	return s.history.GetAll()
}

func (s *Session) SetSystemPrompt(prompt string) {
	s.systemPrompt = prompt
}

func (s *Session) GetSystemPrompt() string {
	return s.systemPrompt
}

func (s *Session) SetTemperature(temp float64) error {
	if temp < 0 || temp > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}
	s.config.Temperature = temp
	return nil
}

func (s *Session) GetTemperature() float64 {
	return s.config.Temperature
}

func (s *Session) Clear() {
	s.history.Clear()
}

func (s *Session) IsEmpty() bool {
	return s.history.IsEmpty()
}

func (s *Session) MessageCount() int {
	return s.history.Size()
}

// GetModelName returns the current model name.
func (s *Session) GetModelName() string {
	return s.config.Name
}

func (s *Session) BuildAPIRequest() api.MessageRequest {
	return api.MessageRequest{
		Messages:    s.history.GetAll(),
		System:      s.systemPrompt,
		Model:       s.config.Name,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}
}

func (s *Session) Save(path string) error {
	data := SessionData{
		Messages:     s.history.GetAll(),
		SystemPrompt: s.systemPrompt,
		Timestamp:    time.Now(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

func (s *Session) Load(path string) error {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var data SessionData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	s.history.Clear()
	for _, msg := range data.Messages {
		s.history.Add(msg)
	}
	if data.SystemPrompt != "" {
		s.systemPrompt = data.SystemPrompt
	}

	return nil
}
