package chat

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aide/internal/config"
)

func modelCfg() *config.ModelConfig {
	return &config.ModelConfig{
		Name:         "deepseek-chat",
		MaxTokens:    2048,
		Temperature:  0.7,
		SystemPrompt: "You are a helpful personal assistant.",
	}
}

func TestSessionBuildAPIRequest(t *testing.T) {
	s := NewSession(modelCfg(), 10)
	s.AddUserMessage("what is on my calendar?")
	s.AddAssistantMessage("nothing today")
	s.AddUserMessage("thanks")

	req := s.BuildAPIRequest()
	assert.Equal(t, "deepseek-chat", req.Model)
	assert.Equal(t, 2048, req.MaxTokens)
	assert.Equal(t, "You are a helpful personal assistant.", req.System)
	require.Len(t, req.Messages, 3)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "assistant", req.Messages[1].Role)
}

func TestHistoryTrimsToMaxSize(t *testing.T) {
	s := NewSession(modelCfg(), 4)
	for i := 0; i < 4; i++ {
		s.AddUserMessage("question")
		s.AddAssistantMessage("answer")
	}

	msgs := s.GetMessages()
	require.Len(t, msgs, 4)
	// The window must not open on an assistant turn.
	assert.Equal(t, "user", msgs[0].Role)
}

func TestSessionSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	s := NewSession(modelCfg(), 10)
	s.AddUserMessage("remember the milk")
	s.AddAssistantMessage("noted")
	require.NoError(t, s.Save(path))

	restored := NewSession(modelCfg(), 10)
	require.NoError(t, restored.Load(path))

	assert.Equal(t, s.GetMessages(), restored.GetMessages())
	assert.Equal(t, s.GetSystemPrompt(), restored.GetSystemPrompt())
}

func TestSetTemperatureRange(t *testing.T) {
	s := NewSession(modelCfg(), 10)
	require.NoError(t, s.SetTemperature(1.5))
	assert.Equal(t, 1.5, s.GetTemperature())
	assert.Error(t, s.SetTemperature(-0.1))
	assert.Error(t, s.SetTemperature(2.5))
}
