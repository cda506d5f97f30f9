package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ProviderDeepSeek, cfg.Provider)
	assert.Equal(t, "deepseek-chat", cfg.Model.Name)
	assert.Equal(t, BackendFile, cfg.Reminders.Backend)
	assert.NotEmpty(t, cfg.Reminders.Path)
	assert.NotEmpty(t, cfg.Logging.File)
	assert.Equal(t, "08:00", cfg.Scheduler.EmailSummaryAt)
	assert.True(t, cfg.Email.TLS)
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
provider: ollama
model:
  name: llama3
reminders:
  backend: sqlite
  path: /tmp/reminders.db
email:
  host: imap.example.com
  username: me@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "llama3", cfg.Model.Name)
	assert.Equal(t, BackendSQLite, cfg.Reminders.Backend)
	assert.Equal(t, "/tmp/reminders.db", cfg.Reminders.Path)
	assert.Equal(t, "imap.example.com", cfg.Email.Host)
	// Untouched sections keep their defaults.
	assert.Equal(t, "993", cfg.Email.Port)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AIDE_EMAIL_PASSWORD", "hunter2")
	t.Setenv("AIDE_DEEPSEEK_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "hunter2", cfg.Email.Password)
	assert.Equal(t, "sk-test", cfg.DeepSeek.APIKey)
}

func TestLoadDeepSeekKeyFromConventionalEnv(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "sk-conventional")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-conventional", cfg.DeepSeek.APIKey)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		cfg.DeepSeek.APIKey = "sk-test"
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := base()
		cfg.DeepSeek.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := base()
		cfg.Provider = "openai"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown reminders backend", func(t *testing.T) {
		cfg := base()
		cfg.Reminders.Backend = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := base()
		cfg.Model.Temperature = 3.5
		assert.Error(t, cfg.Validate())
	})

	t.Run("ollama needs no api key", func(t *testing.T) {
		cfg := base()
		cfg.Provider = ProviderOllama
		cfg.DeepSeek.APIKey = ""
		assert.NoError(t, cfg.Validate())
	})
}

func TestEnvToKey(t *testing.T) {
	assert.Equal(t, "email.password", envToKey("AIDE_EMAIL_PASSWORD"))
	assert.Equal(t, "deepseek.api_key", envToKey("AIDE_DEEPSEEK_API_KEY"))
	assert.Equal(t, "provider", envToKey("AIDE_PROVIDER"))
}
