package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Provider type constants (duplicated from api package to avoid import cycle)
const (
	ProviderDeepSeek = "deepseek"
	ProviderOllama   = "ollama"
)

// Reminder storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	Provider  string          `koanf:"provider"`
	DeepSeek  DeepSeekConfig  `koanf:"deepseek"`
	Ollama    OllamaConfig    `koanf:"ollama"`
	Model     ModelConfig     `koanf:"model"`
	Email     EmailConfig     `koanf:"email"`
	Calendar  CalendarConfig  `koanf:"calendar"`
	Reminders RemindersConfig `koanf:"reminders"`
	Logging   LoggingConfig   `koanf:"logging"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
	Session   SessionConfig   `koanf:"session"`
	UI        UIConfig        `koanf:"ui"`
}

type DeepSeekConfig struct {
	APIKey  string `koanf:"api_key"`
	BaseURL string `koanf:"base_url"`
	Timeout int    `koanf:"timeout"`
}

type OllamaConfig struct {
	BaseURL string `koanf:"base_url"`
	Timeout int    `koanf:"timeout"`
}

type ModelConfig struct {
	Name         string  `koanf:"name"`
	MaxTokens    int     `koanf:"max_tokens"`
	Temperature  float64 `koanf:"temperature"`
	SystemPrompt string  `koanf:"system_prompt"`
}

// EmailConfig holds IMAP connection settings for the inbox digest.
type EmailConfig struct {
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	TLS      bool   `koanf:"tls"`
}

// CalendarConfig holds CalDAV connection settings.
type CalendarConfig struct {
	URL      string `koanf:"url"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Calendar string `koanf:"calendar"` // calendar path; discovered if empty
}

// RemindersConfig selects and locates the reminder storage backend.
type RemindersConfig struct {
	Backend string `koanf:"backend"` // "file" or "sqlite"
	Path    string `koanf:"path"`
}

// LoggingConfig controls the append-only operation log.
type LoggingConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

// SchedulerConfig controls the background watch mode.
type SchedulerConfig struct {
	EmailSummaryAt string `koanf:"email_summary_at"` // daily digest time, HH:MM; empty disables
	ReminderScan   int    `koanf:"reminder_scan"`    // due-reminder scan interval in minutes; 0 disables
}

type SessionConfig struct {
	MaxHistory  int    `koanf:"max_history"`
	SaveHistory bool   `koanf:"save_history"`
	HistoryFile string `koanf:"history_file"`
}

type UIConfig struct {
	ShowTokenCount bool `koanf:"show_token_count"`
	ColoredOutput  bool `koanf:"colored_output"`
}

// Load builds the configuration by layering compiled-in defaults, the
// YAML config file (if present), and AIDE_-prefixed environment
// variables. Provider API keys can also come from their conventional
// env vars (DEEPSEEK_API_KEY).
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// AIDE_EMAIL_PASSWORD -> email.password, AIDE_DEEPSEEK_API_KEY -> deepseek.api_key, ...
	if err := k.Load(env.Provider("AIDE_", ".", envToKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if apiKey := os.Getenv("DEEPSEEK_API_KEY"); apiKey != "" {
		k.Set("deepseek.api_key", apiKey)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Session.HistoryFile = expandPath(cfg.Session.HistoryFile)
	cfg.Reminders.Path = expandPath(cfg.Reminders.Path)
	cfg.Logging.File = expandPath(cfg.Logging.File)

	return &cfg, nil
}

// Validate checks provider and storage settings. Email and calendar
// credentials are validated lazily by the commands that need them.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderDeepSeek:
		if c.DeepSeek.APIKey == "" {
			return fmt.Errorf("DeepSeek API key is required (set DEEPSEEK_API_KEY or add to config file)")
		}
	case ProviderOllama:
		if c.Ollama.BaseURL == "" {
			c.Ollama.BaseURL = "http://localhost:11434"
		}
	default:
		return fmt.Errorf("unknown provider: %s (supported: %s, %s)",
			c.Provider, ProviderDeepSeek, ProviderOllama)
	}

	if c.Model.Name == "" {
		return fmt.Errorf("model name is required")
	}

	if c.Model.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}

	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2")
	}

	switch c.Reminders.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown reminders backend: %s (supported: %s, %s)",
			c.Reminders.Backend, BackendFile, BackendSQLite)
	}

	if c.Reminders.Path == "" {
		return fmt.Errorf("reminders path is required")
	}

	if c.Session.MaxHistory <= 0 {
		return fmt.Errorf("max_history must be positive")
	}

	return nil
}

// ProviderConfig contains provider-specific configuration for the API package.
type ProviderConfig struct {
	Type     string
	DeepSeek DeepSeekConfig
	Ollama   OllamaConfig
	Model    ModelSettings
}

// ModelSettings contains model parameters used by all providers.
type ModelSettings struct {
	Name        string
	MaxTokens   int
	Temperature float64
}

// GetProviderConfig returns the provider configuration for the API package.
func (c *Config) GetProviderConfig() *ProviderConfig {
	return &ProviderConfig{
		Type:     c.Provider,
		DeepSeek: c.DeepSeek,
		Ollama:   c.Ollama,
		Model: ModelSettings{
			Name:        c.Model.Name,
			MaxTokens:   c.Model.MaxTokens,
			Temperature: c.Model.Temperature,
		},
	}
}

// envToKey maps AIDE_EMAIL_PASSWORD to email.password and
// AIDE_DEEPSEEK_API_KEY to deepseek.api_key: the first underscore
// separates the section, later ones stay part of the field name.
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "AIDE_"))
	return strings.Replace(s, "_", ".", 1)
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
