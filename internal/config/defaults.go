package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"provider": "deepseek",
		"deepseek": map[string]interface{}{
			"api_key":  "",
			"base_url": "https://api.deepseek.com",
			"timeout":  120,
		},
		"ollama": map[string]interface{}{
			"base_url": "http://localhost:11434",
			"timeout":  120,
		},
		"model": map[string]interface{}{
			"name":          "deepseek-chat",
			"max_tokens":    2048,
			"temperature":   0.7,
			"system_prompt": "You are a helpful personal assistant. Provide clear, concise, and accurate responses.",
		},
		"email": map[string]interface{}{
			"host":     "",
			"port":     "993",
			"username": "",
			"password": "",
			"tls":      true,
		},
		"calendar": map[string]interface{}{
			"url":      "",
			"username": "",
			"password": "",
			"calendar": "",
		},
		"reminders": map[string]interface{}{
			"backend": "file",
			"path":    "~/.aide/reminders.json",
		},
		"logging": map[string]interface{}{
			"file":  "~/.aide/aide.log",
			"level": "info",
		},
		"scheduler": map[string]interface{}{
			"email_summary_at": "08:00",
			"reminder_scan":    60,
		},
		"session": map[string]interface{}{
			"max_history":  50,
			"save_history": false,
			"history_file": "~/.aide/history.json",
		},
		"ui": map[string]interface{}{
			"show_token_count": false,
			"colored_output":   true,
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.aide/config.yaml"
}
