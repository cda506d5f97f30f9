// Package repl implements the interactive chat loop behind the chat
// command.
package repl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aide/internal/api"
	"aide/internal/chat"
	"aide/internal/config"
	"aide/internal/ui"
)

type REPL struct {
	session   *chat.Session
	provider  api.Provider
	config    *config.Config
	rl        lineReader
	formatter *ui.Formatter
	spinner   *ui.Spinner
}

func NewREPL(session *chat.Session, provider api.Provider, cfg *config.Config) (*REPL, error) {
	formatter := ui.NewFormatter(cfg.UI.ColoredOutput)

	rl, err := setupReadline(formatter.FormatPrompt())
	if err != nil {
		return nil, fmt.Errorf("failed to setup readline: %w", err)
	}

	return &REPL{
		session:   session,
		provider:  provider,
		config:    cfg,
		rl:        rl,
		formatter: formatter,
		spinner:   ui.NewSpinner(cfg.UI.ColoredOutput),
	}, nil
}

func (r *REPL) Start(ctx context.Context) error {
	defer r.rl.Close()

	r.displayWelcome()

	for {
		input, err := r.readInput()
		if err != nil {
			if isEOF(err) {
				fmt.Println("\nGoodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if input == "" {
			continue
		}

		isCommand, command, args := parseCommand(input)
		if isCommand {
			if err := r.handleCommand(command, args); err != nil {
				r.displayError(err)
			}

			if command == "/quit" || command == "/exit" || command == "/q" {
				return nil
			}

			continue
		}

		if err := r.handleMessage(ctx, input); err != nil {
			r.displayError(err)
		}
	}
}

func (r *REPL) handleMessage(ctx context.Context, message string) error {
	r.session.AddUserMessage(message)
	r.spinner.Start("Waiting for response...")

	start := time.Now()
	response, err := r.provider.SendMessage(ctx, r.session.BuildAPIRequest())
	r.spinner.Stop()
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}

	r.session.AddAssistantMessage(response.Content)
	r.displayResponse(response, time.Since(start))

	return nil
}

func (r *REPL) handleCommand(command, args string) error {
	switch command {
	case "/help", "/h":
		r.displayHelp()
		return nil

	case "/clear", "/c":
		r.session.Clear()
		r.displaySystem("Conversation history cleared.")
		return nil

	case "/system", "/s":
		if args == "" {
			return fmt.Errorf("usage: /system <prompt>")
		}
		r.session.SetSystemPrompt(args)
		r.displaySystem("System prompt updated.")
		return nil

	case "/show":
		prompt := r.session.GetSystemPrompt()
		if prompt == "" {
			r.displayInfo("No system prompt set.")
		} else {
			r.displayInfo(fmt.Sprintf("Current system prompt:\n%s", prompt))
		}
		return nil

	case "/temp", "/t":
		if args == "" {
			r.displayInfo(fmt.Sprintf("Temperature: %.2f", r.session.GetTemperature()))
			return nil
		}
		var temp float64
		if _, err := fmt.Sscanf(args, "%f", &temp); err != nil {
			return fmt.Errorf("usage: /temp <0-2>")
		}
		if err := r.session.SetTemperature(temp); err != nil {
			return err
		}
		r.displaySystem(fmt.Sprintf("Temperature set to %.2f.", temp))
		return nil

	case "/count":
		r.displayInfo(fmt.Sprintf("Current conversation has %d messages.", r.session.MessageCount()))
		return nil

	case "/quit", "/exit", "/q":
		fmt.Println("\nGoodbye!")
		return nil

	default:
		return fmt.Errorf("unknown command: %s (type /help for available commands)", command)
	}
}

func (r *REPL) SaveHistory() error {
	if !r.config.Session.SaveHistory {
		return nil
	}

	if r.session.IsEmpty() {
		return nil
	}

	return r.session.Save(r.config.Session.HistoryFile)
}

func parseCommand(input string) (bool, string, string) {
	if !strings.HasPrefix(input, "/") {
		return false, "", ""
	}

	parts := strings.SplitN(input, " ", 2)
	command := strings.ToLower(parts[0])

	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	return true, command, args
}
