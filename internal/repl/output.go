package repl

import (
	"fmt"
	"os"
	"strings"
	"time"

	"aide/internal/api"
)

func (r *REPL) displayResponse(response *api.MessageResponse, duration time.Duration) {
	fmt.Println()
	fmt.Println(r.formatter.FormatMarkdown(response.Content))

	if r.config.UI.ShowTokenCount {
		fmt.Println(r.formatter.FormatTokenUsage(
			response.Usage.InputTokens, response.Usage.OutputTokens, duration))
	}

	fmt.Println()
	os.Stdout.Sync()
}

func (r *REPL) displayError(err error) {
	r.spinner.Stop()
	fmt.Println(r.formatter.FormatError(err))
	fmt.Println()
}

func (r *REPL) displayWelcome() {
	lines := []string{
		"",
		fmt.Sprintf("aide chat • %s", r.provider.Name()),
		fmt.Sprintf("Model: %s", r.session.GetModelName()),
		"Type /help for commands",
		"",
	}
	fmt.Println(r.formatter.FormatSystem(strings.Join(lines, "\n")))
}

func (r *REPL) displayHelp() {
	lines := []string{
		"",
		"Commands:",
		"  /help            - Show help",
		"  /clear           - Clear history",
		"  /system <prompt> - Set system prompt",
		"  /show            - Show system prompt",
		"  /temp <0-2>      - Set temperature",
		"  /count           - Message count",
		"  /quit            - Exit",
		"",
	}
	fmt.Println(r.formatter.FormatInfo(strings.Join(lines, "\n")))
}

func (r *REPL) displayInfo(msg string) {
	fmt.Println(r.formatter.FormatInfo(msg))
	fmt.Println()
}

func (r *REPL) displaySystem(msg string) {
	fmt.Println(r.formatter.FormatSystem(msg))
	fmt.Println()
}
