package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// lineReader is the slice of readline the loop needs, so tests can feed
// scripted input.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

func (r *REPL) readInput() (string, error) {
	line, err := r.rl.Readline()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func setupReadline(prompt string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       "",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
}

func isEOF(err error) bool {
	return err == io.EOF || err == readline.ErrInterrupt
}
