// Command aide is a personal assistant for the terminal: one-shot AI
// questions, an interactive chat, email and calendar views, and a
// reminder list that survives restarts.
package main

import (
	"fmt"
	"os"

	"aide/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.RenderError(err))
		os.Exit(1)
	}
}
