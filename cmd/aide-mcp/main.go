// Command aide-mcp exposes the reminder store as an MCP server over
// stdio, so MCP-capable AI clients can manage the same reminders as
// the aide CLI.
//
// Usage:
//
//	./aide-mcp          # Start MCP server (stdio)
//	./aide-mcp --help   # Show help
//
// Environment:
//
//	AIDE_REMINDERS_PATH  Path to the reminders file (default: ~/.aide/reminders.json)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"aide/internal/reminder"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			printHelp()
			return
		}
	}

	path := os.Getenv("AIDE_REMINDERS_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get home directory: %v\n", err)
			os.Exit(1)
		}
		dir := filepath.Join(home, ".aide")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create config directory: %v\n", err)
			os.Exit(1)
		}
		path = filepath.Join(dir, "reminders.json")
	}

	store, err := reminder.NewStore(reminder.NewFileRepository(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open reminder store: %v\n", err)
		os.Exit(1)
	}

	s := reminder.NewServer(store)

	if err := server.ServeStdio(s.MCPServer()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`aide-mcp - reminder management via the MCP protocol

USAGE:
    aide-mcp          Start MCP server (communicates via stdio)
    aide-mcp --help   Show this help

ENVIRONMENT:
    AIDE_REMINDERS_PATH  Path to the reminders JSON file
                         Default: ~/.aide/reminders.json

TOOLS:
    add_reminder       Add a new reminder (title, due_date, description, priority)
    list_reminders     List reminders (include_completed, priority filters)
    complete_reminder  Mark a reminder as completed
    delete_reminder    Delete a reminder permanently
    reminder_status    Reminder counters as JSON

CONFIGURATION:
    Add to your MCP client config:
    {
      "mcpServers": {
        "reminders": {
          "command": "/path/to/aide-mcp",
          "args": []
        }
      }
    }`)
}
