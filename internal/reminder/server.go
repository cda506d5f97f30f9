package reminder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "aide-reminder"
	serverVersion = "1.0.0"
)

// Server exposes the reminder store as MCP tools, so an AI agent can
// manage reminders over stdio.
type Server struct {
	mcpServer *server.MCPServer
	store     *Store
}

// NewServer creates a new reminder MCP server backed by the given store.
func NewServer(store *Store) *Server {
	s := &Server{
		store: store,
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server for serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("add_reminder",
			mcp.WithDescription("Add a new reminder with a title and optional description, due date and priority"),
			mcp.WithString("title", mcp.Required(), mcp.Description("Reminder title")),
			mcp.WithString("description", mcp.Description("Optional description")),
			mcp.WithString("due_date", mcp.Description("Optional due date in YYYY-MM-DD format")),
			mcp.WithString("priority", mcp.Description("Priority: low, medium, high (default: medium)")),
		),
		s.handleAddReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_reminders",
			mcp.WithDescription("List reminders, pending only by default"),
			mcp.WithBoolean("include_completed", mcp.Description("Include completed reminders")),
			mcp.WithString("priority", mcp.Description("Filter by priority: low, medium, high")),
		),
		s.handleListReminders,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("complete_reminder",
			mcp.WithDescription("Mark a reminder as completed"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Reminder ID")),
		),
		s.handleCompleteReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("delete_reminder",
			mcp.WithDescription("Delete a reminder permanently"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Reminder ID")),
		),
		s.handleDeleteReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("reminder_status",
			mcp.WithDescription("Get aggregate reminder counts (total, pending, completed, pending by priority)"),
		),
		s.handleReminderStatus,
	)
}

func (s *Server) handleAddReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	added, err := s.store.Add(AddParams{
		Title:       req.GetString("title", ""),
		Description: req.GetString("description", ""),
		DueDate:     req.GetString("due_date", ""),
		Priority:    Priority(req.GetString("priority", "")),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add reminder: %v", err)), nil
	}

	output, _ := json.MarshalIndent(added, "", "  ")
	return mcp.NewToolResultText(string(output)), nil
}

func (s *Server) handleListReminders(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	priority := Priority(req.GetString("priority", ""))
	if priority != "" && !priority.Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown priority %q (use low, medium or high)", priority)), nil
	}

	reminders := s.store.List(ListOptions{
		IncludeCompleted: req.GetBool("include_completed", false),
		Priority:         priority,
	})

	if len(reminders) == 0 {
		return mcp.NewToolResultText("No reminders found."), nil
	}

	output, _ := json.MarshalIndent(reminders, "", "  ")
	return mcp.NewToolResultText(string(output)), nil
}

func (s *Server) handleCompleteReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idFloat := req.GetFloat("id", -1)
	if idFloat < 0 {
		return mcp.NewToolResultError("id is required and must be a positive number"), nil
	}
	id := int64(idFloat)

	if _, err := s.store.Complete(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to complete reminder: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Reminder %d marked as completed.", id)), nil
}

func (s *Server) handleDeleteReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idFloat := req.GetFloat("id", -1)
	if idFloat < 0 {
		return mcp.NewToolResultError("id is required and must be a positive number"), nil
	}
	id := int64(idFloat)

	if err := s.store.Delete(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete reminder: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Reminder %d deleted.", id)), nil
}

func (s *Server) handleReminderStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	output, _ := json.MarshalIndent(s.store.StatusSummary(), "", "  ")
	return mcp.NewToolResultText(string(output)), nil
}
