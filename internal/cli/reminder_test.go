package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig writes a config that keeps all state inside the test
// temp dir and returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`reminders:
  backend: file
  path: %s
logging:
  file: ""
`, filepath.Join(dir, "reminders.json"))

	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func runCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configPath, "--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestReminderAddAndList(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCommand(t, configPath, "reminder", "add", "Buy groceries", "--due", "2026-03-15", "-p", "high")
	require.NoError(t, err)
	assert.Contains(t, out, "Reminder #1 added: Buy groceries")

	out, err = runCommand(t, configPath, "reminder", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "#1 Buy groceries")
	assert.Contains(t, out, "due 2026-03-15")
	assert.Contains(t, out, "high")
}

func TestReminderAddRejectsBadInput(t *testing.T) {
	configPath := writeTestConfig(t)

	_, err := runCommand(t, configPath, "reminder", "add", "   ")
	require.Error(t, err)
	assert.Contains(t, RenderError(err), "title")

	_, err = runCommand(t, configPath, "reminder", "add", "x", "-p", "urgent")
	require.Error(t, err)
	assert.Contains(t, RenderError(err), "priority")

	_, err = runCommand(t, configPath, "reminder", "add", "x", "--due", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, RenderError(err), "due_date")
}

func TestReminderCompleteHidesFromDefaultList(t *testing.T) {
	configPath := writeTestConfig(t)

	_, err := runCommand(t, configPath, "reminder", "add", "Call mom")
	require.NoError(t, err)

	out, err := runCommand(t, configPath, "reminder", "complete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Reminder #1 completed")

	out, err = runCommand(t, configPath, "reminder", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No reminders.")

	out, err = runCommand(t, configPath, "reminder", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] #1 Call mom")
}

func TestReminderCompleteUnknownID(t *testing.T) {
	configPath := writeTestConfig(t)

	_, err := runCommand(t, configPath, "reminder", "complete", "99")
	require.Error(t, err)
	assert.Equal(t, "no reminder with id 99", RenderError(err))

	_, err = runCommand(t, configPath, "reminder", "complete", "abc")
	require.Error(t, err)
}

func TestReminderDeleteWithYesFlag(t *testing.T) {
	configPath := writeTestConfig(t)

	_, err := runCommand(t, configPath, "reminder", "add", "Old task")
	require.NoError(t, err)

	out, err := runCommand(t, configPath, "reminder", "delete", "1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Reminder #1 deleted")

	// IDs are not reused after delete.
	out, err = runCommand(t, configPath, "reminder", "add", "New task")
	require.NoError(t, err)
	assert.Contains(t, out, "Reminder #2 added")
}

func TestStatusCommand(t *testing.T) {
	configPath := writeTestConfig(t)

	_, err := runCommand(t, configPath, "reminder", "add", "a", "-p", "high")
	require.NoError(t, err)
	_, err = runCommand(t, configPath, "reminder", "add", "b")
	require.NoError(t, err)
	_, err = runCommand(t, configPath, "reminder", "complete", "2")
	require.NoError(t, err)

	out, err := runCommand(t, configPath, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 2")
	assert.Contains(t, out, "pending: 1")
	assert.Contains(t, out, "completed: 1")
	assert.Contains(t, out, "high=1 medium=0 low=0")
	assert.Contains(t, out, "#1 a")
}
