package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "aide", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"ask", "chat", "email", "calendar", "reminder", "status", "watch"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestReminderSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"add", "list", "complete", "delete"} {
		subCmd, _, err := cmd.Find([]string{"reminder", name})
		require.NoError(t, err)
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestEmailSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	readCmd, _, err := cmd.Find([]string{"email", "read"})
	require.NoError(t, err)
	assert.Equal(t, "read", readCmd.Name())
}

func TestCalendarSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	listCmd, _, err := cmd.Find([]string{"calendar", "list"})
	require.NoError(t, err)
	require.NotNil(t, listCmd.Flags().Lookup("days"))

	addCmd, _, err := cmd.Find([]string{"calendar", "add"})
	require.NoError(t, err)
	require.NotNil(t, addCmd.Flags().Lookup("start"))
	require.NotNil(t, addCmd.Flags().Lookup("end"))
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)

	noColorFlag := cmd.PersistentFlags().Lookup("no-color")
	require.NotNil(t, noColorFlag)
	assert.Equal(t, "false", noColorFlag.DefValue)
}
