package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRejectsDigestWithoutEmailAccount(t *testing.T) {
	// The default scheduler config enables the daily digest, but no
	// email account is set up.
	configPath := writeTestConfig(t)

	_, err := runCommand(t, configPath, "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no email account is configured")
}

func TestWatchRejectsDigestWithoutProvider(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("AIDE_DEEPSEEK_API_KEY", "")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`email:
  host: imap.test.invalid
  username: me
  password: secret
reminders:
  backend: file
  path: %s
logging:
  file: ""
`, filepath.Join(dir, "reminders.json"))
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	_, err := runCommand(t, configPath, "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI provider is unavailable")
}
