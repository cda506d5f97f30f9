package reminder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders.json")
	repo := NewFileRepository(path)

	in := []Reminder{
		{
			ID:        1,
			Title:     "Buy groceries",
			Priority:  PriorityMedium,
			Completed: true,
			CreatedAt: time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Title:       "Meeting",
			Description: "Discuss Q1 goals",
			Priority:    PriorityHigh,
			DueDate:     "2026-03-15",
			CreatedAt:   time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, repo.Save(in))

	out, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileRepositoryMissingFileIsEmpty(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope", "reminders.json"))

	out, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFileRepositoryCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "reminders.json")
	repo := NewFileRepository(path)

	require.NoError(t, repo.Save(nil))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileRepositoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileRepository(path)
	_, err := repo.Load()

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "load", pe.Op)
}

func TestFileRepositorySaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(filepath.Join(dir, "reminders.json"))

	require.NoError(t, repo.Save([]Reminder{{ID: 1, Title: "x", Priority: PriorityLow, CreatedAt: time.Now().UTC()}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "reminders.json", entries[0].Name())
}
