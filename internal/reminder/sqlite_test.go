package reminder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "reminders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepositoryRoundTrip(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	in := []Reminder{
		{
			ID:        1,
			Title:     "Buy groceries",
			Priority:  PriorityMedium,
			CreatedAt: time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          4,
			Title:       "Meeting",
			Description: "Discuss Q1 goals",
			Priority:    PriorityHigh,
			DueDate:     "2026-03-15",
			Completed:   true,
			CreatedAt:   time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, repo.Save(in))

	out, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSQLiteRepositoryEmptyDatabase(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	out, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSQLiteRepositorySaveReplaces(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save([]Reminder{
		{ID: 1, Title: "a", Priority: PriorityLow, CreatedAt: created},
		{ID: 2, Title: "b", Priority: PriorityLow, CreatedAt: created},
	}))
	require.NoError(t, repo.Save([]Reminder{
		{ID: 2, Title: "b", Priority: PriorityLow, CreatedAt: created},
	}))

	out, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestSQLiteRepositoryWorksWithStore(t *testing.T) {
	repo := newTestSQLiteRepo(t)

	store, err := NewStore(repo)
	require.NoError(t, err)

	rec, err := store.Add(AddParams{Title: "persisted", Priority: PriorityHigh})
	require.NoError(t, err)

	reloaded, err := NewStore(repo)
	require.NoError(t, err)
	got, err := reloaded.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Title)
	assert.Equal(t, PriorityHigh, got.Priority)
}
