package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aide/internal/reminder"
)

type nopRepo struct{}

func (nopRepo) Load() ([]reminder.Reminder, error) { return nil, nil }
func (nopRepo) Save([]reminder.Reminder) error     { return nil }

func newTestScheduler(t *testing.T) (*Scheduler, *reminder.Store) {
	t.Helper()
	store, err := reminder.NewStore(nopRepo{})
	require.NoError(t, err)
	return New(nil, store, nil), store
}

func TestDailySpec(t *testing.T) {
	spec, err := dailySpec("08:30")
	require.NoError(t, err)
	assert.Equal(t, "30 8 * * *", spec)

	spec, err = dailySpec("00:00")
	require.NoError(t, err)
	assert.Equal(t, "0 0 * * *", spec)

	_, err = dailySpec("25:00")
	assert.Error(t, err)
	_, err = dailySpec("morning")
	assert.Error(t, err)
}

func TestScheduleAndRemoveJobs(t *testing.T) {
	s, _ := newTestScheduler(t)

	require.NoError(t, s.ScheduleEmailSummary("08:00", 20))
	require.NoError(t, s.ScheduleReminderScan(60))
	assert.Equal(t, []string{"email_summary", "reminder_scan"}, s.Jobs())

	// Duplicate registration is rejected.
	assert.Error(t, s.ScheduleEmailSummary("09:00", 20))

	require.NoError(t, s.Remove("email_summary"))
	assert.Equal(t, []string{"reminder_scan"}, s.Jobs())
	assert.Error(t, s.Remove("email_summary"))
}

func TestScheduleReminderScanRejectsBadInterval(t *testing.T) {
	s, _ := newTestScheduler(t)
	assert.Error(t, s.ScheduleReminderScan(0))
	assert.Error(t, s.ScheduleReminderScan(-5))
}

func TestDueReminders(t *testing.T) {
	_, store := newTestScheduler(t)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	overdue, err := store.Add(reminder.AddParams{Title: "overdue", DueDate: "2026-03-10"})
	require.NoError(t, err)
	dueToday, err := store.Add(reminder.AddParams{Title: "today", DueDate: "2026-03-15"})
	require.NoError(t, err)
	_, err = store.Add(reminder.AddParams{Title: "future", DueDate: "2026-03-20"})
	require.NoError(t, err)
	_, err = store.Add(reminder.AddParams{Title: "no due date"})
	require.NoError(t, err)

	done, err := store.Add(reminder.AddParams{Title: "done", DueDate: "2026-03-01"})
	require.NoError(t, err)
	_, err = store.Complete(done.ID)
	require.NoError(t, err)

	due := dueReminders(store, now)
	require.Len(t, due, 2)
	assert.Equal(t, overdue.ID, due[0].ID)
	assert.Equal(t, dueToday.ID, due[1].ID)
}
