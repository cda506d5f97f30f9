package ui

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"aide/internal/calendar"
	"aide/internal/email"
	"aide/internal/reminder"
)

func TestFormatReminderPlain(t *testing.T) {
	f := NewFormatter(false)

	pending := reminder.Reminder{
		ID:       3,
		Title:    "Buy groceries",
		Priority: reminder.PriorityHigh,
		DueDate:  "2026-03-15",
	}
	assert.Equal(t, "[ ] #3 Buy groceries (due 2026-03-15, high)", f.FormatReminder(pending))

	done := reminder.Reminder{
		ID:        4,
		Title:     "Call mom",
		Priority:  reminder.PriorityMedium,
		Completed: true,
	}
	assert.Equal(t, "[x] #4 Call mom (medium)", f.FormatReminder(done))
}

func TestFormatReminderListEmpty(t *testing.T) {
	f := NewFormatter(false)
	assert.Equal(t, "No reminders.", f.FormatReminderList(nil))
}

func TestFormatSummary(t *testing.T) {
	f := NewFormatter(false)

	out := f.FormatSummary(reminder.Summary{
		Total:     5,
		Pending:   3,
		Completed: 2,
		ByPriority: map[reminder.Priority]int{
			reminder.PriorityHigh:   1,
			reminder.PriorityMedium: 2,
			reminder.PriorityLow:    0,
		},
	})

	assert.Contains(t, out, "total: 5")
	assert.Contains(t, out, "pending: 3")
	assert.Contains(t, out, "high=1 medium=2 low=0")
}

func TestFormatEvent(t *testing.T) {
	f := NewFormatter(false)

	ev := calendar.Event{
		Title:    "Dentist",
		Location: "Main St 4",
		Start:    time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local),
		End:      time.Date(2026, 3, 16, 11, 0, 0, 0, time.Local),
	}

	out := f.FormatEvent(ev)
	assert.Contains(t, out, "Dentist")
	assert.Contains(t, out, "@ Main St 4")
	assert.Contains(t, out, "10:00")
}

func TestFormatEnvelopeMarksUnread(t *testing.T) {
	f := NewFormatter(false)

	unread := f.FormatEnvelope(email.Envelope{
		From: "Alice", Subject: "hi", Unread: true, Date: time.Now(),
	})
	read := f.FormatEnvelope(email.Envelope{
		From: "Alice", Subject: "hi", Date: time.Now(),
	})

	assert.Equal(t, "*", unread[:1])
	assert.Equal(t, " ", read[:1])
}

func TestFormatError(t *testing.T) {
	f := NewFormatter(false)
	assert.Equal(t, "Error: boom", f.FormatError(errors.New("boom")))
}

func TestFormatMarkdownPlainPassthrough(t *testing.T) {
	f := NewFormatter(false)
	assert.Equal(t, "# heading", f.FormatMarkdown("# heading"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long stri…", truncate("long string here", 10))
}

func TestTruncateMultibyte(t *testing.T) {
	assert.Equal(t, "Jürgen Må…", truncate("Jürgen Månsson (Städfirma)", 10))
	assert.True(t, utf8.ValidString(truncate(strings.Repeat("é", 40), 25)))
	assert.Equal(t, "ééééé", truncate("ééééé", 5))
}

func TestFormatMessage(t *testing.T) {
	f := NewFormatter(false)

	out := f.FormatMessage(email.Message{
		Envelope: email.Envelope{
			From:    "Alice",
			Subject: "plans",
			Date:    time.Date(2026, 3, 16, 18, 30, 0, 0, time.Local),
		},
		Body: "dinner at 8\n",
	})

	assert.Contains(t, out, "From: Alice")
	assert.Contains(t, out, "Subject: plans")
	assert.Contains(t, out, "dinner at 8")

	empty := f.FormatMessage(email.Message{Envelope: email.Envelope{From: "Bob"}})
	assert.Contains(t, empty, "(no text body)")
}
