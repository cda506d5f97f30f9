package reminder

import "time"

// Priority is a reminder's priority level.
type Priority string

// Priority levels for reminders.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Priorities lists all priority levels in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// DueDateLayout is the calendar-date format used for due dates.
const DueDateLayout = "2006-01-02"

// Reminder is a single task record. IDs are assigned by the Store and
// never reused; CreatedAt is set once at creation and never changes.
type Reminder struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	DueDate     string    `json:"due_date,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary aggregates counts over the store's collection. ByPriority
// counts pending reminders only, keyed by each of the three levels.
type Summary struct {
	Total      int              `json:"total"`
	Pending    int              `json:"pending"`
	Completed  int              `json:"completed"`
	ByPriority map[Priority]int `json:"by_priority"`
}
