package reminder

import (
	"strings"
	"time"
)

// Store owns the reminder collection. All access goes through its
// operations; nothing else mutates the collection. It is built for a
// single CLI invocation at a time: load once at construction, write the
// whole collection back after every mutation. A mutation is committed
// in memory only after the repository save succeeds.
type Store struct {
	repo      Repository
	reminders []Reminder
	nextID    int64
}

// NewStore loads the persisted collection from repo and derives the next
// unused ID from it, so IDs stay monotonic across process restarts.
func NewStore(repo Repository) (*Store, error) {
	reminders, err := repo.Load()
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, r := range reminders {
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	return &Store{
		repo:      repo,
		reminders: reminders,
		nextID:    maxID + 1,
	}, nil
}

// AddParams are the caller-supplied fields for a new reminder.
// Priority defaults to medium; DueDate is optional and may be in the
// past (reminders can be created already overdue).
type AddParams struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     string
}

// Add validates params, assigns the next unused ID, persists the
// updated collection, and returns the created record.
func (s *Store) Add(p AddParams) (Reminder, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return Reminder{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	priority := p.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return Reminder{}, &ValidationError{
			Field:  "priority",
			Reason: "must be one of low, medium, high",
		}
	}

	if p.DueDate != "" {
		if _, err := time.Parse(DueDateLayout, p.DueDate); err != nil {
			return Reminder{}, &ValidationError{
				Field:  "due_date",
				Reason: "must be a date in " + DueDateLayout + " format",
			}
		}
	}

	rec := Reminder{
		ID:          s.nextID,
		Title:       title,
		Description: p.Description,
		Priority:    priority,
		DueDate:     p.DueDate,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}

	candidate := append(s.snapshot(), rec)
	if err := s.repo.Save(candidate); err != nil {
		return Reminder{}, err
	}

	s.reminders = candidate
	s.nextID++
	return rec, nil
}

// ListOptions filter the result of List. The zero value returns all
// pending reminders.
type ListOptions struct {
	IncludeCompleted bool
	Priority         Priority // empty means any
}

// List returns reminders in insertion order. Completed records are
// excluded unless IncludeCompleted is set; a non-empty Priority
// restricts the result to that level.
func (s *Store) List(opts ListOptions) []Reminder {
	out := make([]Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		if r.Completed && !opts.IncludeCompleted {
			continue
		}
		if opts.Priority != "" && r.Priority != opts.Priority {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Get returns the reminder with the given ID.
func (s *Store) Get(id int64) (Reminder, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Reminder{}, &NotFoundError{ID: id}
	}
	return s.reminders[idx], nil
}

// Complete marks the reminder as completed and persists the change.
// Completing an already-completed reminder is a no-op that returns the
// record unchanged.
func (s *Store) Complete(id int64) (Reminder, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Reminder{}, &NotFoundError{ID: id}
	}

	if s.reminders[idx].Completed {
		return s.reminders[idx], nil
	}

	candidate := s.snapshot()
	candidate[idx].Completed = true
	if err := s.repo.Save(candidate); err != nil {
		return Reminder{}, err
	}

	s.reminders = candidate
	return s.reminders[idx], nil
}

// Delete removes the reminder permanently and persists the change.
func (s *Store) Delete(id int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}

	snap := s.snapshot()
	candidate := append(snap[:idx], snap[idx+1:]...)
	if err := s.repo.Save(candidate); err != nil {
		return err
	}

	s.reminders = candidate
	return nil
}

// StatusSummary returns aggregate counts over the collection.
func (s *Store) StatusSummary() Summary {
	sum := Summary{
		Total:      len(s.reminders),
		ByPriority: make(map[Priority]int, len(Priorities)),
	}
	for _, p := range Priorities {
		sum.ByPriority[p] = 0
	}

	for _, r := range s.reminders {
		if r.Completed {
			sum.Completed++
			continue
		}
		sum.Pending++
		sum.ByPriority[r.Priority]++
	}
	return sum
}

// Len returns the number of reminders in the store, completed included.
func (s *Store) Len() int {
	return len(s.reminders)
}

func (s *Store) indexOf(id int64) int {
	for i, r := range s.reminders {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// snapshot copies the collection so a failed save never leaves a
// half-applied mutation visible.
func (s *Store) snapshot() []Reminder {
	out := make([]Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}
