package reminder

// Repository is the persistence boundary for the reminder collection.
// The store reads the whole collection once at construction and writes
// the whole collection back after every mutation, so implementations
// only need load/save of the full set, not per-record operations.
//
// Save must be atomic with respect to crashes: a failed save must leave
// the previously persisted collection readable.
type Repository interface {
	Load() ([]Reminder, error)
	Save(reminders []Reminder) error
}
