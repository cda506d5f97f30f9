package reminder

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists the reminder collection in a SQLite database.
// It implements the same whole-collection Repository contract as the
// JSON file backend: Save replaces the table contents in one transaction,
// so a failed save rolls back to the previously persisted state.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at dbPath and
// ensures the reminders table exists.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("opening database: %w", err)}
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("setting WAL mode: %w", err)}
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS reminders (
			id          INTEGER PRIMARY KEY,
			title       TEXT    NOT NULL,
			description TEXT    NOT NULL DEFAULT '',
			priority    TEXT    NOT NULL DEFAULT 'medium',
			due_date    TEXT    NOT NULL DEFAULT '',
			completed   INTEGER NOT NULL DEFAULT 0,
			created_at  TEXT    NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("creating table: %w", err)}
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Load reads the full collection in insertion (ID) order.
func (r *SQLiteRepository) Load() ([]Reminder, error) {
	rows, err := r.db.Query(`
		SELECT id, title, description, priority, due_date, completed, created_at
		FROM reminders ORDER BY id ASC
	`)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	defer rows.Close()

	var reminders []Reminder
	for rows.Next() {
		var rec Reminder
		var completed int
		var createdAt string

		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Description,
			&rec.Priority, &rec.DueDate, &completed, &createdAt); err != nil {
			return nil, &PersistenceError{Op: "load", Err: err}
		}

		rec.Completed = completed != 0
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("parsing created_at for reminder %d: %w", rec.ID, err)}
		}

		reminders = append(reminders, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return reminders, nil
}

// Save replaces the table contents with the given collection.
func (r *SQLiteRepository) Save(reminders []Reminder) error {
	tx, err := r.db.Begin()
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}

	if _, err := tx.Exec(`DELETE FROM reminders`); err != nil {
		tx.Rollback()
		return &PersistenceError{Op: "save", Err: err}
	}

	for _, rec := range reminders {
		completed := 0
		if rec.Completed {
			completed = 1
		}
		if _, err := tx.Exec(`
			INSERT INTO reminders (id, title, description, priority, due_date, completed, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.Title, rec.Description, string(rec.Priority), rec.DueDate,
			completed, rec.CreatedAt.UTC().Format(time.RFC3339Nano)); err != nil {
			tx.Rollback()
			return &PersistenceError{Op: "save", Err: fmt.Errorf("inserting reminder %d: %w", rec.ID, err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}
