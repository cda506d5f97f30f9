package reminder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileRepository persists the reminder collection as a single JSON file
// (an array of records). Saves write to a temporary file in the same
// directory and rename it over the target, so a crash mid-write leaves
// the previous file intact.
type FileRepository struct {
	path string
}

// NewFileRepository creates a repository backed by the JSON file at path.
// The file does not need to exist yet.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the full collection. A missing file is an empty collection,
// not an error.
func (r *FileRepository) Load() ([]Reminder, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	var reminders []Reminder
	if err := json.Unmarshal(data, &reminders); err != nil {
		return nil, &PersistenceError{Op: "load", Err: fmt.Errorf("parsing %s: %w", r.path, err)}
	}
	return reminders, nil
}

// Save writes the full collection atomically.
func (r *FileRepository) Save(reminders []Reminder) error {
	if reminders == nil {
		reminders = []Reminder{}
	}

	data, err := json.MarshalIndent(reminders, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistenceError{Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "save", Err: err}
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}
