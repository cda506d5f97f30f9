package reminder

import (
	"errors"
	"fmt"
)

// ValidationError reports caller-supplied input that violates a field
// invariant (empty title, unknown priority, malformed due date). It is
// always surfaced to the caller, never recovered internally.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a reminder ID that does not exist in the store.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("reminder %d not found", e.ID)
}

// PersistenceError reports a failed repository read or write. The
// operation that triggered it must not report success; the store
// discards the in-memory mutation.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("reminder storage %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
