package cli

import (
	"errors"
	"fmt"

	"aide/internal/reminder"
)

// RenderError maps an error to the one-line message main prints to
// stderr. Store error kinds each get their own phrasing so the user
// can tell bad input from a missing record from a disk problem.
func RenderError(err error) string {
	var validationErr *reminder.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	var notFoundErr *reminder.NotFoundError
	if errors.As(err, &notFoundErr) {
		return fmt.Sprintf("no reminder with id %d", notFoundErr.ID)
	}

	var persistenceErr *reminder.PersistenceError
	if errors.As(err, &persistenceErr) {
		return fmt.Sprintf("could not %s reminders: %v", persistenceErr.Op, persistenceErr.Err)
	}

	return err.Error()
}
