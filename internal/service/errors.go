package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds shared by every service. Handlers translate these to HTTP
// statuses; services always return the most specific kind that applies.
var (
	// ErrValidation marks missing or malformed input (400).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced entity that does not exist (404).
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate unique value: username, email,
	// ingredient name, like/favorite/follow pair (409).
	ErrConflict = errors.New("conflict")
	// ErrInternal marks an unexpected persistence failure (500). The
	// underlying cause is logged, never returned to the client.
	ErrInternal = errors.New("internal error")
)

// isDuplicate reports whether err is a unique-constraint violation. The
// existence checks in the services give the friendly error message; this
// catches the race where two requests pass the check concurrently.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func internalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
