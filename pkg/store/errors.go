package store

import "errors"

var (
	// ErrNotFound reports a missing event, reminder, calendar, or list.
	ErrNotFound = errors.New("not found")
	// ErrImmutable reports a write against a protected calendar.
	ErrImmutable = errors.New("calendar is read-only")
	// ErrNotRecurring reports an occurrence operation on a one-off event.
	ErrNotRecurring = errors.New("event has no recurrence rule")
)
