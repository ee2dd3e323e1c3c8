package services

import "errors"

// ErrNotFound is returned when an operation targets an id that does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed field before any mutation is
// attempted. It maps to a 400 at the HTTP layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation such as a second job card for
// a booking or a second billing for a job card. No mutation has happened.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ImmutableStateError reports an edit attempt against a billed job card.
type ImmutableStateError struct {
	Message string
}

func (e *ImmutableStateError) Error() string { return e.Message }
