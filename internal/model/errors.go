package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no user exists for the given ID.
	ErrNotFound = errors.New("user not found")
	// ErrCapacityExceeded is returned when a bounded store is full and
	// the save would add a new user.
	ErrCapacityExceeded = errors.New("store capacity exceeded")
)

// ValidationError reports a single failed field check. The field name
// distinguishes which check failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}
