package booking

import (
	"errors"
	"fmt"
)

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.From, e.To)
}

var (
	// ErrMissingReason is returned when a booking is rejected without a reason.
	ErrMissingReason = errors.New("rejection reason is required")

	// ErrNotFound is returned by repository lookups for unknown booking ids.
	ErrNotFound = errors.New("booking not found")
)
