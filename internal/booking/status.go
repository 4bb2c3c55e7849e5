package booking

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusConfirmed Status = "confirmed"
	StatusCheckedIn Status = "checked-in"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusConfirmed,
		StatusCheckedIn, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

// allowedTransitions is the full lifecycle. Every non-terminal status may be
// cancelled even though the admin UI only exposes approve/reject/check-in/check-out.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending:   {StatusApproved: true, StatusRejected: true, StatusCancelled: true},
	StatusApproved:  {StatusCheckedIn: true, StatusCancelled: true},
	StatusConfirmed: {StatusCheckedIn: true, StatusCancelled: true},
	StatusCheckedIn: {StatusCompleted: true, StatusCancelled: true},
	StatusRejected:  {},
	StatusCompleted: {},
	StatusCancelled: {},
}

func CanTransition(from, to Status) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}

func (s Status) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

// ValidateTransition checks the requested change against the lifecycle table.
// Rejection always carries a non-empty reason; no other transition takes one.
func ValidateTransition(from, to Status, reason string) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	if to == StatusRejected && reason == "" {
		return ErrMissingReason
	}
	return nil
}
