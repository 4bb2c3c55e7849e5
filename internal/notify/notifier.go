package notify

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// StatusChanged is the event emitted after a booking transition commits.
// Statuses travel as plain strings so dispatchers stay decoupled from the
// lifecycle enum.
type StatusChanged struct {
	EventID    string    `json:"event_id"`
	BookingID  string    `json:"booking_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewStatusChanged(bookingID, from, to, reason string) StatusChanged {
	return StatusChanged{
		EventID:    uuid.NewString(),
		BookingID:  bookingID,
		OldStatus:  from,
		NewStatus:  to,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
}

// Notifier hands a status change to the external notification dispatcher
// (email/SMS to the guest). Fire-and-forget: callers invoke it after the
// status write has committed, and a failure never rolls the write back.
type Notifier interface {
	StatusChanged(ctx context.Context, ev StatusChanged) error
}

// LogNotifier is the dev default.
type LogNotifier struct{}

func (LogNotifier) StatusChanged(_ context.Context, ev StatusChanged) error {
	log.Printf("[notify] booking=%s %s -> %s", ev.BookingID, ev.OldStatus, ev.NewStatus)
	return nil
}
