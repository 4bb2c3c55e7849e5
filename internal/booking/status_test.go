package booking

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("checked-in"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseStatus("Approved"); err == nil {
		t.Fatalf("expected error for wrong case")
	}
	if _, err := ParseStatus("on-hold"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestValidateTransition_Lifecycle(t *testing.T) {
	legal := []struct {
		from, to Status
		reason   string
	}{
		{StatusPending, StatusApproved, ""},
		{StatusPending, StatusRejected, "double booked"},
		{StatusApproved, StatusCheckedIn, ""},
		{StatusConfirmed, StatusCheckedIn, ""},
		{StatusCheckedIn, StatusCompleted, ""},
	}
	for _, tc := range legal {
		if err := ValidateTransition(tc.from, tc.to, tc.reason); err != nil {
			t.Fatalf("%s -> %s: unexpected error: %v", tc.from, tc.to, err)
		}
	}
}

func TestValidateTransition_CancelFromAnyNonTerminal(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusApproved, StatusConfirmed, StatusCheckedIn} {
		if err := ValidateTransition(from, StatusCancelled, ""); err != nil {
			t.Fatalf("%s -> cancelled: unexpected error: %v", from, err)
		}
	}
	for _, from := range []Status{StatusRejected, StatusCompleted, StatusCancelled} {
		if err := ValidateTransition(from, StatusCancelled, ""); err == nil {
			t.Fatalf("%s -> cancelled: expected error", from)
		}
	}
}

func TestValidateTransition_IllegalPairs(t *testing.T) {
	illegal := []struct{ from, to Status }{
		{StatusCompleted, StatusApproved},
		{StatusRejected, StatusCheckedIn},
		{StatusPending, StatusCheckedIn},
		{StatusPending, StatusCompleted},
		{StatusApproved, StatusRejected},
		{StatusCheckedIn, StatusApproved},
		{StatusCancelled, StatusPending},
		// No self-loops: reapplying a finished transition fails.
		{StatusApproved, StatusApproved},
	}
	for _, tc := range illegal {
		err := ValidateTransition(tc.from, tc.to, "whatever")
		var invalid *InvalidTransitionError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s -> %s: expected InvalidTransitionError, got %v", tc.from, tc.to, err)
		}
		if invalid.From != tc.from || invalid.To != tc.to {
			t.Fatalf("error pair mismatch: %v", invalid)
		}
	}
}

func TestValidateTransition_RejectRequiresReason(t *testing.T) {
	if err := ValidateTransition(StatusPending, StatusRejected, ""); !errors.Is(err, ErrMissingReason) {
		t.Fatalf("expected ErrMissingReason, got %v", err)
	}
	if err := ValidateTransition(StatusPending, StatusRejected, "no availability"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTerminal(t *testing.T) {
	for _, s := range []Status{StatusRejected, StatusCompleted, StatusCancelled} {
		if !s.Terminal() {
			t.Fatalf("expected %s terminal", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusApproved, StatusConfirmed, StatusCheckedIn} {
		if s.Terminal() {
			t.Fatalf("expected %s non-terminal", s)
		}
	}
}
