package analytics

import "testing"

func TestAveragePerBooking(t *testing.T) {
	if got := AveragePerBooking("345000", 89); got != "3876.4" {
		t.Fatalf("unexpected average: %q", got)
	}
	if got := AveragePerBooking("100.00", 3); got != "33.33" {
		t.Fatalf("unexpected average: %q", got)
	}
}

func TestAveragePerBooking_ZeroBookings(t *testing.T) {
	if got := AveragePerBooking("0", 0); got != "0" {
		t.Fatalf("expected 0, got %q", got)
	}
}

func TestAveragePerBooking_BadRevenue(t *testing.T) {
	if got := AveragePerBooking("n/a", 4); got != "0" {
		t.Fatalf("expected 0, got %q", got)
	}
}
