package haven

import (
	"errors"
	"testing"
)

func TestUpsertRequestValidate(t *testing.T) {
	req := UpsertRequest{Name: " Haven A ", View: "City View", PricePerNight: "4500.00", Capacity: 4}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "Haven A" {
		t.Fatalf("name not trimmed: %q", req.Name)
	}

	cases := []struct {
		name string
		req  UpsertRequest
		code string
	}{
		{"empty name", UpsertRequest{PricePerNight: "100", Capacity: 2}, "HAVEN_NAME_REQUIRED"},
		{"bad price", UpsertRequest{Name: "A", PricePerNight: "cheap", Capacity: 2}, "PRICE_INVALID"},
		{"negative price", UpsertRequest{Name: "A", PricePerNight: "-1", Capacity: 2}, "PRICE_INVALID"},
		{"zero capacity", UpsertRequest{Name: "A", PricePerNight: "100", Capacity: 0}, "CAPACITY_INVALID"},
	}
	for _, tc := range cases {
		err := tc.req.Validate()
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if verr.Code != tc.code {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.code, verr.Code)
		}
	}
}
