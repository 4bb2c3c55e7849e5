package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookNotifier_PostsEvent(t *testing.T) {
	var got StatusChanged
	var auth string
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := WebhookNotifier{URL: srv.URL, AuthToken: "tok_123"}
	ev := NewStatusChanged("b1", "pending", "approved", "")

	if err := n.StatusChanged(context.Background(), ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one dispatch, got %d", calls)
	}
	if got.BookingID != "b1" || got.OldStatus != "pending" || got.NewStatus != "approved" {
		t.Fatalf("payload mismatch: %+v", got)
	}
	if got.EventID == "" {
		t.Fatalf("expected event id")
	}
	if auth != "Bearer tok_123" {
		t.Fatalf("auth header mismatch: %q", auth)
	}
}

func TestWebhookNotifier_SurfacesDispatcherError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "smtp relay down", http.StatusBadGateway)
	}))
	defer srv.Close()

	n := WebhookNotifier{URL: srv.URL}
	ev := NewStatusChanged("b2", "pending", "rejected", "no availability")

	if err := n.StatusChanged(context.Background(), ev); err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
}

func TestWebhookNotifier_MissingURL(t *testing.T) {
	n := WebhookNotifier{}
	if err := n.StatusChanged(context.Background(), StatusChanged{}); err == nil {
		t.Fatalf("expected error for missing url")
	}
}
