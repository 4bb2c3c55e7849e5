package api

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP_ForwardedForFirstHop(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:4444"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 198.51.100.2")
	r.Header.Set("X-Real-IP", "198.51.100.9")

	if got := ClientIP(r); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded hop, got %q", got)
	}
}

func TestClientIP_RealIPFallback(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:4444"
	r.Header.Set("X-Real-IP", "198.51.100.9")

	if got := ClientIP(r); got != "198.51.100.9" {
		t.Fatalf("expected X-Real-IP, got %q", got)
	}
}

func TestClientIP_RemoteAddrLastResort(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:4444"

	if got := ClientIP(r); got != "10.0.0.1" {
		t.Fatalf("expected remote addr host, got %q", got)
	}
}
