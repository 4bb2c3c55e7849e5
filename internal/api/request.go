package api

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the requester address for audit logging. Proxy headers are
// consulted in priority order; RemoteAddr is the last resort. For
// X-Forwarded-For only the first hop counts.
func ClientIP(r *http.Request) string {
	if xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); xff != "" {
		first := xff
		if i := strings.IndexByte(xff, ','); i >= 0 {
			first = xff[:i]
		}
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func UserAgent(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("User-Agent"))
}
