package api

import (
	"net/http"
	"strings"

	"github.com/CaptainChua/Staycation/internal/operator"
)

// DevHeaderAuth is a minimal operator auth middleware for local development.
//
// Contract:
// - Caller provides the operator email via `X-Operator-Email` header.
// - Middleware loads (or bootstraps) the operator record and attaches it to context.
//
// Never enabled in prod; production uses OperatorSessionAuth.
func DevHeaderAuth(operators *operator.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Operator-Email")))
			if email == "" {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing operator identity")
				return
			}

			op, err := operators.FindByEmail(r.Context(), email)
			if err != nil {
				// Dev bootstrap: register unknown operators on the fly.
				op, err = operators.Upsert(r.Context(), email, "")
				if err != nil {
					WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to register operator")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithOperator(r.Context(), op)))
		})
	}
}
