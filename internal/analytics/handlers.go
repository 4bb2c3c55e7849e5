package analytics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/CaptainChua/Staycation/internal/api"
	"github.com/CaptainChua/Staycation/pkg/config"
)

type Handlers struct {
	Cfg  config.Config
	Repo *Repository
}

func (h Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	if api.OperatorFromContext(r.Context()) == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing operator identity")
		return
	}

	timeout := h.Cfg.StoreTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	s, err := h.Repo.Summary(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			api.WriteError(w, http.StatusGatewayTimeout, "TIMEOUT", "store operation timed out")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"data": s})
}
