package booking

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CaptainChua/Staycation/internal/api"
	"github.com/CaptainChua/Staycation/internal/audit"
	"github.com/CaptainChua/Staycation/internal/events"
	"github.com/CaptainChua/Staycation/internal/notify"
	"github.com/CaptainChua/Staycation/pkg/config"
	"github.com/CaptainChua/Staycation/pkg/db"
)

type Handlers struct {
	Cfg      config.Config
	DB       *pgxpool.Pool
	Bookings *Repository
	Notifier notify.Notifier
}

func (h Handlers) storeCtx(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := h.Cfg.StoreTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	if api.OperatorFromContext(r.Context()) == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing operator identity")
		return
	}

	var filter Status
	if raw := r.URL.Query().Get("status"); raw != "" && raw != "all" {
		parsed, err := ParseStatus(raw)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status filter")
			return
		}
		filter = parsed
	}

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	items, err := h.Bookings.List(ctx, filter)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if items == nil {
		items = []Booking{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"data": items, "count": len(items)})
}

func (h Handlers) Get(w http.ResponseWriter, r *http.Request) {
	if api.OperatorFromContext(r.Context()) == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing operator identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"data": b})
}

type UpdateStatusRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason"`
}

// Transition applies one lifecycle change. The row lock taken by
// GetForUpdate serializes concurrent requests against the same booking; a
// request that loses the race revalidates against the committed status and
// fails with INVALID_TRANSITION instead of silently overwriting.
func (h Handlers) Transition(w http.ResponseWriter, r *http.Request) {
	op := api.OperatorFromContext(r.Context())
	if op == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing operator identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	req.RejectionReason = strings.TrimSpace(req.RejectionReason)

	next, err := ParseStatus(req.Status)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status")
		return
	}

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	var updated *Booking
	var prior Status
	err = db.WithTx(ctx, h.DB, func(tx pgx.Tx) error {
		b, err := GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		prior = b.Status

		if err := ValidateTransition(b.Status, next, req.RejectionReason); err != nil {
			return err
		}

		if err := UpdateStatus(ctx, tx, b.ID, next, req.RejectionReason); err != nil {
			return err
		}

		now := time.Now()
		if err := audit.Insert(ctx, tx, audit.Entry{
			ActorID:    op.ID,
			Action:     "BOOKING_STATUS_CHANGED",
			EntityType: "booking",
			EntityID:   b.ID,
			Before:     map[string]any{"status": b.Status, "rejection_reason": b.RejectionReason},
			After:      map[string]any{"status": next, "rejection_reason": req.RejectionReason},
			IP:         api.ClientIP(r),
			UserAgent:  api.UserAgent(r),
		}); err != nil {
			return err
		}
		if err := events.Insert(ctx, tx, b.ID, "STATUS_CHANGED", "Status changed", op.Email, now,
			map[string]any{"from": b.Status, "to": next, "reason": req.RejectionReason}); err != nil {
			return err
		}

		b.Status = next
		if next == StatusRejected {
			b.RejectionReason = req.RejectionReason
		} else {
			b.RejectionReason = ""
		}
		b.UpdatedAt = now
		updated = b
		return nil
	})

	if err != nil {
		writeTransitionError(w, err)
		return
	}

	// Notification is fire-and-forget: the status write already committed and
	// a dispatcher failure must not undo it.
	go h.emitStatusChanged(notify.NewStatusChanged(updated.ID, string(prior), string(updated.Status), updated.RejectionReason))

	api.WriteJSON(w, http.StatusOK, map[string]any{"data": updated})
}

func (h Handlers) emitStatusChanged(ev notify.StatusChanged) {
	if h.Notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := h.Notifier.StatusChanged(ctx, ev); err != nil {
		log.Printf("[booking] notify failed booking=%s event=%s: %v", ev.BookingID, ev.EventID, err)
	}
}

func (h Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	op := api.OperatorFromContext(r.Context())
	if op == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing operator identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	err := db.WithTx(ctx, h.DB, func(tx pgx.Tx) error {
		b, err := GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := Delete(ctx, tx, b.ID); err != nil {
			return err
		}
		return audit.Insert(ctx, tx, audit.Entry{
			ActorID:    op.ID,
			Action:     "BOOKING_DELETED",
			EntityType: "booking",
			EntityID:   b.ID,
			Before:     b,
			IP:         api.ClientIP(r),
			UserAgent:  api.UserAgent(r),
		})
	})

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handlers) Events(w http.ResponseWriter, r *http.Request) {
	if api.OperatorFromContext(r.Context()) == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing operator identity")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "missing id")
		return
	}

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	if _, err := h.Bookings.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	evs, err := events.ListByBooking(ctx, h.DB, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if evs == nil {
		evs = []events.Event{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"data": evs})
}

func writeTransitionError(w http.ResponseWriter, err error) {
	var invalid *InvalidTransitionError
	switch {
	case errors.As(err, &invalid):
		api.WriteError(w, http.StatusBadRequest, "INVALID_TRANSITION", invalid.Error())
	case errors.Is(err, ErrMissingReason):
		api.WriteError(w, http.StatusBadRequest, "MISSING_REASON", "rejection reason is required")
	case errors.Is(err, ErrNotFound):
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
	default:
		writeStoreError(w, err)
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		api.WriteError(w, http.StatusGatewayTimeout, "TIMEOUT", "store operation timed out")
		return
	}
	api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}
