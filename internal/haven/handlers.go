package haven

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CaptainChua/Staycation/internal/api"
	"github.com/CaptainChua/Staycation/internal/audit"
	"github.com/CaptainChua/Staycation/pkg/config"
	"github.com/CaptainChua/Staycation/pkg/db"
)

type Handlers struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Havens *Repository
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

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	items, err := h.Havens.List(ctx)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if items == nil {
		items = []Haven{}
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

	hv, err := h.Havens.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "haven not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"data": hv})
}

func (h Handlers) decodeUpsert(w http.ResponseWriter, r *http.Request) (*UpsertRequest, bool) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return nil, false
	}
	if err := req.Validate(); err != nil {
		var verr ValidationError
		if errors.As(err, &verr) {
			api.WriteError(w, http.StatusBadRequest, verr.Code, verr.Message)
			return nil, false
		}
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return nil, false
	}
	return &req, true
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	op := api.OperatorFromContext(r.Context())
	if op == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing operator identity")
		return
	}

	req, ok := h.decodeUpsert(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	var created *Haven
	err := db.WithTx(ctx, h.DB, func(tx pgx.Tx) error {
		hv, err := Insert(ctx, tx, *req)
		if err != nil {
			return err
		}
		created = hv
		return audit.Insert(ctx, tx, audit.Entry{
			ActorID:    op.ID,
			Action:     "HAVEN_CREATED",
			EntityType: "haven",
			EntityID:   hv.ID,
			After:      hv,
			IP:         api.ClientIP(r),
			UserAgent:  api.UserAgent(r),
		})
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{"data": created})
}

func (h Handlers) Update(w http.ResponseWriter, r *http.Request) {
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

	req, ok := h.decodeUpsert(w, r)
	if !ok {
		return
	}

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	var updated *Haven
	err := db.WithTx(ctx, h.DB, func(tx pgx.Tx) error {
		before, err := GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		hv, err := Update(ctx, tx, id, *req)
		if err != nil {
			return err
		}
		updated = hv
		return audit.Insert(ctx, tx, audit.Entry{
			ActorID:    op.ID,
			Action:     "HAVEN_UPDATED",
			EntityType: "haven",
			EntityID:   hv.ID,
			Before:     before,
			After:      hv,
			IP:         api.ClientIP(r),
			UserAgent:  api.UserAgent(r),
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "haven not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"data": updated})
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
		before, err := GetForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := Delete(ctx, tx, id); err != nil {
			return err
		}
		return audit.Insert(ctx, tx, audit.Entry{
			ActorID:    op.ID,
			Action:     "HAVEN_DELETED",
			EntityType: "haven",
			EntityID:   before.ID,
			Before:     before,
			IP:         api.ClientIP(r),
			UserAgent:  api.UserAgent(r),
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "haven not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		api.WriteError(w, http.StatusGatewayTimeout, "TIMEOUT", "store operation timed out")
		return
	}
	api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}
