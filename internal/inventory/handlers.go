package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CaptainChua/Staycation/internal/api"
	"github.com/CaptainChua/Staycation/internal/audit"
	"github.com/CaptainChua/Staycation/pkg/config"
	"github.com/CaptainChua/Staycation/pkg/db"
)

type Handlers struct {
	Cfg   config.Config
	DB    *pgxpool.Pool
	Items *Repository
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

	items, err := h.Items.List(ctx)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if items == nil {
		items = []Item{}
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{"data": items, "count": len(items)})
}

func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	op := api.OperatorFromContext(r.Context())
	if op == nil {
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing operator identity")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		var verr ValidationError
		if errors.As(err, &verr) {
			api.WriteError(w, http.StatusBadRequest, verr.Code, verr.Message)
			return
		}
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	status := DeriveStockStatus(req.CurrentStock)

	ctx, cancel := h.storeCtx(r)
	defer cancel()

	var created *Item
	err := db.WithTx(ctx, h.DB, func(tx pgx.Tx) error {
		it, err := Insert(ctx, tx, req, status)
		if err != nil {
			return err
		}
		created = it
		return audit.Insert(ctx, tx, audit.Entry{
			ActorID:    op.ID,
			Action:     "INVENTORY_ITEM_CREATED",
			EntityType: "inventory_item",
			EntityID:   it.ID,
			After:      it,
			IP:         api.ClientIP(r),
			UserAgent:  api.UserAgent(r),
		})
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	api.WriteJSON(w, http.StatusCreated, map[string]any{"data": created, "message": "Inventory item created successfully"})
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		api.WriteError(w, http.StatusGatewayTimeout, "TIMEOUT", "store operation timed out")
		return
	}
	api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}
