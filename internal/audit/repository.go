package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
)

// Entry is one audit trail row. Every mutating operation writes one inside its
// own transaction, so a status change (or create/delete) and its audit record
// commit or roll back together.
type Entry struct {
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Before     any
	After      any
	IP         string
	UserAgent  string
}

func Insert(ctx context.Context, tx pgx.Tx, e Entry) error {
	const q = `
INSERT INTO audit_logs (actor_id, action, entity_type, entity_id, before_state, after_state, request_ip, user_agent)
VALUES ($1, $2, $3, $4, CAST($5 AS jsonb), CAST($6 AS jsonb), $7, $8)
`
	_, err := tx.Exec(ctx, q,
		e.ActorID, e.Action, e.EntityType, e.EntityID,
		marshalState(e.Before), marshalState(e.After),
		nullable(e.IP), nullable(e.UserAgent),
	)
	return err
}

func marshalState(v any) *string {
	if v == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	s := string(b)
	return &s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
