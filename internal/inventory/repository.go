package inventory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Item, error) {
	const q = `
SELECT id, item_name, category, current_stock, min_stock, unit, price::text, status, created_at, updated_at
FROM inventory_items
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Category, &it.CurrentStock, &it.MinStock,
			&it.Unit, &it.Price, &it.Status, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Insert persists a validated item. Status is derived server-side before the
// call; callers run this inside the same transaction as the audit entry.
func Insert(ctx context.Context, tx pgx.Tx, req CreateRequest, status StockStatus) (*Item, error) {
	const q = `
INSERT INTO inventory_items (item_name, category, current_stock, min_stock, unit, price, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, item_name, category, current_stock, min_stock, unit, price::text, status, created_at, updated_at
`
	var it Item
	if err := tx.QueryRow(ctx, q,
		req.Name, req.Category, req.CurrentStock, req.MinStock, req.Unit, req.Price, string(status),
	).Scan(
		&it.ID, &it.Name, &it.Category, &it.CurrentStock, &it.MinStock,
		&it.Unit, &it.Price, &it.Status, &it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &it, nil
}
