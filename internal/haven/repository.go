package haven

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned by lookups for unknown haven ids.
var ErrNotFound = errors.New("haven not found")

const havenColumns = `id, name, COALESCE(view, ''), COALESCE(description, ''), price_per_night::text, capacity, created_at, updated_at`

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanHaven(row pgx.Row) (*Haven, error) {
	var h Haven
	if err := row.Scan(
		&h.ID, &h.Name, &h.View, &h.Description, &h.PricePerNight, &h.Capacity, &h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *Repository) List(ctx context.Context) ([]Haven, error) {
	const q = `
SELECT ` + havenColumns + `
FROM havens
ORDER BY name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Haven
	for rows.Next() {
		h, err := scanHaven(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Haven, error) {
	const q = `
SELECT ` + havenColumns + `
FROM havens
WHERE id = $1
`
	return scanHaven(r.db.QueryRow(ctx, q, id))
}

func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Haven, error) {
	const q = `
SELECT ` + havenColumns + `
FROM havens
WHERE id = $1
FOR UPDATE
`
	return scanHaven(tx.QueryRow(ctx, q, id))
}

func Insert(ctx context.Context, tx pgx.Tx, req UpsertRequest) (*Haven, error) {
	const q = `
INSERT INTO havens (name, view, description, price_per_night, capacity)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5)
RETURNING ` + havenColumns + `
`
	return scanHaven(tx.QueryRow(ctx, q, req.Name, req.View, req.Description, req.PricePerNight, req.Capacity))
}

func Update(ctx context.Context, tx pgx.Tx, id string, req UpsertRequest) (*Haven, error) {
	const q = `
UPDATE havens
SET name = $1,
    view = NULLIF($2, ''),
    description = NULLIF($3, ''),
    price_per_night = $4,
    capacity = $5,
    updated_at = NOW()
WHERE id = $6
RETURNING ` + havenColumns + `
`
	return scanHaven(tx.QueryRow(ctx, q, req.Name, req.View, req.Description, req.PricePerNight, req.Capacity, id))
}

func Delete(ctx context.Context, tx pgx.Tx, id string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM havens WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
