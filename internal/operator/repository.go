package operator

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Operator, error) {
	const q = `
SELECT id, email, COALESCE(name, ''), COALESCE(role, 'staff'), created_at
FROM operators
WHERE email = $1
`
	op := &Operator{}
	if err := r.db.QueryRow(ctx, q, email).Scan(
		&op.ID, &op.Email, &op.Name, &op.Role, &op.CreatedAt,
	); err != nil {
		return nil, err
	}
	return op, nil
}

// Upsert registers an operator on first sign-in. Role defaults to staff;
// promotion is a DB-side concern.
func (r *Repository) Upsert(ctx context.Context, email, name string) (*Operator, error) {
	const q = `
INSERT INTO operators (email, name, role)
VALUES ($1, $2, 'staff')
ON CONFLICT (email) DO UPDATE SET
  name = COALESCE(NULLIF(EXCLUDED.name, ''), operators.name)
RETURNING id, email, COALESCE(name, ''), COALESCE(role, 'staff'), created_at
`
	op := &Operator{}
	if err := r.db.QueryRow(ctx, q, email, name).Scan(
		&op.ID, &op.Email, &op.Name, &op.Role, &op.CreatedAt,
	); err != nil {
		return nil, err
	}
	return op, nil
}
