package booking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `
b.id, b.display_id, b.haven_id, COALESCE(h.name, ''),
b.guest_first_name, b.guest_last_name, b.guest_email, b.guest_phone,
b.check_in_date, b.check_in_time, b.check_out_date, b.check_out_time,
b.adults, b.children, b.infants,
b.total_amount::text, b.down_payment::text, (b.total_amount - b.down_payment)::text,
b.status, COALESCE(b.rejection_reason, ''), b.created_at, b.updated_at`

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.DisplayID, &b.HavenID, &b.HavenName,
		&b.GuestFirstName, &b.GuestLastName, &b.GuestEmail, &b.GuestPhone,
		&b.CheckInDate, &b.CheckInTime, &b.CheckOutDate, &b.CheckOutTime,
		&b.Adults, &b.Children, &b.Infants,
		&b.TotalAmount, &b.DownPayment, &b.RemainingBalance,
		&b.Status, &b.RejectionReason, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// List returns bookings newest-first, optionally filtered by exact status.
// An empty filter (or "all" at the handler layer) means unfiltered.
func (r *Repository) List(ctx context.Context, filter Status) ([]Booking, error) {
	q := `
SELECT ` + bookingColumns + `
FROM bookings b
LEFT JOIN havens h ON h.id = b.haven_id
`
	args := []any{}
	if filter != "" {
		q += `WHERE b.status = $1
`
		args = append(args, string(filter))
	}
	q += `ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings b
LEFT JOIN havens h ON h.id = b.haven_id
WHERE b.id = $1
`
	return scanBooking(r.db.QueryRow(ctx, q, id))
}

// GetForUpdate row-locks the booking for the duration of the transaction so
// concurrent transition requests against the same id are serialized.
func GetForUpdate(ctx context.Context, tx pgx.Tx, id string) (*Booking, error) {
	const q = `
SELECT ` + bookingColumns + `
FROM bookings b
LEFT JOIN havens h ON h.id = b.haven_id
WHERE b.id = $1
FOR UPDATE OF b
`
	return scanBooking(tx.QueryRow(ctx, q, id))
}

// UpdateStatus persists the new status. The rejection reason is set only when
// rejecting and cleared otherwise, so a stale reason never outlives its status.
func UpdateStatus(ctx context.Context, tx pgx.Tx, id string, next Status, reason string) error {
	const q = `
UPDATE bookings
SET status = $1,
    rejection_reason = NULLIF($2, ''),
    updated_at = NOW()
WHERE id = $3
`
	var storedReason string
	if next == StatusRejected {
		storedReason = reason
	}
	_, err := tx.Exec(ctx, q, string(next), storedReason, id)
	return err
}

func Delete(ctx context.Context, tx pgx.Tx, id string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
