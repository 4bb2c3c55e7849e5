package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/CaptainChua/Staycation/pkg/config"
	"github.com/CaptainChua/Staycation/pkg/db"
)

// Seeds a handful of havens and pending bookings for local development.
// Safe to re-run: havens upsert by name, bookings get fresh display ids.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer pool.Close()

	havenIDs, err := seedHavens(ctx, pool)
	if err != nil {
		log.Fatalf("seed havens: %v", err)
	}
	if err := seedBookings(ctx, pool, havenIDs); err != nil {
		log.Fatalf("seed bookings: %v", err)
	}

	fmt.Println("seed complete")
}

func seedHavens(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	havens := []struct {
		name     string
		view     string
		price    string
		capacity int
	}{
		{"Haven A", "City View", "4500.00", 4},
		{"Haven B", "Ocean View", "5200.00", 6},
		{"Haven C", "Pool View", "3900.00", 4},
		{"Haven D", "Garden View", "3500.00", 2},
	}

	const q = `
INSERT INTO havens (name, view, price_per_night, capacity)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE SET
  view = EXCLUDED.view,
  price_per_night = EXCLUDED.price_per_night,
  capacity = EXCLUDED.capacity,
  updated_at = NOW()
RETURNING id
`
	var ids []string
	for _, h := range havens {
		var id string
		if err := pool.QueryRow(ctx, q, h.name, h.view, h.price, h.capacity).Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedBookings(ctx context.Context, pool *pgxpool.Pool, havenIDs []string) error {
	guests := []struct {
		first, last, email, phone string
		nights                    int
		rate                      string
	}{
		{"Maria", "Santos", "maria.santos@example.com", "+63-917-555-0101", 2, "4500.00"},
		{"Jose", "Reyes", "jose.reyes@example.com", "+63-917-555-0102", 3, "5200.00"},
		{"Ana", "Cruz", "ana.cruz@example.com", "+63-917-555-0103", 1, "3900.00"},
	}

	const q = `
INSERT INTO bookings (
  display_id, haven_id,
  guest_first_name, guest_last_name, guest_email, guest_phone,
  check_in_date, check_in_time, check_out_date, check_out_time,
  adults, children, infants,
  total_amount, down_payment, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, '14:00', $8, '12:00', $9, $10, 0, $11, $12, 'pending')
`
	for i, g := range guests {
		rate := decimal.RequireFromString(g.rate)
		total := rate.Mul(decimal.NewFromInt(int64(g.nights)))
		down := total.Mul(decimal.RequireFromString("0.3")).Round(2)

		displayID := "BK-" + strings.ToUpper(uuid.NewString()[:8])
		checkIn := time.Now().AddDate(0, 0, 7+i)
		checkOut := checkIn.AddDate(0, 0, g.nights)

		if _, err := pool.Exec(ctx, q,
			displayID, havenIDs[i%len(havenIDs)],
			g.first, g.last, g.email, g.phone,
			checkIn, checkOut,
			2, 1,
			total.StringFixed(2), down.StringFixed(2),
		); err != nil {
			return err
		}
	}
	return nil
}
