package analytics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Revenue counts every booking that was not rejected or cancelled; a pending
// booking's total is still expected money.
const revenueStatuses = `('pending', 'approved', 'confirmed', 'checked-in', 'completed')`

type Summary struct {
	TotalRevenue   string         `json:"total_revenue"`
	TotalBookings  int            `json:"total_bookings"`
	RevenueByHaven []HavenRevenue `json:"revenue_by_haven"`
	MonthlyRevenue []MonthRevenue `json:"monthly_revenue"`
}

type HavenRevenue struct {
	HavenID    string `json:"haven_id"`
	Name       string `json:"name"`
	Revenue    string `json:"revenue"`
	Bookings   int    `json:"bookings"`
	AvgRevenue string `json:"avg_revenue_per_booking"`
}

type MonthRevenue struct {
	Month   string `json:"month"`
	Revenue string `json:"revenue"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Summary(ctx context.Context) (*Summary, error) {
	s := &Summary{
		RevenueByHaven: []HavenRevenue{},
		MonthlyRevenue: []MonthRevenue{},
	}

	const qTotals = `
SELECT COALESCE(SUM(total_amount), 0)::text, COUNT(*)
FROM bookings
WHERE status IN ` + revenueStatuses + `
`
	if err := r.db.QueryRow(ctx, qTotals).Scan(&s.TotalRevenue, &s.TotalBookings); err != nil {
		return nil, err
	}

	const qByHaven = `
SELECT h.id, h.name,
       COALESCE(SUM(b.total_amount), 0)::text AS revenue,
       COUNT(b.id) AS bookings
FROM havens h
LEFT JOIN bookings b ON b.haven_id = h.id AND b.status IN ` + revenueStatuses + `
GROUP BY h.id, h.name
ORDER BY COALESCE(SUM(b.total_amount), 0) DESC
`
	rows, err := r.db.Query(ctx, qByHaven)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var hr HavenRevenue
		if err := rows.Scan(&hr.HavenID, &hr.Name, &hr.Revenue, &hr.Bookings); err != nil {
			return nil, err
		}
		hr.AvgRevenue = AveragePerBooking(hr.Revenue, hr.Bookings)
		s.RevenueByHaven = append(s.RevenueByHaven, hr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const qMonthly = `
SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
       COALESCE(SUM(total_amount), 0)::text AS revenue
FROM bookings
WHERE status IN ` + revenueStatuses + `
GROUP BY 1
ORDER BY 1 ASC
`
	mrows, err := r.db.Query(ctx, qMonthly)
	if err != nil {
		return nil, err
	}
	defer mrows.Close()
	for mrows.Next() {
		var mr MonthRevenue
		if err := mrows.Scan(&mr.Month, &mr.Revenue); err != nil {
			return nil, err
		}
		s.MonthlyRevenue = append(s.MonthlyRevenue, mr)
	}
	return s, mrows.Err()
}

// AveragePerBooking computes revenue/bookings rounded to centavos.
// Zero bookings yields "0" rather than a division error.
func AveragePerBooking(revenue string, bookings int) string {
	if bookings <= 0 {
		return "0"
	}
	rev, err := decimal.NewFromString(revenue)
	if err != nil {
		return "0"
	}
	return rev.Div(decimal.NewFromInt(int64(bookings))).Round(2).String()
}
