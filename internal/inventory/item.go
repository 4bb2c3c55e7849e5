package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type StockStatus string

const (
	StockStatusIn  StockStatus = "In Stock"
	StockStatusLow StockStatus = "Low Stock"
	StockStatusOut StockStatus = "Out of Stock"
)

// LowStockThreshold is the stock level at or below which an item counts as low.
const LowStockThreshold = 10

type Item struct {
	ID           string      `json:"item_id"`
	Name         string      `json:"item_name"`
	Category     string      `json:"category"`
	CurrentStock int         `json:"current_stock"`
	MinStock     int         `json:"min_stock"`
	Unit         string      `json:"unit"`
	Price        *string     `json:"price,omitempty"`
	Status       StockStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// DeriveStockStatus is the only source of truth for item status; any value the
// client supplies is ignored.
func DeriveStockStatus(currentStock int) StockStatus {
	switch {
	case currentStock <= 0:
		return StockStatusOut
	case currentStock <= LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

var allowedCategories = map[string]bool{
	"linens":      true,
	"toiletries":  true,
	"kitchen":     true,
	"cleaning":    true,
	"maintenance": true,
	"other":       true,
}

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type CreateRequest struct {
	Name         string  `json:"item_name"`
	Category     string  `json:"category"`
	CurrentStock int     `json:"current_stock"`
	MinStock     int     `json:"min_stock"`
	Unit         string  `json:"unit"`
	Price        *string `json:"price"`
}

// Validate normalizes and checks a creation request. Validation is local and
// fails fast before anything is written.
func (r *CreateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return ValidationError{Code: "ITEM_NAME_REQUIRED", Message: "item name is required"}
	}

	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	if !allowedCategories[r.Category] {
		return ValidationError{Code: "CATEGORY_INVALID", Message: "unknown category"}
	}

	if r.CurrentStock < 0 {
		return ValidationError{Code: "STOCK_INVALID", Message: "current stock must be a non-negative number"}
	}
	if r.MinStock < 0 {
		return ValidationError{Code: "MIN_STOCK_INVALID", Message: "min stock must be a non-negative number"}
	}

	r.Unit = strings.TrimSpace(r.Unit)
	if r.Unit == "" {
		return ValidationError{Code: "UNIT_REQUIRED", Message: "unit type is required"}
	}

	if r.Price != nil {
		p := strings.TrimSpace(*r.Price)
		if p == "" {
			r.Price = nil
		} else {
			d, err := decimal.NewFromString(p)
			if err != nil || d.IsNegative() {
				return ValidationError{Code: "PRICE_INVALID", Message: "price must be a non-negative number"}
			}
			normalized := d.String()
			r.Price = &normalized
		}
	}

	return nil
}
