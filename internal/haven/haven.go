package haven

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Haven is a rentable unit/room listed in the property inventory.
type Haven struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	View          string    `json:"view,omitempty"`
	Description   string    `json:"description,omitempty"`
	PricePerNight string    `json:"price_per_night"`
	Capacity      int       `json:"capacity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
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

type UpsertRequest struct {
	Name          string `json:"name"`
	View          string `json:"view"`
	Description   string `json:"description"`
	PricePerNight string `json:"price_per_night"`
	Capacity      int    `json:"capacity"`
}

func (r *UpsertRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return ValidationError{Code: "HAVEN_NAME_REQUIRED", Message: "haven name is required"}
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.PricePerNight))
	if err != nil || price.IsNegative() {
		return ValidationError{Code: "PRICE_INVALID", Message: "price per night must be a non-negative number"}
	}
	r.PricePerNight = price.String()

	if r.Capacity <= 0 {
		return ValidationError{Code: "CAPACITY_INVALID", Message: "capacity must be a positive number"}
	}

	r.View = strings.TrimSpace(r.View)
	r.Description = strings.TrimSpace(r.Description)
	return nil
}
