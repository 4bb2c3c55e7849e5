package inventory

import (
	"errors"
	"testing"
)

func TestDeriveStockStatus(t *testing.T) {
	cases := []struct {
		stock int
		want  StockStatus
	}{
		{0, StockStatusOut},
		{1, StockStatusLow},
		{10, StockStatusLow},
		{11, StockStatusIn},
		{500, StockStatusIn},
	}
	for _, tc := range cases {
		if got := DeriveStockStatus(tc.stock); got != tc.want {
			t.Fatalf("stock=%d: expected %q, got %q", tc.stock, tc.want, got)
		}
	}
}

func validReq() CreateRequest {
	return CreateRequest{
		Name:         "Bath Towels",
		Category:     "linens",
		CurrentStock: 24,
		MinStock:     5,
		Unit:         "pcs",
	}
}

func TestValidate_OK(t *testing.T) {
	req := validReq()
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateRequest)
		code   string
	}{
		{"empty name", func(r *CreateRequest) { r.Name = "  " }, "ITEM_NAME_REQUIRED"},
		{"bad category", func(r *CreateRequest) { r.Category = "snacks" }, "CATEGORY_INVALID"},
		{"negative stock", func(r *CreateRequest) { r.CurrentStock = -1 }, "STOCK_INVALID"},
		{"negative min stock", func(r *CreateRequest) { r.MinStock = -3 }, "MIN_STOCK_INVALID"},
		{"empty unit", func(r *CreateRequest) { r.Unit = "" }, "UNIT_REQUIRED"},
		{"bad price", func(r *CreateRequest) { p := "abc"; r.Price = &p }, "PRICE_INVALID"},
		{"negative price", func(r *CreateRequest) { p := "-5.00"; r.Price = &p }, "PRICE_INVALID"},
	}
	for _, tc := range cases {
		req := validReq()
		tc.mutate(&req)
		err := req.Validate()
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
		if verr.Code != tc.code {
			t.Fatalf("%s: expected code %s, got %s", tc.name, tc.code, verr.Code)
		}
	}
}

func TestValidate_NormalizesCategoryAndPrice(t *testing.T) {
	req := validReq()
	req.Category = "  Linens "
	p := " 120.50 "
	req.Price = &p

	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Category != "linens" {
		t.Fatalf("category not normalized: %q", req.Category)
	}
	if req.Price == nil || *req.Price != "120.5" {
		t.Fatalf("price not normalized: %v", req.Price)
	}
}

func TestValidate_EmptyPriceTreatedAsNull(t *testing.T) {
	req := validReq()
	p := "  "
	req.Price = &p
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Price != nil {
		t.Fatalf("expected nil price, got %v", *req.Price)
	}
}
