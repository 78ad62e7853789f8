package dto

import "github.com/shopspring/decimal"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// NewProductRequest carries a product submission. The category is referenced
// by name, never by raw id; resolution happens against a CategoryLookup.
// LookupVersion is the version of the lookup the client selected from — when
// non-zero it must match the current directory version or the submission is
// rejected as stale.
type NewProductRequest struct {
	Name          string          `json:"name"           validate:"required,max=200"`
	Quantity      int             `json:"quantity"       validate:"min=0"`
	Price         decimal.Decimal `json:"price"          validate:"min=0"`
	CategoryName  string          `json:"category_name"  validate:"required"`
	LookupVersion uint64          `json:"lookup_version"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ProductResponse struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	CategoryID uint            `json:"category_id"`
}

// ProductRow is a flattened join result for tabular display: all product
// fields plus the resolved category name, nested category discarded. View
// only, never persisted.
type ProductRow struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	CategoryName string          `json:"category_name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

// ── Stats ─────────────────────────────────────────────────────────────────────

type CategoryCount struct {
	CategoryName string `json:"category_name"`
	Products     int    `json:"products"`
}

type StatsResponse struct {
	Products   int             `json:"products"`
	TotalUnits int             `json:"total_units"`
	TotalValue decimal.Decimal `json:"total_value"`
	ByCategory []CategoryCount `json:"by_category"`
}
