// Package catalog implements the product query pipeline: category and
// text filtering, predicate groups, deterministic sorting, and
// typeahead suggestions.
package catalog

import "time"

// Variant is one selectable configuration of a product.
type Variant struct {
	ID    string `json:"id"`
	Size  string `json:"size"`
	Color string `json:"color"`
	Price int64  `json:"price"`
}

// Product is the read-only input to the query engine.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"original_price,omitempty"` // zero when never discounted
	Status        Status    `json:"status,omitempty"`
	InStock       bool      `json:"in_stock"`
	StockCount    int32     `json:"stock_count"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
	Variants      []Variant `json:"variants,omitempty"`
}

// Status is the admin-facing lifecycle state of a product.
type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOutOfStock Status = "out_of_stock"
)
