// Package cart implements the storefront shopping cart: a persisted,
// broadcast-backed list of line items merged by product and variant.
package cart

import "time"

// LineItem is one cart row. Two line items occupy the same cart slot
// iff ProductID and VariantKey are equal.
type LineItem struct {
	ProductID  string    `json:"product_id"`
	VariantKey string    `json:"variant_key"`
	UnitPrice  int64     `json:"unit_price"`
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}

// Snapshot is the full ordered list of line items at a point in time.
// Snapshots handed to callers and listeners are copies; mutating one
// never affects the store.
type Snapshot struct {
	Items []LineItem
}

// Totals is the derived summary of a snapshot.
type Totals struct {
	ItemCount int
	Subtotal  int64
}

// Totals sums quantities and line prices over the snapshot.
func (s Snapshot) Totals() Totals {
	var t Totals
	for _, item := range s.Items {
		t.ItemCount += item.Quantity
		t.Subtotal += item.UnitPrice * int64(item.Quantity)
	}
	return t
}
