package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidQuery is returned when a filter names an unknown status,
// priority or sort key. The engine fails fast so callers can fall back
// to defaults.
var ErrInvalidQuery = errors.New("invalid order query")

// SortKey selects the ordering of filtered orders.
type SortKey string

const (
	SortNewest     SortKey = "newest" // default
	SortAmountHigh SortKey = "amount-high"
	SortAmountLow  SortKey = "amount-low"
	SortCustomer   SortKey = "customer"
)

// Filter is a declarative descriptor over an order collection. Each
// group's options OR together; the groups AND together, matching the
// catalog engine's combination rule.
//
// Amount bounds are inclusive; a nil bound is unbounded. Date bounds
// are inclusive; a zero time is unbounded. Term matches customer name,
// phone and order ID. Location matches the shipping address.
type Filter struct {
	Term       string     `json:"term"`
	Statuses   []Status   `json:"statuses"   validate:"dive,oneof=pending confirmed processing shipped delivered cancelled refunded"`
	Priorities []Priority `json:"priorities" validate:"dive,oneof=high normal low"`
	MinAmount  *int64     `json:"min_amount"`
	MaxAmount  *int64     `json:"max_amount"`
	From       time.Time  `json:"from"`
	To         time.Time  `json:"to"`
	Location   string     `json:"location"`
	SortBy     SortKey    `json:"sort_by"    validate:"omitempty,oneof=newest amount-high amount-low customer"`
}

var validate = validator.New()

// Validate rejects filters referencing unknown enumeration values.
func (f Filter) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return nil
}
