package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidQuery is returned when a query names an unknown sort key,
// price band or availability class. The engine fails fast so callers
// can fall back to defaults instead of silently misfiltering.
var ErrInvalidQuery = errors.New("invalid query")

// CategoryAll is the wildcard category: no category filtering.
const CategoryAll = "all"

// SortKey selects the ordering of query results.
type SortKey string

const (
	SortNewest    SortKey = "newest" // default
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	SortRating    SortKey = "rating"
)

// Availability classes partition products by stock count.
type Availability string

const (
	AvailabilityInStock    Availability = "in-stock"     // stock count > 0
	AvailabilityOutOfStock Availability = "out-of-stock" // stock count == 0
	AvailabilityLowStock   Availability = "low-stock"    // 0 < stock count < 10
)

// lowStockThreshold is the exclusive upper bound of the low-stock class.
const lowStockThreshold = 10

// priceBand is a half-open price interval; max < 0 means unbounded.
type priceBand struct {
	min, max int64
}

// priceBands are the storefront's filter panel bands: inclusive lower
// bound, exclusive upper bound, last band unbounded above.
var priceBands = map[string]priceBand{
	"0-500":     {min: 0, max: 500},
	"500-1000":  {min: 500, max: 1000},
	"1000-2000": {min: 1000, max: 2000},
	"2000-5000": {min: 2000, max: 5000},
	"5000+":     {min: 5000, max: -1},
}

// Query is a declarative, side-effect-free descriptor. Re-evaluating
// the same query against the same collection is idempotent.
//
// Within PriceBands, Availability and Statuses a product passes if it
// matches any selected option; across the groups every non-empty group
// must pass.
type Query struct {
	Term         string         `json:"term"`
	Category     string         `json:"category"`
	PriceBands   []string       `json:"price_bands"  validate:"dive,oneof=0-500 500-1000 1000-2000 2000-5000 5000+"`
	Availability []Availability `json:"availability" validate:"dive,oneof=in-stock out-of-stock low-stock"`
	Statuses     []Status       `json:"statuses"     validate:"dive,oneof=active inactive out_of_stock"`
	SortBy       SortKey        `json:"sort_by"      validate:"omitempty,oneof=newest price-low price-high name rating"`
}

var validate = validator.New()

// Validate rejects queries referencing unknown enumeration values.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return nil
}
