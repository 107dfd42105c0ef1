package catalog

import (
	"sort"
	"strings"
)

// Evaluate runs the query against the collection and returns a freshly
// built result list. The input slice is never mutated and the output
// ordering is deterministic: the sort is stable, so products with equal
// sort keys keep their relative input order.
//
// Pipeline order: category filter, text filter, predicate groups, sort.
// An all-default query is the identity transform except for the sort.
func Evaluate(products []Product, query Query) ([]Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, query) {
			out = append(out, p)
		}
	}
	sortProducts(out, query.SortBy)
	return out, nil
}

// matches applies the filter stages; predicate groups OR within and AND
// across, per the storefront filter panel.
func matches(p Product, q Query) bool {
	if q.Category != "" && q.Category != CategoryAll && !strings.EqualFold(p.Category, q.Category) {
		return false
	}
	if term := strings.TrimSpace(q.Term); term != "" && !textMatches(p, strings.ToLower(term)) {
		return false
	}
	if len(q.PriceBands) > 0 && !inAnyBand(p.Price, q.PriceBands) {
		return false
	}
	if len(q.Availability) > 0 && !inAnyClass(p.StockCount, q.Availability) {
		return false
	}
	if len(q.Statuses) > 0 && !hasStatus(p.Status, q.Statuses) {
		return false
	}
	return true
}

// textMatches reports whether the lowercased term is a substring of the
// product's name, description or category.
func textMatches(p Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

func inAnyBand(price int64, bands []string) bool {
	for _, name := range bands {
		band, ok := priceBands[name]
		if !ok {
			continue // unknown names are rejected by Validate
		}
		if price >= band.min && (band.max < 0 || price < band.max) {
			return true
		}
	}
	return false
}

func inAnyClass(stock int32, classes []Availability) bool {
	for _, class := range classes {
		switch class {
		case AvailabilityInStock:
			if stock > 0 {
				return true
			}
		case AvailabilityOutOfStock:
			if stock == 0 {
				return true
			}
		case AvailabilityLowStock:
			if stock > 0 && stock < lowStockThreshold {
				return true
			}
		}
	}
	return false
}

func hasStatus(status Status, statuses []Status) bool {
	for _, s := range statuses {
		if status == s {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default: // SortNewest
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}
