package orders

import (
	"sort"
	"strings"
)

// Evaluate runs the filter against the collection and returns a freshly
// built result list. The input slice is never mutated; the sort is
// stable, so orders with equal sort keys keep their relative input
// order. No matches is an empty list, not an error.
func Evaluate(orders []Order, filter Filter) ([]Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, filter) {
			out = append(out, o)
		}
	}
	sortOrders(out, filter.SortBy)
	return out, nil
}

func matches(o Order, f Filter) bool {
	if len(f.Statuses) > 0 && !hasStatus(o.Status, f.Statuses) {
		return false
	}
	if len(f.Priorities) > 0 && !hasPriority(o.Priority, f.Priorities) {
		return false
	}
	if term := strings.TrimSpace(f.Term); term != "" && !textMatches(o, term) {
		return false
	}
	if f.MinAmount != nil && o.TotalAmount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && o.TotalAmount > *f.MaxAmount {
		return false
	}
	if !f.From.IsZero() && o.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && o.CreatedAt.After(f.To) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(o.ShippingAddress), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

// textMatches checks the free-text term against customer name (case
// insensitive), raw phone digits and order ID (case insensitive).
func textMatches(o Order, term string) bool {
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(o.CustomerName), lower) ||
		strings.Contains(o.CustomerPhone, term) ||
		strings.Contains(strings.ToLower(o.ID), lower)
}

func hasStatus(status Status, statuses []Status) bool {
	for _, s := range statuses {
		if status == s {
			return true
		}
	}
	return false
}

func hasPriority(priority Priority, priorities []Priority) bool {
	for _, p := range priorities {
		if priority == p {
			return true
		}
	}
	return false
}

func sortOrders(orders []Order, key SortKey) {
	switch key {
	case SortAmountHigh:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].TotalAmount > orders[j].TotalAmount
		})
	case SortAmountLow:
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].TotalAmount < orders[j].TotalAmount
		})
	case SortCustomer:
		sort.SliceStable(orders, func(i, j int) bool {
			return strings.ToLower(orders[i].CustomerName) < strings.ToLower(orders[j].CustomerName)
		})
	default: // SortNewest
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		})
	}
}
