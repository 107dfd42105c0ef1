package orders

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(d int) time.Time {
	return time.Date(2025, 1, d, 12, 0, 0, 0, time.UTC)
}

func amount(v int64) *int64 {
	return &v
}

func testOrders() []Order {
	return []Order{
		{ID: "KR1001", CustomerName: "Radha Sharma", CustomerPhone: "+919876543210", Status: StatusPending, Priority: PriorityHigh, TotalAmount: 2198, ShippingAddress: "Krishna Temple Road, Chennai", CreatedAt: at(15)},
		{ID: "KR1002", CustomerName: "Arjun Patel", CustomerPhone: "+919812345678", Status: StatusProcessing, Priority: PriorityNormal, TotalAmount: 899, ShippingAddress: "MG Road, Bengaluru", CreatedAt: at(14)},
		{ID: "KR1003", CustomerName: "Meera Iyer", CustomerPhone: "+919800112233", Status: StatusShipped, Priority: PriorityLow, TotalAmount: 4500, ShippingAddress: "Temple Street, Vrindavan", CreatedAt: at(12)},
		{ID: "KR1004", CustomerName: "Radha Krishnan", CustomerPhone: "+919811119999", Status: StatusDelivered, Priority: PriorityHigh, TotalAmount: 1599, ShippingAddress: "Lake View, Udaipur", CreatedAt: at(10)},
	}
}

func orderIDs(orders []Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func Test_Evaluate_Filters(t *testing.T) {
	testCases := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{
			name:     "empty filter keeps everything, newest first",
			filter:   Filter{},
			expected: []string{"KR1001", "KR1002", "KR1003", "KR1004"},
		},
		{
			name:     "single status",
			filter:   Filter{Statuses: []Status{StatusShipped}},
			expected: []string{"KR1003"},
		},
		{
			name:     "statuses OR together",
			filter:   Filter{Statuses: []Status{StatusPending, StatusDelivered}},
			expected: []string{"KR1001", "KR1004"},
		},
		{
			name:     "priority group",
			filter:   Filter{Priorities: []Priority{PriorityHigh}},
			expected: []string{"KR1001", "KR1004"},
		},
		{
			name:     "term matches customer name case-insensitively",
			filter:   Filter{Term: "radha"},
			expected: []string{"KR1001", "KR1004"},
		},
		{
			name:     "term matches phone digits",
			filter:   Filter{Term: "9800112233"},
			expected: []string{"KR1003"},
		},
		{
			name:     "term matches order id",
			filter:   Filter{Term: "kr1002"},
			expected: []string{"KR1002"},
		},
		{
			name:     "min amount is inclusive",
			filter:   Filter{MinAmount: amount(1599)},
			expected: []string{"KR1001", "KR1003", "KR1004"},
		},
		{
			name:     "max amount is inclusive",
			filter:   Filter{MaxAmount: amount(1599)},
			expected: []string{"KR1002", "KR1004"},
		},
		{
			name:     "amount range",
			filter:   Filter{MinAmount: amount(1000), MaxAmount: amount(3000)},
			expected: []string{"KR1001", "KR1004"},
		},
		{
			name:     "date bounds are inclusive",
			filter:   Filter{From: at(12), To: at(14)},
			expected: []string{"KR1002", "KR1003"},
		},
		{
			name:     "location matches shipping address",
			filter:   Filter{Location: "temple"},
			expected: []string{"KR1001", "KR1003"},
		},
		{
			name: "groups AND together",
			filter: Filter{
				Statuses:   []Status{StatusPending, StatusProcessing},
				Priorities: []Priority{PriorityHigh},
			},
			expected: []string{"KR1001"},
		},
		{
			name:     "no match is empty, not an error",
			filter:   Filter{Term: "nobody"},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			result, err := Evaluate(testOrders(), tc.filter)
			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, orderIDs(result))
		})
	}
}

func Test_Evaluate_Sorting(t *testing.T) {
	testCases := []struct {
		name     string
		sortBy   SortKey
		expected []string
	}{
		{name: "amount descending", sortBy: SortAmountHigh, expected: []string{"KR1003", "KR1001", "KR1004", "KR1002"}},
		{name: "amount ascending", sortBy: SortAmountLow, expected: []string{"KR1002", "KR1004", "KR1001", "KR1003"}},
		{name: "customer name", sortBy: SortCustomer, expected: []string{"KR1002", "KR1003", "KR1004", "KR1001"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			result, err := Evaluate(testOrders(), Filter{SortBy: tc.sortBy})
			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, orderIDs(result))
		})
	}
}

func Test_Evaluate_SortIsStable(t *testing.T) {
	// given: identical amounts
	orders := []Order{
		{ID: "a", TotalAmount: 100, CreatedAt: at(1)},
		{ID: "b", TotalAmount: 100, CreatedAt: at(1)},
		{ID: "c", TotalAmount: 100, CreatedAt: at(1)},
	}

	// when
	result, err := Evaluate(orders, Filter{SortBy: SortAmountHigh})

	// then
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, orderIDs(result))
}

func Test_Evaluate_Idempotent(t *testing.T) {
	// given
	orders := testOrders()
	filter := Filter{Priorities: []Priority{PriorityHigh}, SortBy: SortAmountLow}

	// when
	first, err := Evaluate(orders, filter)
	require.NoError(t, err)
	second, err := Evaluate(orders, filter)
	require.NoError(t, err)

	// then
	assert.Equal(t, first, second)
}

func Test_Evaluate_InvalidFilter(t *testing.T) {
	testCases := []struct {
		name   string
		filter Filter
	}{
		{name: "unknown status", filter: Filter{Statuses: []Status{"lost"}}},
		{name: "unknown priority", filter: Filter{Priorities: []Priority{"urgent"}}},
		{name: "unknown sort key", filter: Filter{SortBy: "oldest"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			result, err := Evaluate(testOrders(), tc.filter)
			// then
			assert.ErrorIs(t, err, ErrInvalidQuery)
			assert.Nil(t, result)
		})
	}
}

func Test_NewOrderNumber(t *testing.T) {
	// when
	first := NewOrderNumber()
	second := NewOrderNumber()

	// then
	assert.True(t, strings.HasPrefix(first, "KR"))
	assert.Len(t, first, 10)
	assert.NotEqual(t, first, second)
}
