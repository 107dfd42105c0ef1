// Package orders implements the order query pipeline behind the order
// management dashboard.
package orders

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the fulfillment state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// Priority is the handling urgency of an order.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Item is one purchased line within an order.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// Order is the read-only input to the query engine.
type Order struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	Status          Status    `json:"status"`
	Priority        Priority  `json:"priority"`
	TotalAmount     int64     `json:"total_amount"`
	ShippingAddress string    `json:"shipping_address"`
	CreatedAt       time.Time `json:"created_at"`
	Items           []Item    `json:"items,omitempty"`
}

// NewOrderNumber fabricates a customer-facing order reference in the
// storefront's KR-prefixed format.
func NewOrderNumber() string {
	return "KR" + strings.ToUpper(uuid.NewString()[:8])
}
