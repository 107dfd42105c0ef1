// Package nats adapts the cross-context signal contract to a NATS
// connection shared by storefront contexts.
package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// NewClient connects to the NATS server at url.
func NewClient(url string, timeout time.Duration) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Timeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}
