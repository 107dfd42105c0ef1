package nats

import (
	"context"
	"fmt"

	"github.com/kbagha/storefront/pkg/pubsub"
	"github.com/nats-io/nats.go"
)

const subjectPrefix = "storefront.slot."

// SignalBus implements pubsub.Notifier and pubsub.Subscriber over core
// NATS. Signals are fire-and-forget, matching the best-effort contract.
type SignalBus struct {
	nc *nats.Conn
}

// NewSignalBus creates a SignalBus on an established connection.
// The caller owns the connection and its lifecycle.
func NewSignalBus(nc *nats.Conn) *SignalBus {
	return &SignalBus{nc: nc}
}

// Notify publishes a payload-free change signal for the slot.
func (b *SignalBus) Notify(_ context.Context, sig Signal) error {
	if err := b.nc.Publish(subject(sig.Slot), nil); err != nil {
		return fmt.Errorf("failed to publish change signal for %s: %w", sig.Slot, err)
	}
	return nil
}

// Listen subscribes fn to change signals for the slot.
func (b *SignalBus) Listen(_ context.Context, slot string, fn pubsub.ListenerFunc) (func(), error) {
	sub, err := b.nc.Subscribe(subject(slot), func(_ *nats.Msg) {
		fn(pubsub.Signal{Slot: slot})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to change signals for %s: %w", slot, err)
	}
	return func() {
		_ = sub.Unsubscribe()
	}, nil
}

// Signal aliases the contract type so callers of this package do not
// need a second import for the common case.
type Signal = pubsub.Signal

func subject(slot string) string {
	return subjectPrefix + slot
}
