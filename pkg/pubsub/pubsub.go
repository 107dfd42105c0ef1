// Package pubsub defines the cross-context change-signal contract.
//
// A signal announces that a shared slot changed; it carries no payload.
// Receivers must re-read the canonical state rather than apply a diff,
// so delivery order relative to local writes never matters.
package pubsub

import "context"

// Signal identifies the slot that changed.
type Signal struct {
	Slot string
}

// Notifier sends change signals to other contexts sharing the same
// persistence backend. Delivery is best-effort.
type Notifier interface {
	Notify(ctx context.Context, sig Signal) error
}

// ListenerFunc handles an incoming change signal.
type ListenerFunc func(sig Signal)

// Subscriber delivers change signals originating in other contexts.
type Subscriber interface {
	// Listen registers fn for signals on the given slot and returns a
	// function that cancels the subscription.
	Listen(ctx context.Context, slot string, fn ListenerFunc) (func(), error)
}
