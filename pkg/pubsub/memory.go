package pubsub

import (
	"context"
	"sync"
)

// Bus is an in-process Notifier/Subscriber pair. It stands in for a real
// cross-context transport in tests and single-process deployments.
type Bus struct {
	mu        sync.Mutex
	listeners map[string]map[int]ListenerFunc
	nextID    int
}

// NewBus creates an empty in-process signal bus.
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string]map[int]ListenerFunc),
	}
}

// Notify delivers the signal synchronously to every listener registered
// for the slot.
func (b *Bus) Notify(_ context.Context, sig Signal) error {
	b.mu.Lock()
	fns := make([]ListenerFunc, 0, len(b.listeners[sig.Slot]))
	for _, fn := range b.listeners[sig.Slot] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(sig)
	}
	return nil
}

// Listen registers fn for signals on the given slot.
func (b *Bus) Listen(_ context.Context, slot string, fn ListenerFunc) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listeners[slot] == nil {
		b.listeners[slot] = make(map[int]ListenerFunc)
	}
	id := b.nextID
	b.nextID++
	b.listeners[slot][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners[slot], id)
	}, nil
}
