package cart

import "sync"

// Listener receives the snapshot resulting from a cart mutation.
type Listener func(Snapshot)

// Broadcaster fans cart-change notifications out to listeners mounted
// in the same context. Delivery is synchronous: a listener sees the
// update before the mutating call returns. The notification is a
// signal to re-read, not a diff to apply.
type Broadcaster struct {
	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int
}

// NewBroadcaster creates a Broadcaster with no listeners.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers the listener and returns a function that removes
// it. Unsubscribing twice is harmless.
func (b *Broadcaster) Subscribe(l Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.listeners[id] = l

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// Publish delivers the snapshot to every registered listener.
func (b *Broadcaster) Publish(s Snapshot) {
	b.mu.Lock()
	fns := make([]Listener, 0, len(b.listeners))
	for _, l := range b.listeners {
		fns = append(fns, l)
	}
	b.mu.Unlock()

	for _, l := range fns {
		l(s)
	}
}
