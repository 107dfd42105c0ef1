package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kbagha/storefront/pkg/kvstore"
	"github.com/kbagha/storefront/pkg/pubsub"
)

// ErrPersistenceWrite is returned when the backend rejects a write. The
// in-memory state keeps the attempted mutation; retrying or rolling
// back is the caller's decision.
var ErrPersistenceWrite = errors.New("cart persistence write failed")

// DefaultSlot is the persistence slot the storefront ships with.
const DefaultSlot = "krishna-cart"

// Store is the single source of truth for the cart's line items. Every
// mutation persists synchronously to the backend, then notifies local
// listeners exactly once with the resulting snapshot and signals other
// contexts through the optional notifier.
type Store struct {
	mu       sync.Mutex
	backend  kvstore.Store
	notifier pubsub.Notifier
	bc       *Broadcaster
	slot     string
	logger   *slog.Logger
	now      func() time.Time

	items  []LineItem
	loaded bool
}

// NewStore creates a Store persisting to the given slot of the backend.
// notifier may be nil when no cross-context propagation is configured.
func NewStore(backend kvstore.Store, bc *Broadcaster, notifier pubsub.Notifier, slot string, logger *slog.Logger) *Store {
	if slot == "" {
		slot = DefaultSlot
	}
	return &Store{
		backend:  backend,
		notifier: notifier,
		bc:       bc,
		slot:     slot,
		logger:   logger,
		now:      time.Now,
	}
}

// Broadcaster returns the local notification channel of this store.
func (s *Store) Broadcaster() *Broadcaster {
	return s.bc
}

// Load returns the persisted snapshot. An absent or malformed persisted
// value yields an empty snapshot; the cart is not mission-critical, so
// a corrupt value is discarded rather than surfaced.
func (s *Store) Load(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLoaded(ctx)
	return s.snapshot()
}

// Add merges quantity into the line matching (productID, variantKey) or
// appends a new line stamped with the current time. unitPrice is
// snapshotted at add time and never re-read from the catalog. A
// non-positive quantity falls back to the default of one.
func (s *Store) Add(ctx context.Context, productID, variantKey string, unitPrice int64, quantity int) (Snapshot, error) {
	if quantity < 1 {
		quantity = 1
	}
	return s.mutate(ctx, func() {
		if i := s.indexOf(productID, variantKey); i >= 0 {
			s.items[i].Quantity += quantity
			return
		}
		s.items = append(s.items, LineItem{
			ProductID:  productID,
			VariantKey: variantKey,
			UnitPrice:  unitPrice,
			Quantity:   quantity,
			AddedAt:    s.now(),
		})
	})
}

// SetQuantity sets the absolute quantity of the matching line. A
// quantity of zero or less removes the line; that is not an error.
// Setting the quantity of an absent line leaves the cart unchanged.
func (s *Store) SetQuantity(ctx context.Context, productID, variantKey string, quantity int) (Snapshot, error) {
	return s.mutate(ctx, func() {
		i := s.indexOf(productID, variantKey)
		if i < 0 {
			return
		}
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
		s.items[i].Quantity = quantity
	})
}

// Remove deletes the matching line. Removing an absent line is a no-op.
func (s *Store) Remove(ctx context.Context, productID, variantKey string) (Snapshot, error) {
	return s.mutate(ctx, func() {
		if i := s.indexOf(productID, variantKey); i >= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
	})
}

// Clear empties the cart and persists the empty list.
func (s *Store) Clear(ctx context.Context) (Snapshot, error) {
	return s.mutate(ctx, func() {
		s.items = nil
	})
}

// Totals derives the item count and subtotal of the current snapshot.
func (s *Store) Totals(ctx context.Context) Totals {
	return s.Load(ctx).Totals()
}

// Reload discards the in-memory state, re-reads the persisted snapshot
// and publishes it locally. Called when another context signals that
// the slot changed.
func (s *Store) Reload(ctx context.Context) Snapshot {
	s.mu.Lock()
	s.loaded = false
	s.items = nil
	s.ensureLoaded(ctx)
	snap := s.snapshot()
	s.mu.Unlock()

	s.bc.Publish(snap)
	return snap
}

// mutate applies fn under the lock, persists the result, and on success
// publishes the snapshot exactly once after the lock is released.
func (s *Store) mutate(ctx context.Context, fn func()) (Snapshot, error) {
	s.mu.Lock()
	s.ensureLoaded(ctx)
	fn()
	snap := s.snapshot()
	err := s.persist(ctx, snap)
	s.mu.Unlock()

	if err != nil {
		return snap, err
	}

	s.bc.Publish(snap)
	s.signalOthers(ctx)
	return snap, nil
}

// ensureLoaded lazily reads the persisted slot. Callers must hold mu.
func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	raw, err := s.backend.Read(ctx, s.slot)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to read cart slot, starting empty", "slot", s.slot, "error", err)
		}
		return
	}
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.WarnContext(ctx, "discarding malformed cart slot", "slot", s.slot, "error", err)
		return
	}
	s.items = items
}

// persist writes the snapshot to the backend. On failure the mutation
// stays in memory and nothing is published: listeners re-read the
// persisted state, which did not change. Callers must hold mu.
func (s *Store) persist(ctx context.Context, snap Snapshot) error {
	raw, err := json.Marshal(snap.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.backend.Write(ctx, s.slot, raw); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist cart", "slot", s.slot, "error", err)
		return fmt.Errorf("%w: %w", ErrPersistenceWrite, err)
	}
	return nil
}

// signalOthers tells other contexts to re-read the slot. Best-effort;
// the mutating call never blocks on it.
func (s *Store) signalOthers(ctx context.Context) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.notifier.Notify(ctx, pubsub.Signal{Slot: s.slot}); err != nil {
			s.logger.WarnContext(ctx, "failed to signal cart change", "slot", s.slot, "error", err)
		}
	}()
}

// snapshot copies the current items. Callers must hold mu.
func (s *Store) snapshot() Snapshot {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return Snapshot{Items: items}
}

func (s *Store) indexOf(productID, variantKey string) int {
	for i, item := range s.items {
		if item.ProductID == productID && item.VariantKey == variantKey {
			return i
		}
	}
	return -1
}
