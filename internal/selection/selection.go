// Package selection tracks bulk-action selections scoped to one admin
// session. A selection is transient: it is never persisted and is
// cleared by Clear or a bulk apply.
package selection

import "sync"

// Resolver reports whether an ID still exists in the live collection.
type Resolver func(id string) bool

// Operation is applied to each selected ID still present at apply time.
type Operation func(id string)

// Result reports the outcome of a bulk apply. Skipped IDs were selected
// but no longer present in the live collection, e.g. deleted by another
// action before the bulk operation ran.
type Result struct {
	Applied []string
	Skipped []string
}

// Set tracks selected entity IDs in insertion order.
type Set struct {
	mu      sync.Mutex
	order   []string
	members map[string]struct{}
}

// New creates an empty selection.
func New() *Set {
	return &Set{
		members: make(map[string]struct{}),
	}
}

// Toggle adds the ID if absent, removes it if present.
func (s *Set) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; ok {
		delete(s.members, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

// SelectAll replaces the selection with the given IDs, de-duplicated,
// preserving their order. Typically called with the IDs of the
// currently filtered view.
func (s *Set) SelectAll(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.members = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.members[id]; ok {
			continue
		}
		s.members[id] = struct{}{}
		s.order = append(s.order, id)
	}
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.members = make(map[string]struct{})
}

// Contains reports whether the ID is selected.
func (s *Set) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.members[id]
	return ok
}

// IDs returns the selected IDs in insertion order.
func (s *Set) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of selected IDs.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.order)
}

// ApplyBulk resolves every selected ID against the live collection,
// applies op to those still present and reports the rest as skipped.
// The selection is cleared regardless of the outcome, so stale IDs can
// never be re-applied.
func (s *Set) ApplyBulk(resolver Resolver, op Operation) Result {
	s.mu.Lock()
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	s.order = s.order[:0]
	s.members = make(map[string]struct{})
	s.mu.Unlock()

	res := Result{
		Applied: make([]string, 0, len(ids)),
		Skipped: make([]string, 0),
	}
	for _, id := range ids {
		if !resolver(id) {
			res.Skipped = append(res.Skipped, id)
			continue
		}
		op(id)
		res.Applied = append(res.Applied, id)
	}
	return res
}
