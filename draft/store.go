// Package draft implements the keyed collections of in-progress line items
// that back the admin package builder and the visitor trip planner. A Store
// maps opaque keys (booking IDs, or a fixed key for the single active trip)
// to ordered item lists, persists the whole map best-effort after every
// mutation, and never performs network I/O.
package draft

import (
	"log/slog"
	"sync"

	"github.com/caldertours/tripquote/domain"
)

// AddPolicy selects how AddItem behaves when an equivalent item is already
// present. The two call sites of the store observe different behavior on
// purpose; the policy is fixed at construction and never merged into one.
type AddPolicy string

const (
	// AddPolicyAppend always appends. Repeated additions of the same nominal
	// item produce duplicates — the admin package builder deliberately lets
	// an agent add two identical hotel nights and dedup by hand.
	AddPolicyAppend AddPolicy = "append"

	// AddPolicyUpsert replaces an existing item matched by ID or TempID in
	// place, and appends otherwise. The visitor planner uses this so tapping
	// "add" twice on the same catalog entry updates rather than duplicates.
	AddPolicyUpsert AddPolicy = "upsert"
)

// Store is a keyed, ordered collection of line items with a two-state
// lifecycle per key: absent (never created, or cleared) and present (a list,
// possibly empty). Mutations are synchronous and guarded by one mutex, so
// every reader observes a complete post-mutation snapshot.
//
// Submission is not a store concern: on a successful quote or booking
// submission the caller clears the draft; the store itself has no locked or
// submitted state.
type Store struct {
	mu        sync.Mutex
	policy    AddPolicy
	items     map[string][]domain.LineItem
	persister Persister
	log       *slog.Logger
}

// Option configures a Store at construction.
type Option func(*Store)

// WithPersister makes the store load its initial state from p and save the
// full keyed map after every mutation. Persistence is best-effort: failures
// are logged, never returned.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithLogger sets the logger used for persistence warnings.
// Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New constructs a Store with the given add policy. If a persister is
// configured, the previously saved state is loaded here; a missing or
// unreadable snapshot starts the store empty, because drafts are explicitly
// local and best-effort.
func New(policy AddPolicy, opts ...Option) *Store {
	s := &Store{
		policy: policy,
		items:  make(map[string][]domain.LineItem),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.persister != nil {
		loaded, err := s.persister.Load()
		if err != nil {
			s.log.Warn("could not load persisted drafts, starting empty", "error", err)
		} else if loaded != nil {
			s.items = loaded
		}
	}
	return s
}

// AddItem appends item to the collection at key, creating the collection if
// absent. Under AddPolicyUpsert an existing item matched by the new item's
// ID or TempID is replaced in place instead, preserving its position.
func (s *Store) AddItem(key string, item domain.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy == AddPolicyUpsert {
		list := s.items[key]
		for i := range list {
			if (item.ID != "" && list[i].Matches(item.ID)) ||
				(item.TempID != "" && list[i].Matches(item.TempID)) {
				list[i] = item
				s.persistLocked()
				return
			}
		}
	}
	s.items[key] = append(s.items[key], item)
	s.persistLocked()
}

// UpdateItem shallow-merges patch into the item matched by itemID (server ID
// or temp ID) within the collection at key. A miss is a silent no-op — the
// UI double-firing an edit after a removal must not crash or resurrect the
// item.
func (s *Store) UpdateItem(key, itemID string, patch domain.ItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.items[key]
	for i := range list {
		if list[i].Matches(itemID) {
			list[i].ApplyPatch(patch)
			s.persistLocked()
			return
		}
	}
}

// RemoveItem removes the item matched by itemID (server ID or temp ID) from
// the collection at key. A miss is a silent no-op.
func (s *Store) RemoveItem(key, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.items[key]
	for i := range list {
		if list[i].Matches(itemID) {
			s.items[key] = append(list[:i], list[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// SetItems replaces the entire collection at key atomically.
func (s *Store) SetItems(key string, items []domain.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = append([]domain.LineItem(nil), items...)
	s.persistLocked()
}

// ClearDraft removes the collection at key, returning that key to the
// absent state. Called by the surrounding application after a successful
// submission, or when the visitor abandons a booking.
func (s *Store) ClearDraft(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	s.persistLocked()
}

// ClearAll resets the whole store to empty, discarding every key.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string][]domain.LineItem)
	s.persistLocked()
}

// GetItems returns the ordered item list at key. Unknown keys yield an empty
// slice, never nil, so callers can always range over the result. The slice
// is a copy — mutating it does not affect the store.
func (s *Store) GetItems(key string) []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.items[key]
	out := make([]domain.LineItem, len(list))
	copy(out, list)
	return out
}

// Keys returns the keys that currently hold a collection, in no particular
// order. Used by the admin UI to list bookings with unsent drafts.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	return keys
}

// persistLocked saves a snapshot of the full keyed map. Callers must hold
// s.mu. The snapshot is a copy so the persister can marshal it without
// racing later mutations.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	snapshot := make(map[string][]domain.LineItem, len(s.items))
	for k, list := range s.items {
		snapshot[k] = append([]domain.LineItem(nil), list...)
	}
	if err := s.persister.Save(snapshot); err != nil {
		s.log.Warn("could not persist drafts", "error", err)
	}
}
