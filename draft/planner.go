package draft

import (
	"github.com/caldertours/tripquote/domain"
	"github.com/caldertours/tripquote/quote"
)

// activeTripKey is the single collection key used by the visitor planner.
// A visitor plans one trip at a time; the key is fixed so a reload always
// finds the same draft.
const activeTripKey = "active-trip"

// NewPackageDrafts constructs the admin package-draft store: one collection
// per booking ID, append policy, persisted under the package-drafts storage
// key in dir.
func NewPackageDrafts(dir string, opts ...Option) *Store {
	opts = append([]Option{WithPersister(NewFilePersister(dir, PackageDraftsKey))}, opts...)
	return New(AddPolicyAppend, opts...)
}

// TripPlanner holds the visitor's single in-progress trip. It wraps an
// upsert-policy Store pinned to one fixed key, so the visitor-facing API
// needs no key argument at all.
type TripPlanner struct {
	store *Store
}

// NewTripPlanner constructs the visitor trip store, persisted under the
// trip-planner storage key in dir — distinct from the package-drafts key so
// the two stores never read each other's state.
func NewTripPlanner(dir string, opts ...Option) *TripPlanner {
	opts = append([]Option{WithPersister(NewFilePersister(dir, TripPlannerKey))}, opts...)
	return &TripPlanner{store: New(AddPolicyUpsert, opts...)}
}

// AddItem adds item to the active trip. An existing item with the same ID or
// TempID is replaced in place rather than duplicated.
func (p *TripPlanner) AddItem(item domain.LineItem) {
	p.store.AddItem(activeTripKey, item)
}

// UpdateItem shallow-merges patch into the item matched by itemID.
// A miss is a silent no-op.
func (p *TripPlanner) UpdateItem(itemID string, patch domain.ItemPatch) {
	p.store.UpdateItem(activeTripKey, itemID, patch)
}

// RemoveItem removes the item matched by itemID. A miss is a silent no-op.
func (p *TripPlanner) RemoveItem(itemID string) {
	p.store.RemoveItem(activeTripKey, itemID)
}

// SetItems replaces the active trip's items atomically.
func (p *TripPlanner) SetItems(items []domain.LineItem) {
	p.store.SetItems(activeTripKey, items)
}

// Items returns the active trip's ordered items. Never nil.
func (p *TripPlanner) Items() []domain.LineItem {
	return p.store.GetItems(activeTripKey)
}

// ClearTrip discards the in-progress trip. Called on booking confirmation.
func (p *TripPlanner) ClearTrip() {
	p.store.ClearDraft(activeTripKey)
}

// Estimate returns the rough-estimate breakdown for the active trip, at the
// planner's own rates (10% service fee, not the admin quote's 5%).
func (p *TripPlanner) Estimate() domain.Breakdown {
	return quote.CalculateBreakdown(p.Items(), quote.PlannerRates())
}
