// Package domain contains the core data types for tour quoting: line items,
// item patches, and pricing breakdowns. This package is imported by every
// other package in the module and carries no logic beyond normalization of
// the raw values that arrive from upstream payloads.
package domain

import (
	"math"

	"github.com/google/uuid"
)

// ItemType tags a line item with the kind of product it represents.
// The tag drives grouping and display only — pricing arithmetic treats all
// types uniformly.
type ItemType string

const (
	ItemTypeFlight  ItemType = "flight"
	ItemTypeHotel   ItemType = "hotel"
	ItemTypeCar     ItemType = "car"
	ItemTypeGuide   ItemType = "guide"
	ItemTypeService ItemType = "service"
	ItemTypeNote    ItemType = "note"
	ItemTypeOther   ItemType = "other"
)

// Normalize maps unknown or empty type tags to ItemTypeOther so that every
// item lands in a bucket when grouped. Malformed upstream data must never
// cause an item to be dropped from a quote.
func (t ItemType) Normalize() ItemType {
	switch t {
	case ItemTypeFlight, ItemTypeHotel, ItemTypeCar, ItemTypeGuide,
		ItemTypeService, ItemTypeNote, ItemTypeOther:
		return t
	}
	return ItemTypeOther
}

// LineItem is a single priced entry in a draft: a flight segment, a hotel
// stay, a car rental, a guide day, or a free-form note. Items are created
// client-side and may exist before the server has assigned them an ID, in
// which case TempID is the only handle to address them by.
type LineItem struct {
	// ID is the server-assigned identifier. Empty until the item has been
	// confirmed by the booking API.
	ID string `json:"id,omitempty"`

	// TempID is a client-generated identifier ("tmp-<uuid>") assigned when
	// the item is created locally. It remains valid after the server assigns
	// an ID, so in-flight edits never lose their target.
	TempID string `json:"tempId,omitempty"`

	Type ItemType `json:"type,omitempty"`

	// Title and Description are display-only and never enter arithmetic.
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Quantity below 1 (including the zero value for "absent") is treated
	// as 1. See NormalizedQuantity.
	Quantity int `json:"quantity,omitempty"`

	// QuotePrice, UnitPrice, and Price are legacy aliases for the same
	// concept, kept because upstream payloads still produce all three.
	// Resolution order: QuotePrice, then UnitPrice, then Price, then zero.
	QuotePrice *float64 `json:"quotePrice,omitempty"`
	UnitPrice  *float64 `json:"unitPrice,omitempty"`
	Price      *float64 `json:"price,omitempty"`

	// Data is an opaque, caller-owned payload with type-specific details
	// (hotel nights, driver surcharge flags, ...). It is carried verbatim
	// and never inspected.
	Data map[string]any `json:"data,omitempty"`
}

// ResolvedUnitPrice returns the effective per-unit price of the item:
// the first present alias in QuotePrice → UnitPrice → Price order, or 0 when
// none is set. Negative and non-finite values are coerced to 0 — malformed
// prices must not poison a breakdown with NaN.
func (li LineItem) ResolvedUnitPrice() float64 {
	for _, p := range []*float64{li.QuotePrice, li.UnitPrice, li.Price} {
		if p != nil {
			return sanePrice(*p)
		}
	}
	return 0
}

// NormalizedQuantity returns the effective quantity: Quantity when it is a
// positive integer, otherwise 1.
func (li LineItem) NormalizedQuantity() int {
	if li.Quantity < 1 {
		return 1
	}
	return li.Quantity
}

// LineTotal returns NormalizedQuantity × ResolvedUnitPrice.
// Never negative, never NaN.
func (li LineItem) LineTotal() float64 {
	return float64(li.NormalizedQuantity()) * li.ResolvedUnitPrice()
}

// Matches reports whether id addresses this item, by server ID or by TempID.
// An empty id never matches — an unconfirmed item with no ID must not be
// addressable by "".
func (li LineItem) Matches(id string) bool {
	if id == "" {
		return false
	}
	return id == li.ID || id == li.TempID
}

// sanePrice clamps malformed numeric input to 0.
func sanePrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// NewTempID returns a fresh client-side identifier for an item that has not
// yet been confirmed by the server. The "tmp-" prefix keeps temp IDs visually
// distinct from server IDs in logs and payloads.
func NewTempID() string {
	return "tmp-" + uuid.NewString()
}
