package domain

// Breakdown is the priced summary of a set of line items: the shape the admin
// UI serializes into a "send quote" request and the visitor planner attaches
// to a booking-request payload.
//
// Total is computed as Subtotal + Tax + ServiceFee by summation — the three
// components are never rounded independently, so the identity holds exactly.
// Subtotal likewise equals the sum of all group subtotals.
type Breakdown struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`

	// Currency is the ISO code all amounts share. The breakdown performs no
	// conversion; mixing currencies in one item list is the caller's bug.
	Currency string `json:"currency"`

	// Groups holds per-type count and subtotal, ordered by the type's first
	// appearance in the input. A slice rather than a map so the order
	// survives JSON round-trips.
	Groups []TypeGroup `json:"itemsByType"`
}

// TypeGroup accumulates the items of one type within a breakdown.
// Count increments once per item, not once per unit of quantity.
type TypeGroup struct {
	Type     ItemType `json:"type"`
	Count    int      `json:"count"`
	Subtotal float64  `json:"subtotal"`
}

// Group returns the group for the given type, and whether any item of that
// type was present. The lookup normalizes t the same way grouping does.
func (b Breakdown) Group(t ItemType) (TypeGroup, bool) {
	t = t.Normalize()
	for _, g := range b.Groups {
		if g.Type == t {
			return g, true
		}
	}
	return TypeGroup{}, false
}
