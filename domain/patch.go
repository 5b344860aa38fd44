package domain

// ItemPatch is a partial update to a LineItem. Nil fields are left untouched;
// non-nil fields overwrite the corresponding item field (shallow merge —
// Data, when set, replaces the whole payload).
//
// ID is patchable on purpose: when the booking API confirms a client-created
// item, the UI reconciles it by patching the server ID onto the item it has
// been addressing by TempID.
type ItemPatch struct {
	ID          *string         `json:"id,omitempty"`
	TempID      *string         `json:"tempId,omitempty"`
	Type        *ItemType       `json:"type,omitempty"`
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Quantity    *int            `json:"quantity,omitempty"`
	QuotePrice  *float64        `json:"quotePrice,omitempty"`
	UnitPrice   *float64        `json:"unitPrice,omitempty"`
	Price       *float64        `json:"price,omitempty"`
	Data        *map[string]any `json:"data,omitempty"`
}

// ApplyPatch merges the non-nil fields of p into the item.
func (li *LineItem) ApplyPatch(p ItemPatch) {
	if p.ID != nil {
		li.ID = *p.ID
	}
	if p.TempID != nil {
		li.TempID = *p.TempID
	}
	if p.Type != nil {
		li.Type = *p.Type
	}
	if p.Title != nil {
		li.Title = *p.Title
	}
	if p.Description != nil {
		li.Description = *p.Description
	}
	if p.Quantity != nil {
		li.Quantity = *p.Quantity
	}
	if p.QuotePrice != nil {
		v := *p.QuotePrice
		li.QuotePrice = &v
	}
	if p.UnitPrice != nil {
		v := *p.UnitPrice
		li.UnitPrice = &v
	}
	if p.Price != nil {
		v := *p.Price
		li.Price = &v
	}
	if p.Data != nil {
		li.Data = *p.Data
	}
}
