// Package quote implements deterministic, side-effect-free pricing
// aggregation over line items. Given a draft's items and a set of rates it
// produces the Breakdown the surrounding application submits to the booking
// API. No function in this package mutates its input or touches I/O.
package quote

import (
	"github.com/caldertours/tripquote/domain"
)

// Rates holds the percentages applied on top of a subtotal, plus the ISO
// currency code the amounts are denominated in.
type Rates struct {
	Tax        float64
	ServiceFee float64
	Currency   string
}

// DefaultRates returns the rates used for admin-issued official quotes:
// 18% tax and a 5% service fee.
func DefaultRates() Rates {
	return Rates{Tax: 0.18, ServiceFee: 0.05, Currency: "USD"}
}

// PlannerRates returns the rates used for the visitor planner's rough
// estimate: 18% tax and a 10% service fee. The fee intentionally differs
// from DefaultRates — both figures come from their respective upstream call
// sites and must stay independently configurable.
func PlannerRates() Rates {
	return Rates{Tax: 0.18, ServiceFee: 0.10, Currency: "USD"}
}

// CalculateTotal returns the plain sum of quantity × unit price across all
// items, with no grouping and no tax or fee applied.
func CalculateTotal(items []domain.LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

// CalculateBreakdown groups items by normalized type, accumulates per-group
// count and subtotal, and derives tax, service fee, and total from the given
// rates. Groups appear in first-encountered-type order. An empty or nil item
// list yields an all-zero breakdown with no groups.
func CalculateBreakdown(items []domain.LineItem, rates Rates) domain.Breakdown {
	b := domain.Breakdown{Currency: rates.Currency}
	if b.Currency == "" {
		b.Currency = "USD"
	}

	index := make(map[domain.ItemType]int, len(items))
	for _, it := range items {
		t := it.Type.Normalize()
		i, ok := index[t]
		if !ok {
			i = len(b.Groups)
			index[t] = i
			b.Groups = append(b.Groups, domain.TypeGroup{Type: t})
		}
		b.Groups[i].Count++
		b.Groups[i].Subtotal += it.LineTotal()
	}

	// Summing the group subtotals (rather than a running total inside the
	// loop) keeps Subtotal bit-identical to the sum of Groups[*].Subtotal.
	for _, g := range b.Groups {
		b.Subtotal += g.Subtotal
	}

	b.Tax = b.Subtotal * rates.Tax
	b.ServiceFee = b.Subtotal * rates.ServiceFee
	b.Total = b.Subtotal + b.Tax + b.ServiceFee
	return b
}

// ZeroPriced returns the items whose resolved unit price is zero. A zero
// price is valid — a note or a complimentary service costs nothing — but
// consuming UIs are expected to flag these so a missing price is noticed
// before the quote goes out.
func ZeroPriced(items []domain.LineItem) []domain.LineItem {
	var flagged []domain.LineItem
	for _, it := range items {
		if it.ResolvedUnitPrice() == 0 {
			flagged = append(flagged, it)
		}
	}
	return flagged
}
