package quote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caldertours/tripquote/domain"
	"github.com/caldertours/tripquote/quote"
)

func price(v float64) *float64 { return &v }

// flightAndHotel is the canonical two-item draft used across the aggregate
// tests: one $1,000 flight and one $500 hotel night.
func flightAndHotel() []domain.LineItem {
	return []domain.LineItem{
		{ID: "f-1", Type: domain.ItemTypeFlight, QuotePrice: price(1000), Quantity: 1},
		{ID: "h-1", Type: domain.ItemTypeHotel, QuotePrice: price(500), Quantity: 1},
	}
}

// ---- CalculateBreakdown ----------------------------------------------------

func TestCalculateBreakdown_FlightAndHotel(t *testing.T) {
	b := quote.CalculateBreakdown(flightAndHotel(), quote.DefaultRates())

	assert.Equal(t, 1500.0, b.Subtotal)
	assert.Equal(t, 270.0, b.Tax)
	assert.Equal(t, 75.0, b.ServiceFee)
	assert.Equal(t, 1845.0, b.Total)

	flight, ok := b.Group(domain.ItemTypeFlight)
	require.True(t, ok)
	assert.Equal(t, 1, flight.Count)
	assert.Equal(t, 1000.0, flight.Subtotal)

	hotel, ok := b.Group(domain.ItemTypeHotel)
	require.True(t, ok)
	assert.Equal(t, 1, hotel.Count)
	assert.Equal(t, 500.0, hotel.Subtotal)
}

func TestCalculateBreakdown_EmptyList(t *testing.T) {
	b := quote.CalculateBreakdown(nil, quote.DefaultRates())

	assert.Zero(t, b.Subtotal)
	assert.Zero(t, b.Tax)
	assert.Zero(t, b.ServiceFee)
	assert.Zero(t, b.Total)
	assert.Empty(t, b.Groups)
}

func TestCalculateBreakdown_UnknownTypeBucketsAsOther(t *testing.T) {
	items := []domain.LineItem{
		{Type: "submarine", Price: price(50)},
		{Price: price(25)}, // missing type
	}

	b := quote.CalculateBreakdown(items, quote.DefaultRates())

	other, ok := b.Group(domain.ItemTypeOther)
	require.True(t, ok)
	assert.Equal(t, 2, other.Count)
	assert.Equal(t, 75.0, other.Subtotal)
	require.Len(t, b.Groups, 1)
}

func TestCalculateBreakdown_MalformedPricesCoerceToZero(t *testing.T) {
	items := []domain.LineItem{
		{Type: domain.ItemTypeCar, Price: price(-400)},
		{Type: domain.ItemTypeGuide, QuotePrice: price(150)},
	}

	b := quote.CalculateBreakdown(items, quote.DefaultRates())

	car, ok := b.Group(domain.ItemTypeCar)
	require.True(t, ok)
	assert.Zero(t, car.Subtotal)
	assert.Equal(t, 150.0, b.Subtotal)
}

func TestCalculateBreakdown_QuantityDefaultsToOne(t *testing.T) {
	items := []domain.LineItem{{Type: domain.ItemTypeHotel, Price: price(200)}}

	b := quote.CalculateBreakdown(items, quote.DefaultRates())

	assert.Equal(t, 200.0, b.Subtotal)
}

func TestCalculateBreakdown_CountIsPerItemNotPerUnit(t *testing.T) {
	items := []domain.LineItem{
		{Type: domain.ItemTypeHotel, Price: price(100), Quantity: 4},
	}

	b := quote.CalculateBreakdown(items, quote.DefaultRates())

	hotel, ok := b.Group(domain.ItemTypeHotel)
	require.True(t, ok)
	assert.Equal(t, 1, hotel.Count)
	assert.Equal(t, 400.0, hotel.Subtotal)
}

func TestCalculateBreakdown_GroupOrderFollowsFirstEncounter(t *testing.T) {
	items := []domain.LineItem{
		{Type: domain.ItemTypeHotel, Price: price(1)},
		{Type: domain.ItemTypeFlight, Price: price(2)},
		{Type: domain.ItemTypeHotel, Price: price(3)},
		{Type: domain.ItemTypeGuide, Price: price(4)},
	}

	b := quote.CalculateBreakdown(items, quote.DefaultRates())

	require.Len(t, b.Groups, 3)
	assert.Equal(t, domain.ItemTypeHotel, b.Groups[0].Type)
	assert.Equal(t, domain.ItemTypeFlight, b.Groups[1].Type)
	assert.Equal(t, domain.ItemTypeGuide, b.Groups[2].Type)
}

func TestCalculateBreakdown_ZeroPricedItem(t *testing.T) {
	items := []domain.LineItem{{ID: "n-1", Type: domain.ItemTypeNote, Price: price(0)}}

	b := quote.CalculateBreakdown(items, quote.DefaultRates())

	assert.Zero(t, b.Subtotal)
	assert.Zero(t, b.Total)
	note, ok := b.Group(domain.ItemTypeNote)
	require.True(t, ok)
	assert.Equal(t, 1, note.Count)
}

func TestCalculateBreakdown_DoesNotMutateInput(t *testing.T) {
	items := flightAndHotel()
	original := make([]domain.LineItem, len(items))
	copy(original, items)

	quote.CalculateBreakdown(items, quote.DefaultRates())

	assert.Equal(t, original, items)
}

func TestCalculateBreakdown_Idempotent(t *testing.T) {
	items := flightAndHotel()

	first := quote.CalculateBreakdown(items, quote.DefaultRates())
	second := quote.CalculateBreakdown(items, quote.DefaultRates())

	assert.Equal(t, first, second)
}

// TestCalculateBreakdown_Invariants exercises the two identities every
// breakdown must satisfy, on a deliberately messy item list.
func TestCalculateBreakdown_Invariants(t *testing.T) {
	items := []domain.LineItem{
		{Type: domain.ItemTypeFlight, QuotePrice: price(123.45), Quantity: 2},
		{Type: domain.ItemTypeHotel, UnitPrice: price(0.1), Quantity: 7},
		{Type: domain.ItemTypeFlight, Price: price(99.99)},
		{Type: "unknown", Price: price(10)},
		{Type: domain.ItemTypeNote},
	}

	b := quote.CalculateBreakdown(items, quote.DefaultRates())

	assert.Equal(t, b.Subtotal+b.Tax+b.ServiceFee, b.Total)

	var groupSum float64
	for _, g := range b.Groups {
		groupSum += g.Subtotal
	}
	assert.Equal(t, groupSum, b.Subtotal)
}

func TestCalculateBreakdown_PlannerRatesUseHigherFee(t *testing.T) {
	items := []domain.LineItem{{Type: domain.ItemTypeHotel, Price: price(1000)}}

	b := quote.CalculateBreakdown(items, quote.PlannerRates())

	assert.Equal(t, 180.0, b.Tax)
	assert.Equal(t, 100.0, b.ServiceFee)
	assert.Equal(t, 1280.0, b.Total)
}

// ---- CalculateTotal --------------------------------------------------------

func TestCalculateTotal(t *testing.T) {
	items := []domain.LineItem{
		{QuotePrice: price(1000)},
		{UnitPrice: price(250), Quantity: 2},
	}

	assert.Equal(t, 1500.0, quote.CalculateTotal(items))
	assert.Zero(t, quote.CalculateTotal(nil))
}

// ---- ZeroPriced ------------------------------------------------------------

func TestZeroPriced(t *testing.T) {
	items := []domain.LineItem{
		{ID: "a", Price: price(100)},
		{ID: "b", Price: price(0)},
		{ID: "c"},
	}

	flagged := quote.ZeroPriced(items)

	require.Len(t, flagged, 2)
	assert.Equal(t, "b", flagged[0].ID)
	assert.Equal(t, "c", flagged[1].ID)
}
