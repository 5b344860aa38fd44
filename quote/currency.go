package quote

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/caldertours/tripquote/domain"
)

// enPrinter renders numbers with en-locale grouping ("1,234.56").
// All formatted amounts in the application use this locale; per-visitor
// locale selection happens in the excluded UI layer, not here.
var enPrinter = message.NewPrinter(language.English)

// symbols maps the ISO currency codes the booking platform actually sells in
// to their display symbols. Codes outside this map fall back to a
// "CODE 1,234.56" rendering rather than erroring.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "CA$",
	"NZD": "NZ$",
}

// FormatCurrency renders amount with grouping separators, exactly two
// fraction digits, and the symbol (or code prefix) for the given ISO
// currency code. Output is stable for a given (amount, code) pair — tests
// and snapshot comparisons rely on the exact string.
//
// Non-finite amounts render as zero; negative amounts keep their sign in
// front of the symbol ("-$1,234.56").
func FormatCurrency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := enPrinter.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))

	if sym, ok := symbols[code]; ok {
		return sign + sym + digits
	}
	return sign + code + " " + digits
}

// SummaryText renders a breakdown as a single human-readable line, in
// subtotal, tax, service fee, total order — the compact form shown in list
// rows and confirmation toasts.
func SummaryText(b domain.Breakdown) string {
	return fmt.Sprintf("Subtotal %s, Tax %s, Service fee %s, Total %s",
		FormatCurrency(b.Subtotal, b.Currency),
		FormatCurrency(b.Tax, b.Currency),
		FormatCurrency(b.ServiceFee, b.Currency),
		FormatCurrency(b.Total, b.Currency),
	)
}
