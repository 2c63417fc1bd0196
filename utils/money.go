package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formats an amount as a string like "$12,552.90".
// Uses comma as thousands separator and always two decimals.
func FormatUSD(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	s := amount.StringFixed(2)
	whole, frac := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	// Pre-allocate: digits + separators + $ + sign + cents
	b.Grow(len(whole) + len(whole)/3 + 5)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}

// FormatSqft renders square footage with two decimals, e.g. 27.78
func FormatSqft(sqft float64) string {
	return strconv.FormatFloat(sqft, 'f', 2, 64)
}

// FormatInches renders a measurement in inches without trailing zeros, e.g. 6.75"
func FormatInches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + `"`
}
