package decimal

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// FromFloat converts an engine value to Money. ok is false for NaN and ±Inf,
// which have no decimal representation.
func FromFloat(value float64) (m Money, ok bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, false
	}
	return Money{decimal.NewFromFloat(value)}, true
}

// String returns the amount fixed to cents
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as currency with thousands separators, e.g. -$1,234.50.
func (m Money) Format() string {
	s := m.Decimal.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.Decimal.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}

// FormatFloat formats an engine value as currency, or "N/A" when it is not finite.
func FormatFloat(value float64) string {
	m, ok := FromFloat(value)
	if !ok {
		return "N/A"
	}
	return m.Format()
}

// FormatPercent formats an engine percentage with two decimals, or "N/A".
func FormatPercent(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "N/A"
	}
	return decimal.NewFromFloat(value).StringFixed(2) + "%"
}
