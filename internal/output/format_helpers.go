package output

import (
	"math"

	"github.com/airoi/roi-calculator/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as USD with separators, or "N/A" when not finite.
func FormatCurrency(amount float64) string { return decimal.FormatFloat(amount) }

// FormatPercentage formats a percentage with 2 decimals, or "N/A" when not finite.
func FormatPercentage(amount float64) string { return decimal.FormatPercent(amount) }

// FormatNumber formats a value with a fixed number of decimals, or "N/A".
func FormatNumber(v float64, places int32) string {
	if !isFinite(v) {
		return "N/A"
	}
	return shop.NewFromFloat(v).StringFixed(places)
}

// csvNumber leaves non-finite cells empty so spreadsheets treat them as missing.
func csvNumber(v float64) string {
	m, ok := decimal.FromFloat(v)
	if !ok {
		return ""
	}
	return m.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
