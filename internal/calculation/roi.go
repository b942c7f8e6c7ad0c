package calculation

import (
	"math"

	"github.com/airoi/roi-calculator/internal/domain"
)

// CalculateROI returns the percentage return of returnValue over investment.
// A zero investment yields ±Inf or NaN; callers format those.
func CalculateROI(investment, returnValue float64) float64 {
	return ((returnValue - investment) / investment) * 100
}

// TotalHeadcount sums headcount across departments.
func TotalHeadcount(departments []domain.Department) int {
	total := 0
	for _, d := range departments {
		total += d.Headcount
	}
	return total
}

// EstimateInvestment approximates the up-front cost of a rollout: a per-head
// cost with a floor, discounted for organizations above the scale threshold.
func EstimateInvestment(departments []domain.Department) float64 {
	headcount := TotalHeadcount(departments)
	estimate := math.Max(MinimumInvestment, float64(headcount)*InvestmentPerHead)
	if headcount > ScaleDiscountHeadcount {
		estimate *= ScaleDiscountFactor
	}
	return estimate
}
