package calculation

import (
	"math"

	"github.com/airoi/roi-calculator/internal/domain"
)

// InitialInvestment returns customCost when positive, otherwise the estimate.
func InitialInvestment(departments []domain.Department, customCost float64) float64 {
	if customCost > 0 {
		return customCost
	}
	return EstimateInvestment(departments)
}

// rampedAdoption is the adoption rate reached by month out of timeHorizon,
// never exceeding the target. Short rollouts ramp 1.5x faster.
func rampedAdoption(adoptionRate float64, month, timeHorizon int) float64 {
	progress := float64(month) / float64(timeHorizon)
	ramped := adoptionRate * progress
	if timeHorizon <= 6 {
		ramped *= 1.5
	}
	return math.Min(ramped, adoptionRate)
}

// GenerateTimelineData projects month-by-month returns from month 0 (the
// investment instant) through timeHorizon inclusive.
//
// Each month re-evaluates the aggregate impact at the ramped adoption rate with
// the elapsed months as the horizon, scales it by elapsed/total, and accrues
// 1/timeHorizon of that into the cumulative return.
func (ic *ImpactCalculator) GenerateTimelineData(departments []domain.Department, adoptionRate float64, timeHorizon int, customCost float64, industryID string) []domain.TimelinePoint {
	investment := InitialInvestment(departments, customCost)

	points := make([]domain.TimelinePoint, 0, max(timeHorizon, 0)+1)
	points = append(points, domain.TimelinePoint{
		Month:            0,
		FinancialImpact:  0,
		Investment:       investment,
		CumulativeReturn: -investment,
		ROI:              -100,
	})

	cumulative := -investment
	for month := 1; month <= timeHorizon; month++ {
		adoption := rampedAdoption(adoptionRate, month, timeHorizon)
		impact := ic.CalculateTotalImpact(departments, adoption, month, industryID)

		monthlyReturn := impact.FinancialImpact * (float64(month) / float64(timeHorizon))
		cumulative += monthlyReturn / float64(timeHorizon)

		points = append(points, domain.TimelinePoint{
			Month:            month,
			FinancialImpact:  monthlyReturn,
			Investment:       0,
			CumulativeReturn: cumulative,
			ROI:              CalculateROI(investment, investment+cumulative),
		})
	}

	ic.logger().Debugf("timeline: %d points, investment %.2f, final cumulative %.2f", len(points), investment, cumulative)
	return points
}
