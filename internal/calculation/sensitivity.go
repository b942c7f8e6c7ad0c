package calculation

import (
	"fmt"

	"github.com/airoi/roi-calculator/internal/domain"
)

// AdoptionSensitivity evaluates the input at evenly spaced adoption rates from
// minRate to maxRate inclusive. The input's own adoption rate is ignored.
func (ic *ImpactCalculator) AdoptionSensitivity(input *domain.AnalysisInput, minRate, maxRate float64, steps int) ([]domain.SensitivityPoint, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sensitivity sweep needs at least 2 steps, got %d", steps)
	}
	if minRate > maxRate {
		return nil, fmt.Errorf("sensitivity sweep min rate %.2f exceeds max rate %.2f", minRate, maxRate)
	}

	stepSize := (maxRate - minRate) / float64(steps-1)
	results := make([]domain.SensitivityPoint, 0, steps)
	for i := 0; i < steps; i++ {
		rate := minRate + stepSize*float64(i)
		if i == steps-1 {
			rate = maxRate
		}

		timeline := ic.GenerateTimelineData(input.Departments, rate, input.TimeHorizon, input.InvestmentCost, input.IndustryID)
		last := timeline[len(timeline)-1]
		results = append(results, domain.SensitivityPoint{
			AdoptionRate: rate,
			Total:        ic.CalculateTotalImpact(input.Departments, rate, input.TimeHorizon, input.IndustryID),
			FinalROI:     last.ROI,
			FinalReturn:  last.CumulativeReturn,
		})
	}

	ic.logger().Debugf("sensitivity sweep: %d points from %.1f%% to %.1f%%", len(results), minRate, maxRate)
	return results, nil
}
