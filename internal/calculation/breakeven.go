package calculation

import (
	"math"

	"github.com/airoi/roi-calculator/internal/domain"
)

// FindBreakEven locates the first month where the cumulative return of a
// timeline reaches zero. The crossing is linearly interpolated between the
// month before and the month it occurs. Returns nil when the series never
// breaks even or contains non-finite values before the crossing.
func FindBreakEven(timeline []domain.TimelinePoint) *domain.BreakEven {
	for i := 1; i < len(timeline); i++ {
		prev := timeline[i-1].CumulativeReturn
		curr := timeline[i].CumulativeReturn
		if math.IsNaN(prev) || math.IsNaN(curr) {
			return nil
		}
		if prev >= 0 || curr < 0 {
			continue
		}

		fraction := 1.0
		if span := curr - prev; span > 0 && !math.IsInf(span, 0) {
			fraction = -prev / span
		}
		return &domain.BreakEven{
			Month:    timeline[i].Month,
			Fraction: fraction,
			Exact:    float64(timeline[i].Month-1) + fraction,
		}
	}
	return nil
}
