package calculation

import "math"

// TimeFactor returns the realized-benefit fraction for the curve point nearest
// to timeHorizon. Points are snapped to, never interpolated between; on equal
// distance the shorter horizon wins.
func TimeFactor(timeHorizon int) float64 {
	return timeFactorFor(float64(timeHorizon))
}

func timeFactorFor(months float64) float64 {
	factor := defaultTimeFactor
	bestDist := math.Inf(1)
	for _, p := range timeAdoptionCurve {
		d := math.Abs(months - float64(p.Months))
		if d < bestDist {
			bestDist = d
			factor = p.Factor
		}
	}
	return factor
}
