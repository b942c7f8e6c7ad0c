package calculation

import (
	"github.com/airoi/roi-calculator/internal/domain"
)

// CalculateDepartmentImpact projects one department's annual impact at the
// given adoption rate (percent) after timeHorizon months.
//
// Hours and money follow the time-adoption curve. ROI has two regimes: at or
// below BreakEvenThresholdMonths it climbs linearly from -25% toward 0% and is
// scaled by adoption; beyond it the industry benchmark is scaled by adoption
// and horizon/12. Without a benchmark the second regime yields NaN.
func (ic *ImpactCalculator) CalculateDepartmentImpact(dept domain.Department, adoptionRate float64, timeHorizon int, industryID string) domain.DepartmentImpact {
	adoption := adoptionRate / 100
	horizon := float64(timeHorizon)

	hoursPerPerson := AnnualWorkHours * (dept.EfficiencyGain / 100)
	totalHoursSaved := hoursPerPerson * float64(dept.Headcount)
	hourlyRate := dept.AvgSalary / AnnualWorkHours
	fullImpact := totalHoursSaved * hourlyRate
	adoptionImpact := fullImpact * adoption

	timeFactor := TimeFactor(timeHorizon)
	hoursSaved := totalHoursSaved * adoption * timeFactor

	baseROI, hasBenchmark := ic.baseROI(industryID, dept.Name)

	var roi float64
	if timeHorizon <= BreakEvenThresholdMonths {
		progress := horizon / BreakEvenThresholdMonths
		roi = (departmentBaseNegativeROI + progress*-departmentBaseNegativeROI) * adoption
	} else {
		roi = baseROI * (horizon / 12) * adoption
	}

	return domain.DepartmentImpact{
		DepartmentID:    dept.ID,
		DepartmentName:  dept.Name,
		FinancialImpact: adoptionImpact * timeFactor,
		HoursSaved:      hoursSaved,
		FTEEquivalent:   hoursSaved / AnnualWorkHours,
		Headcount:       dept.Headcount,
		ROI:             roi,
		HasBenchmark:    hasBenchmark,
		BenchmarkROI:    baseROI,
	}
}

// CalculateTotalImpact sums department impacts and applies the aggregate ROI
// policy. An empty list yields a zero TotalImpact.
//
// The aggregate ROI is computed independently of the per-department regime:
// at or below the threshold it is rebuilt from a -30% floor and worsened by
// half the adoption shortfall; otherwise the mean department ROI is scaled by
// adoption and horizon/12 a second time.
func (ic *ImpactCalculator) CalculateTotalImpact(departments []domain.Department, adoptionRate float64, timeHorizon int, industryID string) domain.TotalImpact {
	if len(departments) == 0 {
		return domain.TotalImpact{}
	}

	var total domain.TotalImpact
	var roiSum float64
	for _, d := range departments {
		impact := ic.CalculateDepartmentImpact(d, adoptionRate, timeHorizon, industryID)
		total.FinancialImpact += impact.FinancialImpact
		total.HoursSaved += impact.HoursSaved
		total.FTEEquivalent += impact.FTEEquivalent
		total.Headcount += impact.Headcount
		roiSum += impact.ROI
	}
	meanROI := roiSum / float64(len(departments))

	horizon := float64(timeHorizon)
	if timeHorizon <= BreakEvenThresholdMonths {
		progress := horizon / BreakEvenThresholdMonths
		adoptionPenalty := 1 + ((adoptionRate-100)/100)*0.5
		total.ROI = (aggregateBaseNegativeROI + progress*-aggregateBaseNegativeROI) * adoptionPenalty
	} else {
		total.ROI = meanROI * (adoptionRate / 100) * (horizon / 12)
	}

	return total
}
