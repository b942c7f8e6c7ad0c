package calculation

// Working-time basis for converting efficiency gains into hours and money.
const (
	AnnualWorkDays  = 230
	DailyWorkHours  = 7.5
	AnnualWorkHours = AnnualWorkDays * DailyWorkHours // 1725
)

// BreakEvenThresholdMonths is the horizon at or below which ROI is modeled as a penalty.
const BreakEvenThresholdMonths = 4

// Aggregate short-horizon penalty bottoms out here (percent).
const aggregateBaseNegativeROI = -30.0

// Per-department short-horizon penalty bottoms out here (percent).
const departmentBaseNegativeROI = -25.0

// Investment estimate parameters.
const (
	MinimumInvestment      = 15000.0
	InvestmentPerHead      = 2000.0
	ScaleDiscountHeadcount = 100
	ScaleDiscountFactor    = 0.8
)

// defaultTimeFactor applies when the horizon cannot be matched to any curve point.
const defaultTimeFactor = 0.9

// curvePoint maps elapsed months to the fraction of full benefit realized by then.
type curvePoint struct {
	Months int
	Factor float64
}

// timeAdoptionCurve is ordered by Months; lookup ties resolve to the earlier entry.
var timeAdoptionCurve = [...]curvePoint{
	{Months: 3, Factor: 0.4},
	{Months: 6, Factor: 0.6},
	{Months: 12, Factor: 0.9},
	{Months: 24, Factor: 1.0},
}
