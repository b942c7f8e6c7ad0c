package domain

// DepartmentImpact is the derived impact snapshot for a single department.
type DepartmentImpact struct {
	DepartmentID    string  `json:"departmentId,omitempty"`
	DepartmentName  string  `json:"departmentName"`
	FinancialImpact float64 `json:"financialImpact"`
	HoursSaved      float64 `json:"hoursSaved"`
	FTEEquivalent   float64 `json:"fteEquivalent"`
	Headcount       int     `json:"headcount"`
	ROI             float64 `json:"roi"`

	// HasBenchmark is false when no industry benchmark matched; ROI is then NaN
	// for horizons past the break-even threshold.
	HasBenchmark bool    `json:"hasBenchmark"`
	BenchmarkROI float64 `json:"benchmarkRoi"`
}

// TotalImpact is the aggregate snapshot across all departments.
type TotalImpact struct {
	FinancialImpact float64 `json:"financialImpact"`
	HoursSaved      float64 `json:"hoursSaved"`
	FTEEquivalent   float64 `json:"fteEquivalent"`
	Headcount       int     `json:"headcount"`
	ROI             float64 `json:"roi"`
}

// TimelinePoint is one month of a projection series. Month 0 is the investment instant.
type TimelinePoint struct {
	Month            int     `json:"month"`
	FinancialImpact  float64 `json:"financialImpact"`
	Investment       float64 `json:"investment"`
	CumulativeReturn float64 `json:"cumulativeReturn"`
	ROI              float64 `json:"roi"`
}

// BreakEven describes where a timeline's cumulative return first reaches zero.
type BreakEven struct {
	Month    int     `json:"month"`    // first whole month at or above zero
	Fraction float64 `json:"fraction"` // interpolated position within that month, (0, 1]
	Exact    float64 `json:"exact"`    // Month-1+Fraction
}

// SensitivityPoint is the outcome of one adoption rate in a sweep.
type SensitivityPoint struct {
	AdoptionRate float64     `json:"adoptionRate"`
	Total        TotalImpact `json:"total"`
	FinalROI     float64     `json:"finalRoi"`
	FinalReturn  float64     `json:"finalCumulativeReturn"`
}

// ImpactReport bundles every output of one analysis run for formatters and the API.
type ImpactReport struct {
	Input        AnalysisInput      `json:"input"`
	IndustryName string             `json:"industryName,omitempty"`
	Departments  []DepartmentImpact `json:"departments"`
	Total        TotalImpact        `json:"total"`
	Investment   float64            `json:"investment"`
	Timeline     []TimelinePoint    `json:"timeline"`
	BreakEven    *BreakEven         `json:"breakEven,omitempty"`
	FinalROI     float64            `json:"finalRoi"`
	Assumptions  []string           `json:"assumptions"`
}
