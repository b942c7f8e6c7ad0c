package domain

// Department is one organizational unit under analysis.
type Department struct {
	ID             string  `yaml:"id,omitempty" json:"id,omitempty"`
	Name           string  `yaml:"name" json:"name"`
	Headcount      int     `yaml:"headcount" json:"headcount"`
	AvgSalary      float64 `yaml:"avg_salary" json:"avgSalary"`           // annual, fully loaded
	EfficiencyGain float64 `yaml:"efficiency_gain" json:"efficiencyGain"` // percent, (0, 100]
}

// BenchmarkEntry is the published ROI percentage for a department type within an industry.
type BenchmarkEntry struct {
	DepartmentName string  `yaml:"department" json:"department"`
	ROIPercent     float64 `yaml:"roi_percent" json:"roiPercent"`
}

// Industry groups the benchmark entries and default department presets for one industry id.
type Industry struct {
	ID                 string           `yaml:"id" json:"id"`
	Name               string           `yaml:"name" json:"name"`
	Benchmarks         []BenchmarkEntry `yaml:"benchmarks" json:"benchmarks"`
	DefaultDepartments []Department     `yaml:"default_departments" json:"defaultDepartments"`
}

// AnalysisInput is everything a caller supplies for one projection run.
type AnalysisInput struct {
	Name                string       `yaml:"name,omitempty" json:"name,omitempty"`
	IndustryID          string       `yaml:"industry,omitempty" json:"industry,omitempty"`
	AdoptionRate        float64      `yaml:"adoption_rate" json:"adoptionRate"` // percent, [0, 100]
	TimeHorizon         int          `yaml:"time_horizon" json:"timeHorizon"`   // months
	InvestmentCost      float64      `yaml:"investment_cost,omitempty" json:"investmentCost,omitempty"`
	UseIndustryDefaults bool         `yaml:"use_industry_defaults,omitempty" json:"useIndustryDefaults,omitempty"`
	Departments         []Department `yaml:"departments" json:"departments"`
}

// TotalHeadcount sums headcount across the input's departments.
func (in *AnalysisInput) TotalHeadcount() int {
	total := 0
	for _, d := range in.Departments {
		total += d.Headcount
	}
	return total
}
