package calculation

import (
	"math"

	"github.com/airoi/roi-calculator/internal/domain"
)

// BenchmarkLookup resolves the published ROI percentage for a department name
// within an industry. ok is false when no benchmark applies.
type BenchmarkLookup interface {
	DepartmentROI(industryID, departmentName string) (roi float64, ok bool)
}

// industryNamer is optionally implemented by a BenchmarkLookup to label reports.
type industryNamer interface {
	IndustryName(industryID string) (string, bool)
}

type noBenchmarks struct{}

func (noBenchmarks) DepartmentROI(string, string) (float64, bool) { return 0, false }

// ImpactCalculator projects financial impact, hours saved and ROI of AI adoption.
// It holds no state between calls; every method is a pure function of its
// arguments and the injected benchmark tables.
type ImpactCalculator struct {
	Benchmarks BenchmarkLookup
	Logger     Logger
}

// NewImpactCalculator creates a calculator backed by the given benchmark tables.
// A nil lookup means no department has a benchmark.
func NewImpactCalculator(benchmarks BenchmarkLookup) *ImpactCalculator {
	if benchmarks == nil {
		benchmarks = noBenchmarks{}
	}
	return &ImpactCalculator{
		Benchmarks: benchmarks,
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the calculator. If nil is provided, a no-op logger is used.
func (ic *ImpactCalculator) SetLogger(l Logger) {
	if l == nil {
		ic.Logger = NopLogger{}
		return
	}
	ic.Logger = l
}

func (ic *ImpactCalculator) logger() Logger {
	if ic.Logger == nil {
		return NopLogger{}
	}
	return ic.Logger
}

// baseROI returns the benchmark ROI or NaN when none matches.
func (ic *ImpactCalculator) baseROI(industryID, departmentName string) (float64, bool) {
	if ic.Benchmarks == nil || industryID == "" {
		return math.NaN(), false
	}
	roi, ok := ic.Benchmarks.DepartmentROI(industryID, departmentName)
	if !ok {
		return math.NaN(), false
	}
	return roi, true
}

// BuildReport runs every projection for one input and bundles the results.
// The input is expected to have passed config validation; the calculator does
// not re-check ranges.
func (ic *ImpactCalculator) BuildReport(input *domain.AnalysisInput) *domain.ImpactReport {
	log := ic.logger()
	log.Debugf("building report: %d departments, %d people, adoption %.1f%%, horizon %d months, industry %q",
		len(input.Departments), input.TotalHeadcount(), input.AdoptionRate, input.TimeHorizon, input.IndustryID)

	departments := make([]domain.DepartmentImpact, 0, len(input.Departments))
	for _, d := range input.Departments {
		impact := ic.CalculateDepartmentImpact(d, input.AdoptionRate, input.TimeHorizon, input.IndustryID)
		if !impact.HasBenchmark && input.TimeHorizon > BreakEvenThresholdMonths {
			log.Warnf("no %q benchmark for department %q; ROI unavailable", input.IndustryID, d.Name)
		}
		departments = append(departments, impact)
	}

	investment := InitialInvestment(input.Departments, input.InvestmentCost)
	timeline := ic.GenerateTimelineData(input.Departments, input.AdoptionRate, input.TimeHorizon, input.InvestmentCost, input.IndustryID)

	report := &domain.ImpactReport{
		Input:       *input,
		Departments: departments,
		Total:       ic.CalculateTotalImpact(input.Departments, input.AdoptionRate, input.TimeHorizon, input.IndustryID),
		Investment:  investment,
		Timeline:    timeline,
		BreakEven:   FindBreakEven(timeline),
		Assumptions: Assumptions(),
	}
	if namer, ok := ic.Benchmarks.(industryNamer); ok && input.IndustryID != "" {
		report.IndustryName, _ = namer.IndustryName(input.IndustryID)
	}
	if n := len(timeline); n > 0 {
		report.FinalROI = timeline[n-1].ROI
	}

	log.Infof("report built: impact %.2f, investment %.2f, final ROI %.2f%%",
		report.Total.FinancialImpact, investment, report.FinalROI)
	return report
}

// Assumptions lists the fixed modeling assumptions behind every projection.
func Assumptions() []string {
	return []string{
		"Working year: 230 days of 7.5 hours (1,725 hours)",
		"Benefit realization: 40% at 3 months, 60% at 6, 90% at 12, 100% at 24 (nearest point)",
		"Horizons of 4 months or less are modeled with a negative ROI while adoption ramps up",
		"Default investment: $2,000 per head, minimum $15,000, 20% discount above 100 staff",
		"Department ROI scales the industry benchmark by adoption and horizon (per 12 months)",
	}
}
