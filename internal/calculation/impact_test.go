package calculation

import (
	"math"
	"strings"
	"testing"

	"github.com/airoi/roi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapBenchmarks is a test lookup keyed by industry then lower-cased department name.
type mapBenchmarks map[string]map[string]float64

func (m mapBenchmarks) DepartmentROI(industryID, departmentName string) (float64, bool) {
	roi, ok := m[industryID][strings.ToLower(departmentName)]
	return roi, ok
}

var testBenchmarks = mapBenchmarks{
	"tech": {"engineering": 200, "support": 120},
}

func sampleDepartment() domain.Department {
	return domain.Department{ID: "d1", Name: "Engineering", Headcount: 10, AvgSalary: 60000, EfficiencyGain: 20}
}

func TestTimeFactor(t *testing.T) {
	tests := []struct {
		horizon int
		want    float64
	}{
		{0, 0.4},
		{1, 0.4},
		{3, 0.4},
		{4, 0.4},
		{5, 0.6},
		{6, 0.6},
		{9, 0.6}, // equidistant from 6 and 12: earlier point wins
		{10, 0.9},
		{12, 0.9},
		{18, 0.9}, // equidistant from 12 and 24
		{19, 1.0},
		{24, 1.0},
		{120, 1.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeFactor(tt.horizon), "horizon %d", tt.horizon)
	}
}

func TestTimeFactor_NonFiniteFallsBackToDefault(t *testing.T) {
	assert.Equal(t, 0.9, timeFactorFor(math.NaN()))
	assert.Equal(t, 0.9, timeFactorFor(math.Inf(1)))
}

func TestAnnualWorkHours(t *testing.T) {
	assert.Equal(t, 1725.0, float64(AnnualWorkHours))
}

func TestCalculateDepartmentImpact_ConcreteScenario(t *testing.T) {
	calc := NewImpactCalculator(nil)

	impact := calc.CalculateDepartmentImpact(sampleDepartment(), 100, 24, "")

	assert.InDelta(t, 120000, impact.FinancialImpact, 1e-6)
	assert.InDelta(t, 3450, impact.HoursSaved, 1e-9)
	assert.InDelta(t, 2.0, impact.FTEEquivalent, 1e-9)
	assert.Equal(t, 10, impact.Headcount)
	assert.Equal(t, "d1", impact.DepartmentID)
	assert.False(t, impact.HasBenchmark)
	assert.True(t, math.IsNaN(impact.ROI), "missing benchmark must propagate as NaN, got %v", impact.ROI)
}

func TestCalculateDepartmentImpact_CurveApplied(t *testing.T) {
	calc := NewImpactCalculator(nil)
	dept := sampleDepartment()

	tests := []struct {
		horizon int
		factor  float64
	}{
		{3, 0.4},
		{12, 0.9},
		{24, 1.0},
	}
	for _, tt := range tests {
		impact := calc.CalculateDepartmentImpact(dept, 100, tt.horizon, "")
		assert.InDelta(t, 120000*tt.factor, impact.FinancialImpact, 1e-6, "horizon %d", tt.horizon)
		assert.InDelta(t, 3450*tt.factor, impact.HoursSaved, 1e-9, "horizon %d", tt.horizon)
	}
}

func TestCalculateDepartmentImpact_ShortHorizonPenalty(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)
	dept := sampleDepartment()

	tests := []struct {
		name     string
		horizon  int
		adoption float64
		want     float64
	}{
		{"3 months full adoption", 3, 100, -6.25},
		{"3 months half adoption", 3, 50, -3.125},
		{"1 month full adoption", 1, 100, -18.75},
		{"at threshold", 4, 100, 0},
		{"zero horizon", 0, 100, -25},
		{"zero adoption", 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impact := calc.CalculateDepartmentImpact(dept, tt.adoption, tt.horizon, "tech")
			assert.InDelta(t, tt.want, impact.ROI, 1e-9)
		})
	}
}

func TestCalculateDepartmentImpact_BenchmarkRegime(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)

	impact := calc.CalculateDepartmentImpact(sampleDepartment(), 50, 12, "tech")

	assert.True(t, impact.HasBenchmark)
	assert.Equal(t, 200.0, impact.BenchmarkROI)
	assert.InDelta(t, 100, impact.ROI, 1e-9)
	assert.InDelta(t, 54000, impact.FinancialImpact, 1e-6)
	assert.InDelta(t, 1552.5, impact.HoursSaved, 1e-9)

	longer := calc.CalculateDepartmentImpact(sampleDepartment(), 50, 24, "tech")
	assert.InDelta(t, 200, longer.ROI, 1e-9)
}

func TestCalculateDepartmentImpact_UnknownIndustryIsNaN(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)

	impact := calc.CalculateDepartmentImpact(sampleDepartment(), 100, 12, "retail")

	assert.False(t, impact.HasBenchmark)
	assert.True(t, math.IsNaN(impact.ROI))
	assert.True(t, math.IsNaN(impact.BenchmarkROI))
}

func TestCalculateDepartmentImpact_ZeroHeadcount(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)
	dept := sampleDepartment()
	dept.Headcount = 0

	impact := calc.CalculateDepartmentImpact(dept, 100, 12, "tech")

	assert.Equal(t, 0.0, impact.FinancialImpact)
	assert.Equal(t, 0.0, impact.HoursSaved)
	assert.Equal(t, 0.0, impact.FTEEquivalent)
	assert.InDelta(t, 200, impact.ROI, 1e-9)
}

func TestCalculateDepartmentImpact_AdoptionBoundaries(t *testing.T) {
	calc := NewImpactCalculator(nil)

	none := calc.CalculateDepartmentImpact(sampleDepartment(), 0, 24, "")
	assert.Equal(t, 0.0, none.FinancialImpact)
	assert.Equal(t, 0.0, none.HoursSaved)

	full := calc.CalculateDepartmentImpact(sampleDepartment(), 100, 24, "")
	assert.InDelta(t, 120000, full.FinancialImpact, 1e-6)
}

func TestFTEIdentity(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)
	depts := []domain.Department{
		{Name: "Engineering", Headcount: 37, AvgSalary: 93000, EfficiencyGain: 17.5},
		{Name: "Support", Headcount: 12, AvgSalary: 41000, EfficiencyGain: 33},
		{Name: "Finance", Headcount: 5, AvgSalary: 88000, EfficiencyGain: 9},
	}

	for _, horizon := range []int{1, 3, 6, 9, 12, 24, 36} {
		for _, rate := range []float64{0, 25, 63.5, 100} {
			for _, d := range depts {
				impact := calc.CalculateDepartmentImpact(d, rate, horizon, "tech")
				assert.InDelta(t, impact.HoursSaved/AnnualWorkHours, impact.FTEEquivalent, 1e-9)
			}
			total := calc.CalculateTotalImpact(depts, rate, horizon, "tech")
			assert.InDelta(t, total.HoursSaved/AnnualWorkHours, total.FTEEquivalent, 1e-9)
		}
	}
}

func TestCalculateTotalImpact_Empty(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)

	for _, horizon := range []int{0, 3, 12} {
		total := calc.CalculateTotalImpact(nil, 75, horizon, "tech")
		assert.Equal(t, domain.TotalImpact{}, total)
	}
	assert.Equal(t, domain.TotalImpact{}, calc.CalculateTotalImpact([]domain.Department{}, 100, 24, ""))
}

func TestCalculateTotalImpact_SumsAndAggregateROI(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)
	depts := []domain.Department{
		sampleDepartment(),
		{Name: "Support", Headcount: 5, AvgSalary: 40000, EfficiencyGain: 30},
	}

	total := calc.CalculateTotalImpact(depts, 50, 12, "tech")

	eng := calc.CalculateDepartmentImpact(depts[0], 50, 12, "tech")
	sup := calc.CalculateDepartmentImpact(depts[1], 50, 12, "tech")
	require.InDelta(t, 100, eng.ROI, 1e-9)
	require.InDelta(t, 60, sup.ROI, 1e-9)

	assert.Equal(t, 15, total.Headcount)
	assert.InDelta(t, eng.FinancialImpact+sup.FinancialImpact, total.FinancialImpact, 1e-6)
	assert.InDelta(t, eng.HoursSaved+sup.HoursSaved, total.HoursSaved, 1e-9)
	// mean 80, then scaled by adoption and horizon/12 again
	assert.InDelta(t, 40, total.ROI, 1e-9)
}

func TestCalculateTotalImpact_ShortHorizonReplacesMean(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)
	depts := []domain.Department{sampleDepartment()}

	tests := []struct {
		name     string
		horizon  int
		adoption float64
		want     float64
	}{
		{"3 months full adoption", 3, 100, -7.5},
		{"3 months half adoption", 3, 50, -5.625},
		{"1 month full adoption", 1, 100, -22.5},
		{"at threshold", 4, 80, 0},
		{"zero horizon", 0, 100, -30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := calc.CalculateTotalImpact(depts, tt.adoption, tt.horizon, "tech")
			assert.InDelta(t, tt.want, total.ROI, 1e-9)
		})
	}
}

func TestCalculateTotalImpact_MissingBenchmarkPropagatesNaN(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)
	depts := []domain.Department{
		sampleDepartment(),
		{Name: "Legal", Headcount: 2, AvgSalary: 150000, EfficiencyGain: 10},
	}

	total := calc.CalculateTotalImpact(depts, 100, 12, "tech")
	assert.True(t, math.IsNaN(total.ROI))
	assert.False(t, math.IsNaN(total.FinancialImpact))

	short := calc.CalculateTotalImpact(depts, 100, 3, "tech")
	assert.InDelta(t, -7.5, short.ROI, 1e-9)
}

func TestCalculateTotalImpact_Idempotent(t *testing.T) {
	calc := NewImpactCalculator(testBenchmarks)
	depts := []domain.Department{sampleDepartment()}

	first := calc.CalculateTotalImpact(depts, 70, 9, "tech")
	second := calc.CalculateTotalImpact(depts, 70, 9, "tech")
	assert.Equal(t, first, second)
	assert.Equal(t, sampleDepartment(), depts[0], "inputs must not be mutated")
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	calc := NewImpactCalculator(nil)
	calc.SetLogger(nil)
	assert.IsType(t, NopLogger{}, calc.Logger)
}
