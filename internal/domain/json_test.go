package domain

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentImpactJSON_NonFiniteAsNull(t *testing.T) {
	impact := DepartmentImpact{
		DepartmentName:  "Legal",
		FinancialImpact: 1200.5,
		HoursSaved:      100,
		FTEEquivalent:   100.0 / 1725,
		Headcount:       3,
		ROI:             math.NaN(),
		BenchmarkROI:    math.NaN(),
	}

	data, err := json.Marshal(impact)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["roi"])
	assert.Nil(t, decoded["benchmarkRoi"])
	assert.Equal(t, 1200.5, decoded["financialImpact"])
	assert.Equal(t, false, decoded["hasBenchmark"])
}

func TestTimelinePointJSON_Infinity(t *testing.T) {
	data, err := json.Marshal(TimelinePoint{Month: 0, Investment: 0, CumulativeReturn: 0, ROI: math.Inf(1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"month":0,"financialImpact":0,"investment":0,"cumulativeReturn":0,"roi":null}`, string(data))
}

func TestImpactReportJSON_NestedValues(t *testing.T) {
	report := ImpactReport{
		Input:      AnalysisInput{AdoptionRate: 50, TimeHorizon: 6},
		Total:      TotalImpact{FinancialImpact: 10, ROI: math.NaN()},
		Investment: 15000,
		FinalROI:   math.NaN(),
		Timeline:   []TimelinePoint{{Month: 0, Investment: 15000, CumulativeReturn: -15000, ROI: -100}},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["finalRoi"])
	assert.Equal(t, 15000.0, decoded["investment"])
	total := decoded["total"].(map[string]any)
	assert.Nil(t, total["roi"])
	timeline := decoded["timeline"].([]any)
	require.Len(t, timeline, 1)
	assert.Equal(t, -100.0, timeline[0].(map[string]any)["roi"])
}

func TestAnalysisInputTotalHeadcount(t *testing.T) {
	in := AnalysisInput{Departments: []Department{{Headcount: 4}, {Headcount: 6}}}
	assert.Equal(t, 10, in.TotalHeadcount())
	assert.Equal(t, 0, (&AnalysisInput{}).TotalHeadcount())
}
