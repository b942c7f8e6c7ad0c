package domain

import (
	"math"

	"github.com/goccy/go-json"
)

// NaN and ±Inf are legitimate engine outputs but have no JSON encoding.
// They are written as null so browser callers can render "N/A".

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// MarshalJSON encodes non-finite values as null.
func (d DepartmentImpact) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DepartmentID    string   `json:"departmentId,omitempty"`
		DepartmentName  string   `json:"departmentName"`
		FinancialImpact *float64 `json:"financialImpact"`
		HoursSaved      *float64 `json:"hoursSaved"`
		FTEEquivalent   *float64 `json:"fteEquivalent"`
		Headcount       int      `json:"headcount"`
		ROI             *float64 `json:"roi"`
		HasBenchmark    bool     `json:"hasBenchmark"`
		BenchmarkROI    *float64 `json:"benchmarkRoi"`
	}{
		DepartmentID:    d.DepartmentID,
		DepartmentName:  d.DepartmentName,
		FinancialImpact: finite(d.FinancialImpact),
		HoursSaved:      finite(d.HoursSaved),
		FTEEquivalent:   finite(d.FTEEquivalent),
		Headcount:       d.Headcount,
		ROI:             finite(d.ROI),
		HasBenchmark:    d.HasBenchmark,
		BenchmarkROI:    finite(d.BenchmarkROI),
	})
}

// MarshalJSON encodes non-finite values as null.
func (t TotalImpact) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FinancialImpact *float64 `json:"financialImpact"`
		HoursSaved      *float64 `json:"hoursSaved"`
		FTEEquivalent   *float64 `json:"fteEquivalent"`
		Headcount       int      `json:"headcount"`
		ROI             *float64 `json:"roi"`
	}{
		FinancialImpact: finite(t.FinancialImpact),
		HoursSaved:      finite(t.HoursSaved),
		FTEEquivalent:   finite(t.FTEEquivalent),
		Headcount:       t.Headcount,
		ROI:             finite(t.ROI),
	})
}

// MarshalJSON encodes non-finite values as null.
func (p TimelinePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Month            int      `json:"month"`
		FinancialImpact  *float64 `json:"financialImpact"`
		Investment       *float64 `json:"investment"`
		CumulativeReturn *float64 `json:"cumulativeReturn"`
		ROI              *float64 `json:"roi"`
	}{
		Month:            p.Month,
		FinancialImpact:  finite(p.FinancialImpact),
		Investment:       finite(p.Investment),
		CumulativeReturn: finite(p.CumulativeReturn),
		ROI:              finite(p.ROI),
	})
}

// MarshalJSON encodes non-finite values as null.
func (s SensitivityPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AdoptionRate float64     `json:"adoptionRate"`
		Total        TotalImpact `json:"total"`
		FinalROI     *float64    `json:"finalRoi"`
		FinalReturn  *float64    `json:"finalCumulativeReturn"`
	}{
		AdoptionRate: s.AdoptionRate,
		Total:        s.Total,
		FinalROI:     finite(s.FinalROI),
		FinalReturn:  finite(s.FinalReturn),
	})
}

// MarshalJSON encodes non-finite values as null.
func (r ImpactReport) MarshalJSON() ([]byte, error) {
	type plain ImpactReport
	return json.Marshal(struct {
		plain
		Investment *float64 `json:"investment"`
		FinalROI   *float64 `json:"finalRoi"`
	}{
		plain:      plain(r),
		Investment: finite(r.Investment),
		FinalROI:   finite(r.FinalROI),
	})
}
