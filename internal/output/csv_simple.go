package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/airoi/roi-calculator/internal/domain"
)

// TimelineCSVFormatter writes the month-by-month series, one row per month.
type TimelineCSVFormatter struct{}

func (c TimelineCSVFormatter) Name() string      { return "csv" }
func (c TimelineCSVFormatter) Extension() string { return "csv" }

func (c TimelineCSVFormatter) Format(report *domain.ImpactReport) ([]byte, error) {
	return WriteTimelineCSV(report.Timeline)
}

// WriteTimelineCSV renders a timeline with a header row.
func WriteTimelineCSV(timeline []domain.TimelinePoint) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "FinancialImpact", "Investment", "CumulativeReturn", "ROI"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range timeline {
		row := []string{
			strconv.Itoa(p.Month),
			csvNumber(p.FinancialImpact),
			csvNumber(p.Investment),
			csvNumber(p.CumulativeReturn),
			csvNumber(p.ROI),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// DepartmentCSVFormatter writes one row per department followed by a total row.
type DepartmentCSVFormatter struct{}

func (c DepartmentCSVFormatter) Name() string      { return "departments-csv" }
func (c DepartmentCSVFormatter) Extension() string { return "csv" }

func (c DepartmentCSVFormatter) Format(report *domain.ImpactReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Department", "Headcount", "FinancialImpact", "HoursSaved", "FTEEquivalent", "ROI", "BenchmarkROI"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, d := range report.Departments {
		row := []string{
			d.DepartmentName,
			strconv.Itoa(d.Headcount),
			csvNumber(d.FinancialImpact),
			csvNumber(d.HoursSaved),
			csvNumber(d.FTEEquivalent),
			csvNumber(d.ROI),
			csvNumber(d.BenchmarkROI),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	total := report.Total
	if err := w.Write([]string{
		"TOTAL",
		strconv.Itoa(total.Headcount),
		csvNumber(total.FinancialImpact),
		csvNumber(total.HoursSaved),
		csvNumber(total.FTEEquivalent),
		csvNumber(total.ROI),
		"",
	}); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
