package output

import (
	"io"

	"github.com/airoi/roi-calculator/internal/domain"
)

// GenerateReport formats the report with the named formatter and writes it to w.
func GenerateReport(w io.Writer, report *domain.ImpactReport, format string) error {
	f, err := GetFormatterByName(format)
	if err != nil {
		return err
	}
	return Render(w, f, report)
}

// Render runs a formatter and writes the result to w.
func Render(w io.Writer, f Formatter, report *domain.ImpactReport) error {
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// GenerateReportFile formats the report and writes it to a timestamped file in dir.
func GenerateReportFile(report *domain.ImpactReport, format, dir string) (string, error) {
	f, err := GetFormatterByName(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, dir)
}
