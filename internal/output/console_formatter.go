package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/airoi/roi-calculator/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ConsoleFormatter renders a human-readable summary. Renderer controls
// styling; nil renders plain text suitable for files.
type ConsoleFormatter struct {
	Renderer *lipgloss.Renderer
}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.ImpactReport) ([]byte, error) {
	var buf bytes.Buffer
	r := c.Renderer
	if r == nil {
		r = lipgloss.NewRenderer(&buf)
	}
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	heading := r.NewStyle().Bold(true).Underline(true)
	label := r.NewStyle().Width(20)
	negative := r.NewStyle().Foreground(lipgloss.Color("9"))

	pct := func(v float64) string {
		s := FormatPercentage(v)
		if isFinite(v) && v < 0 {
			return negative.Render(s)
		}
		return s
	}
	row := func(name, value string) {
		fmt.Fprintf(&buf, "%s %s\n", label.Render(name), value)
	}

	name := report.Input.Name
	if name == "" {
		name = "Untitled analysis"
	}
	fmt.Fprintln(&buf, title.Render("AI ROI PROJECTION: "+name))
	fmt.Fprintln(&buf, "================================")
	if report.IndustryName != "" {
		row("Industry:", report.IndustryName)
	}
	row("Adoption rate:", FormatPercentage(report.Input.AdoptionRate))
	row("Time horizon:", strconv.Itoa(report.Input.TimeHorizon)+" months")
	row("Investment:", FormatCurrency(report.Investment))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, heading.Render("DEPARTMENTS"))
	fmt.Fprintf(&buf, "%-24s %9s %16s %12s %8s %10s\n", "Department", "Headcount", "Impact", "Hours", "FTE", "ROI")
	for _, d := range report.Departments {
		fmt.Fprintf(&buf, "%-24s %9d %16s %12s %8s %10s\n",
			truncate(d.DepartmentName, 24),
			d.Headcount,
			FormatCurrency(d.FinancialImpact),
			FormatNumber(d.HoursSaved, 1),
			FormatNumber(d.FTEEquivalent, 2),
			FormatPercentage(d.ROI),
		)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, heading.Render("TOTAL"))
	row("Financial impact:", FormatCurrency(report.Total.FinancialImpact))
	row("Hours saved:", FormatNumber(report.Total.HoursSaved, 1))
	row("FTE equivalent:", FormatNumber(report.Total.FTEEquivalent, 2))
	row("Headcount:", strconv.Itoa(report.Total.Headcount))
	row("ROI:", pct(report.Total.ROI))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, heading.Render("TIMELINE"))
	fmt.Fprintf(&buf, "%5s %16s %18s %10s\n", "Month", "Return", "Cumulative", "ROI")
	for _, p := range report.Timeline {
		fmt.Fprintf(&buf, "%5d %16s %18s %10s\n", p.Month, FormatCurrency(p.FinancialImpact), FormatCurrency(p.CumulativeReturn), FormatPercentage(p.ROI))
	}
	fmt.Fprintln(&buf)

	if be := report.BreakEven; be != nil {
		row("Break-even:", fmt.Sprintf("month %d (%s months)", be.Month, FormatNumber(be.Exact, 2)))
	} else {
		row("Break-even:", "not reached within horizon")
	}
	row("Final ROI:", pct(report.FinalROI))
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
