package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/airoi/roi-calculator/internal/domain"
	"github.com/goccy/go-json"
)

// HTMLFormatter produces a standalone HTML report with an inline timeline chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"num":  FormatNumber,
	"neg":  func(v float64) bool { return isFinite(v) && v < 0 },
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.ImpactReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
