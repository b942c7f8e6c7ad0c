package output

import (
	"github.com/airoi/roi-calculator/internal/domain"
	"github.com/goccy/go-json"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *domain.ImpactReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
