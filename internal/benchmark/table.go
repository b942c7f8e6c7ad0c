// Package benchmark holds the industry reference data used by the projection
// engine: published ROI percentages per department type, and default
// department presets for seeding an analysis.
package benchmark

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/airoi/roi-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnknownIndustry is returned when an industry id has no table entry.
var ErrUnknownIndustry = errors.New("unknown industry")

// Table is an immutable set of industries indexed by id.
type Table struct {
	industries map[string]domain.Industry
	order      []string
}

// file is the on-disk layout of a benchmark override file.
type file struct {
	Industries []domain.Industry `yaml:"industries"`
}

// NewTable indexes the given industries. Ids are matched case-insensitively;
// a duplicate id is an error.
func NewTable(industries []domain.Industry) (*Table, error) {
	t := &Table{industries: make(map[string]domain.Industry, len(industries))}
	for _, ind := range industries {
		id := normalize(ind.ID)
		if id == "" {
			return nil, fmt.Errorf("industry %q has no id", ind.Name)
		}
		if _, exists := t.industries[id]; exists {
			return nil, fmt.Errorf("duplicate industry id %q", ind.ID)
		}
		for i, b := range ind.Benchmarks {
			if normalize(b.DepartmentName) == "" {
				return nil, fmt.Errorf("industry %q benchmark %d has no department name", ind.ID, i)
			}
		}
		t.industries[id] = copyIndustry(ind)
		t.order = append(t.order, id)
	}
	return t, nil
}

// LoadFromFile reads a YAML benchmark file replacing the built-in tables.
func LoadFromFile(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark file %s: %w", filename, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark YAML: %w", err)
	}
	if len(f.Industries) == 0 {
		return nil, fmt.Errorf("benchmark file %s defines no industries", filename)
	}
	return NewTable(f.Industries)
}

// DepartmentROI returns the benchmark ROI for departmentName within an
// industry. An exact case-insensitive name match wins; otherwise the first
// entry whose name contains, or is contained in, departmentName is used.
func (t *Table) DepartmentROI(industryID, departmentName string) (float64, bool) {
	ind, ok := t.industries[normalize(industryID)]
	if !ok {
		return 0, false
	}
	name := normalize(departmentName)
	for _, b := range ind.Benchmarks {
		if normalize(b.DepartmentName) == name {
			return b.ROIPercent, true
		}
	}
	if name == "" {
		return 0, false
	}
	for _, b := range ind.Benchmarks {
		candidate := normalize(b.DepartmentName)
		if candidate == "" {
			continue
		}
		if strings.Contains(candidate, name) || strings.Contains(name, candidate) {
			return b.ROIPercent, true
		}
	}
	return 0, false
}

// Industry returns a copy of the industry with the given id.
func (t *Table) Industry(id string) (domain.Industry, error) {
	ind, ok := t.industries[normalize(id)]
	if !ok {
		return domain.Industry{}, fmt.Errorf("%w: %q", ErrUnknownIndustry, id)
	}
	return copyIndustry(ind), nil
}

// IndustryName returns the display name for an industry id.
func (t *Table) IndustryName(id string) (string, bool) {
	ind, ok := t.industries[normalize(id)]
	return ind.Name, ok
}

// Has reports whether the industry id exists.
func (t *Table) Has(id string) bool {
	_, ok := t.industries[normalize(id)]
	return ok
}

// DefaultDepartments returns the preset departments for an industry.
func (t *Table) DefaultDepartments(id string) ([]domain.Department, error) {
	ind, err := t.Industry(id)
	if err != nil {
		return nil, err
	}
	return ind.DefaultDepartments, nil
}

// Industries returns every industry in definition order.
func (t *Table) Industries() []domain.Industry {
	out := make([]domain.Industry, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, copyIndustry(t.industries[id]))
	}
	return out
}

// IDs returns the sorted industry ids.
func (t *Table) IDs() []string {
	ids := append([]string(nil), t.order...)
	sort.Strings(ids)
	return ids
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func copyIndustry(ind domain.Industry) domain.Industry {
	ind.Benchmarks = append([]domain.BenchmarkEntry(nil), ind.Benchmarks...)
	ind.DefaultDepartments = append([]domain.Department(nil), ind.DefaultDepartments...)
	return ind
}
