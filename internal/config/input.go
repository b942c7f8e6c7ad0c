package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/airoi/roi-calculator/internal/benchmark"
	"github.com/airoi/roi-calculator/internal/domain"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput wraps every validation failure.
var ErrInvalidInput = errors.New("invalid analysis input")

// Input limits enforced at the boundary. The engine itself does not check ranges.
const (
	MaxTimeHorizonMonths = 120
	MaxAdoptionRate      = 100.0
	MaxEfficiencyGain    = 100.0
)

// InputParser handles parsing and validation of analysis input files
type InputParser struct {
	Benchmarks *benchmark.Table
}

// NewInputParser creates a new input parser. A nil table uses the built-in benchmarks.
func NewInputParser(benchmarks *benchmark.Table) *InputParser {
	if benchmarks == nil {
		benchmarks = benchmark.Default()
	}
	return &InputParser{Benchmarks: benchmarks}
}

// LoadFromFile loads an analysis input from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.AnalysisInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, completes and validates an analysis input
func (ip *InputParser) Parse(data []byte) (*domain.AnalysisInput, error) {
	var input domain.AnalysisInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.Prepare(&input); err != nil {
		return nil, err
	}
	return &input, nil
}

// Prepare seeds industry defaults, assigns missing department ids and validates.
func (ip *InputParser) Prepare(input *domain.AnalysisInput) error {
	if len(input.Departments) == 0 && input.UseIndustryDefaults && input.IndustryID != "" {
		depts, err := ip.Benchmarks.DefaultDepartments(input.IndustryID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		input.Departments = depts
	}
	AssignDepartmentIDs(input.Departments)

	if err := ip.ValidateInput(input); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	return nil
}

// AssignDepartmentIDs gives every department without an id a random UUID.
func AssignDepartmentIDs(departments []domain.Department) {
	for i := range departments {
		if departments[i].ID == "" {
			departments[i].ID = uuid.NewString()
		}
	}
}

// ValidateInput validates the loaded input
func (ip *InputParser) ValidateInput(input *domain.AnalysisInput) error {
	if !isFinite(input.AdoptionRate) || input.AdoptionRate < 0 || input.AdoptionRate > MaxAdoptionRate {
		return invalid("adoption rate must be between 0 and 100, got %v", input.AdoptionRate)
	}
	if input.TimeHorizon < 1 || input.TimeHorizon > MaxTimeHorizonMonths {
		return invalid("time horizon must be between 1 and %d months, got %d", MaxTimeHorizonMonths, input.TimeHorizon)
	}
	if !isFinite(input.InvestmentCost) || input.InvestmentCost < 0 {
		return invalid("investment cost cannot be negative")
	}
	if input.IndustryID != "" && !ip.Benchmarks.Has(input.IndustryID) {
		return invalid("unknown industry %q", input.IndustryID)
	}

	for i := range input.Departments {
		if err := validateDepartment(&input.Departments[i]); err != nil {
			return fmt.Errorf("department %d (%s): %w", i, input.Departments[i].Name, err)
		}
	}

	return nil
}

// validateDepartment validates a single department's data
func validateDepartment(d *domain.Department) error {
	if d.Name == "" {
		return invalid("department name is required")
	}
	if d.Headcount <= 0 {
		return invalid("headcount must be positive")
	}
	if !isFinite(d.AvgSalary) || d.AvgSalary <= 0 {
		return invalid("average salary must be positive")
	}
	if !isFinite(d.EfficiencyGain) || d.EfficiencyGain <= 0 || d.EfficiencyGain > MaxEfficiencyGain {
		return invalid("efficiency gain must be greater than 0 and at most 100")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SaveInput writes an analysis input to a YAML file
func SaveInput(input *domain.AnalysisInput, filename string) error {
	b, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode input: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleInput creates an example analysis input
func (ip *InputParser) CreateExampleInput() *domain.AnalysisInput {
	return &domain.AnalysisInput{
		Name:         "Technology rollout, first year",
		IndustryID:   "technology",
		AdoptionRate: 75,
		TimeHorizon:  12,
		Departments: []domain.Department{
			{ID: "eng", Name: "Engineering", Headcount: 40, AvgSalary: 125000, EfficiencyGain: 25},
			{ID: "support", Name: "Customer Support", Headcount: 20, AvgSalary: 55000, EfficiencyGain: 35},
			{ID: "marketing", Name: "Marketing", Headcount: 10, AvgSalary: 85000, EfficiencyGain: 20},
		},
	}
}
