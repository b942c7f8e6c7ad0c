package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/airoi/roi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsPresets(t *testing.T) {
	table := Default()

	ids := table.IDs()
	assert.Contains(t, ids, "technology")
	assert.Contains(t, ids, "healthcare")
	assert.Len(t, table.Industries(), len(ids))

	for _, ind := range table.Industries() {
		assert.NotEmpty(t, ind.Benchmarks, ind.ID)
		assert.NotEmpty(t, ind.DefaultDepartments, ind.ID)
		for _, d := range ind.DefaultDepartments {
			_, ok := table.DepartmentROI(ind.ID, d.Name)
			assert.True(t, ok, "preset %s/%s should have a benchmark", ind.ID, d.Name)
		}
	}
}

func TestDepartmentROI_Matching(t *testing.T) {
	table, err := NewTable([]domain.Industry{{
		ID: "acme",
		Benchmarks: []domain.BenchmarkEntry{
			{DepartmentName: "Customer Support", ROIPercent: 200},
			{DepartmentName: "Support", ROIPercent: 90},
			{DepartmentName: "Engineering", ROIPercent: 150},
		},
	}})
	require.NoError(t, err)

	tests := []struct {
		name       string
		industry   string
		department string
		want       float64
		found      bool
	}{
		{"exact case-insensitive beats earlier substring", "acme", "SUPPORT", 90, true},
		{"exact match", "acme", "Engineering", 150, true},
		{"industry id case-insensitive", "ACME", "engineering", 150, true},
		{"benchmark contained in name", "acme", "Platform Engineering", 150, true},
		{"name contained in benchmark", "acme", "Engineer", 150, true},
		{"first substring wins", "acme", "Tier 1 Customer Support Desk", 200, true},
		{"no match", "acme", "Legal", 0, false},
		{"empty name", "acme", "", 0, false},
		{"unknown industry", "other", "Engineering", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.DepartmentROI(tt.industry, tt.department)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndustryName(t *testing.T) {
	name, ok := Default().IndustryName("Healthcare")
	assert.True(t, ok)
	assert.Equal(t, "Healthcare", name)

	_, ok = Default().IndustryName("nope")
	assert.False(t, ok)
}

func TestIndustry_Unknown(t *testing.T) {
	_, err := Default().Industry("nope")
	assert.ErrorIs(t, err, ErrUnknownIndustry)

	_, err = Default().DefaultDepartments("nope")
	assert.ErrorIs(t, err, ErrUnknownIndustry)
}

func TestDefaultDepartments_ReturnsCopy(t *testing.T) {
	table := Default()
	depts, err := table.DefaultDepartments("technology")
	require.NoError(t, err)
	require.NotEmpty(t, depts)

	depts[0].Headcount = 999

	again, err := table.DefaultDepartments("technology")
	require.NoError(t, err)
	assert.NotEqual(t, 999, again[0].Headcount)
}

func TestNewTable_Errors(t *testing.T) {
	_, err := NewTable([]domain.Industry{{Name: "No id"}})
	assert.Error(t, err)

	_, err = NewTable([]domain.Industry{{ID: "a"}, {ID: "A"}})
	assert.Error(t, err)

	_, err = NewTable([]domain.Industry{{ID: "a", Benchmarks: []domain.BenchmarkEntry{
		{DepartmentName: "Sales", ROIPercent: 100},
		{DepartmentName: "  ", ROIPercent: 900},
	}}})
	assert.ErrorContains(t, err, "no department name")
}

func TestLoadFromFile_EmptyDepartmentName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := "industries:\n" +
		"  - id: logistics\n" +
		"    name: Logistics\n" +
		"    benchmarks:\n" +
		"      - department: \"\"\n" +
		"        roi_percent: 900\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	content := "industries:\n" +
		"  - id: logistics\n" +
		"    name: Logistics\n" +
		"    benchmarks:\n" +
		"      - department: Dispatch\n" +
		"        roi_percent: 175\n" +
		"    default_departments:\n" +
		"      - id: lg-dispatch\n" +
		"        name: Dispatch\n" +
		"        headcount: 12\n" +
		"        avg_salary: 51000\n" +
		"        efficiency_gain: 20\n"
	path := filepath.Join(t.TempDir(), "benchmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadFromFile(path)
	require.NoError(t, err)

	roi, ok := table.DepartmentROI("logistics", "dispatch")
	assert.True(t, ok)
	assert.Equal(t, 175.0, roi)
	assert.False(t, table.Has("technology"))

	depts, err := table.DefaultDepartments("logistics")
	require.NoError(t, err)
	require.Len(t, depts, 1)
	assert.Equal(t, 51000.0, depts[0].AvgSalary)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("industries: []\n"), 0o644))
	_, err = LoadFromFile(empty)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("industries: [\n"), 0o644))
	_, err = LoadFromFile(bad)
	assert.Error(t, err)
}
