package benchmark

import "github.com/airoi/roi-calculator/internal/domain"

// Default returns the built-in benchmark tables.
func Default() *Table {
	t, err := NewTable(defaultIndustries)
	if err != nil {
		panic("benchmark: invalid built-in table: " + err.Error())
	}
	return t
}

var defaultIndustries = []domain.Industry{
	{
		ID:   "technology",
		Name: "Technology & Software",
		Benchmarks: []domain.BenchmarkEntry{
			{DepartmentName: "Engineering", ROIPercent: 250},
			{DepartmentName: "Customer Support", ROIPercent: 210},
			{DepartmentName: "Marketing", ROIPercent: 160},
			{DepartmentName: "Sales", ROIPercent: 140},
			{DepartmentName: "Human Resources", ROIPercent: 110},
			{DepartmentName: "Finance", ROIPercent: 120},
		},
		DefaultDepartments: []domain.Department{
			{ID: "tech-eng", Name: "Engineering", Headcount: 40, AvgSalary: 125000, EfficiencyGain: 25},
			{ID: "tech-support", Name: "Customer Support", Headcount: 20, AvgSalary: 55000, EfficiencyGain: 35},
			{ID: "tech-marketing", Name: "Marketing", Headcount: 10, AvgSalary: 85000, EfficiencyGain: 20},
			{ID: "tech-sales", Name: "Sales", Headcount: 15, AvgSalary: 90000, EfficiencyGain: 15},
		},
	},
	{
		ID:   "healthcare",
		Name: "Healthcare",
		Benchmarks: []domain.BenchmarkEntry{
			{DepartmentName: "Administration", ROIPercent: 180},
			{DepartmentName: "Billing", ROIPercent: 220},
			{DepartmentName: "Clinical Documentation", ROIPercent: 150},
			{DepartmentName: "Patient Services", ROIPercent: 130},
			{DepartmentName: "IT", ROIPercent: 160},
		},
		DefaultDepartments: []domain.Department{
			{ID: "hc-admin", Name: "Administration", Headcount: 30, AvgSalary: 52000, EfficiencyGain: 25},
			{ID: "hc-billing", Name: "Billing", Headcount: 15, AvgSalary: 48000, EfficiencyGain: 30},
			{ID: "hc-clinical", Name: "Clinical Documentation", Headcount: 50, AvgSalary: 78000, EfficiencyGain: 15},
		},
	},
	{
		ID:   "financial-services",
		Name: "Financial Services",
		Benchmarks: []domain.BenchmarkEntry{
			{DepartmentName: "Operations", ROIPercent: 200},
			{DepartmentName: "Compliance", ROIPercent: 170},
			{DepartmentName: "Customer Service", ROIPercent: 190},
			{DepartmentName: "Risk Analysis", ROIPercent: 150},
			{DepartmentName: "Accounting", ROIPercent: 160},
		},
		DefaultDepartments: []domain.Department{
			{ID: "fs-ops", Name: "Operations", Headcount: 35, AvgSalary: 72000, EfficiencyGain: 25},
			{ID: "fs-compliance", Name: "Compliance", Headcount: 12, AvgSalary: 98000, EfficiencyGain: 20},
			{ID: "fs-service", Name: "Customer Service", Headcount: 25, AvgSalary: 50000, EfficiencyGain: 30},
		},
	},
	{
		ID:   "manufacturing",
		Name: "Manufacturing",
		Benchmarks: []domain.BenchmarkEntry{
			{DepartmentName: "Production Planning", ROIPercent: 140},
			{DepartmentName: "Quality Control", ROIPercent: 170},
			{DepartmentName: "Supply Chain", ROIPercent: 190},
			{DepartmentName: "Maintenance", ROIPercent: 120},
		},
		DefaultDepartments: []domain.Department{
			{ID: "mfg-planning", Name: "Production Planning", Headcount: 10, AvgSalary: 70000, EfficiencyGain: 20},
			{ID: "mfg-quality", Name: "Quality Control", Headcount: 18, AvgSalary: 62000, EfficiencyGain: 18},
			{ID: "mfg-supply", Name: "Supply Chain", Headcount: 14, AvgSalary: 68000, EfficiencyGain: 22},
		},
	},
	{
		ID:   "retail",
		Name: "Retail & E-commerce",
		Benchmarks: []domain.BenchmarkEntry{
			{DepartmentName: "Merchandising", ROIPercent: 150},
			{DepartmentName: "Customer Service", ROIPercent: 200},
			{DepartmentName: "Marketing", ROIPercent: 180},
			{DepartmentName: "Inventory Management", ROIPercent: 170},
		},
		DefaultDepartments: []domain.Department{
			{ID: "rt-merch", Name: "Merchandising", Headcount: 12, AvgSalary: 60000, EfficiencyGain: 18},
			{ID: "rt-service", Name: "Customer Service", Headcount: 40, AvgSalary: 38000, EfficiencyGain: 30},
			{ID: "rt-marketing", Name: "Marketing", Headcount: 8, AvgSalary: 75000, EfficiencyGain: 25},
		},
	},
	{
		ID:   "professional-services",
		Name: "Professional Services",
		Benchmarks: []domain.BenchmarkEntry{
			{DepartmentName: "Consulting", ROIPercent: 190},
			{DepartmentName: "Legal", ROIPercent: 210},
			{DepartmentName: "Research", ROIPercent: 230},
			{DepartmentName: "Business Development", ROIPercent: 140},
		},
		DefaultDepartments: []domain.Department{
			{ID: "ps-consulting", Name: "Consulting", Headcount: 45, AvgSalary: 110000, EfficiencyGain: 22},
			{ID: "ps-legal", Name: "Legal", Headcount: 8, AvgSalary: 140000, EfficiencyGain: 25},
			{ID: "ps-research", Name: "Research", Headcount: 10, AvgSalary: 80000, EfficiencyGain: 30},
		},
	},
}
