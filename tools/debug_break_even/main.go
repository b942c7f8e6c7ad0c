package main

import (
	"fmt"
	"math"
	"os"

	calc "github.com/airoi/roi-calculator/internal/calculation"
	"github.com/airoi/roi-calculator/internal/config"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <input-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser(nil)
	input, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewImpactCalculator(p.Benchmarks)
	timeline := engine.GenerateTimelineData(input.Departments, input.AdoptionRate, input.TimeHorizon, input.InvestmentCost, input.IndustryID)

	fmt.Println("Month,MonthlyReturn,Cumulative,ROI,Delta")
	prev := 0.0
	for i, pt := range timeline {
		delta := 0.0
		if i > 0 {
			delta = pt.CumulativeReturn - prev
		}
		prev = pt.CumulativeReturn
		fmt.Printf("%d,%s,%s,%s,%s\n", pt.Month, fixed(pt.FinancialImpact), fixed(pt.CumulativeReturn), fixed(pt.ROI), fixed(delta))
	}

	be := calc.FindBreakEven(timeline)
	if be == nil {
		fmt.Println("break-even: not reached")
		return
	}
	fmt.Printf("break-even: month %d fraction %s exact %s\n", be.Month, fixed(be.Fraction), fixed(be.Exact))
}

func fixed(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
