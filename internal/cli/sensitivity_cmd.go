package cli

import (
	"fmt"
	"math"

	"github.com/airoi/roi-calculator/internal/config"
	"github.com/airoi/roi-calculator/internal/output"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newSensitivityCmd(app *App) *cobra.Command {
	var inputFile string
	var minRate, maxRate float64
	var steps int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Sweep the adoption rate and compare outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range []float64{minRate, maxRate} {
				if math.IsNaN(r) || r < 0 || r > config.MaxAdoptionRate {
					return fmt.Errorf("%w: sweep adoption rates must be between 0 and %v, got %v",
						config.ErrInvalidInput, config.MaxAdoptionRate, r)
				}
			}

			input, err := app.Parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}
			points, err := app.Calculator.AdoptionSensitivity(input, minRate, maxRate, steps)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(points, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode sensitivity results: %w", err)
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			}

			fmt.Fprintf(w, "%-10s %18s %12s %18s %12s\n", "Adoption", "Annual Impact", "Total ROI", "Final Return", "Final ROI")
			for _, p := range points {
				fmt.Fprintf(w, "%-10s %18s %12s %18s %12s\n",
					output.FormatPercentage(p.AdoptionRate),
					output.FormatCurrency(p.Total.FinancialImpact),
					output.FormatPercentage(p.Total.ROI),
					output.FormatCurrency(p.FinalReturn),
					output.FormatPercentage(p.FinalROI),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Analysis input file (YAML)")
	cmd.Flags().Float64Var(&minRate, "min", 25, "Lowest adoption rate (percent)")
	cmd.Flags().Float64Var(&maxRate, "max", 100, "Highest adoption rate (percent)")
	cmd.Flags().IntVar(&steps, "steps", 4, "Number of rates to evaluate")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
