package cli

import (
	"fmt"

	"github.com/airoi/roi-calculator/internal/calculation"
	"github.com/airoi/roi-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var inputFile string
	var showBreakEven bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the monthly cumulative return series as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := app.Parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			timeline := app.Calculator.GenerateTimelineData(input.Departments, input.AdoptionRate, input.TimeHorizon, input.InvestmentCost, input.IndustryID)
			data, err := output.WriteTimelineCSV(timeline)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}

			if showBreakEven {
				if be := calculation.FindBreakEven(timeline); be != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "break-even: month %d (%s months)\n", be.Month, output.FormatNumber(be.Exact, 2))
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), "break-even: not reached within horizon")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Analysis input file (YAML)")
	cmd.Flags().BoolVar(&showBreakEven, "break-even", false, "Report the break-even month on stderr")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
