package cli

import (
	"fmt"
	"os"

	"github.com/airoi/roi-calculator/internal/output"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalculateCmd(app *App) *cobra.Command {
	var inputFile, format, outputFile string
	var save bool

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Project impact, timeline and ROI for an input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := app.Parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}
			report := app.Calculator.BuildReport(input)

			if format == "" {
				format = app.Settings.Output.Format
			}

			switch {
			case save:
				path, err := output.GenerateReportFile(report, format, app.Settings.Output.Directory)
				if err != nil {
					return err
				}
				app.Logger.Info("report written", zap.String("path", path), zap.String("format", format))
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				return nil
			case outputFile != "":
				f, err := output.GetFormatterByName(format)
				if err != nil {
					return err
				}
				data, err := f.Format(report)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outputFile, data, 0644); err != nil {
					return fmt.Errorf("failed to write report %s: %w", outputFile, err)
				}
				app.Logger.Info("report written", zap.String("path", outputFile), zap.String("format", f.Name()))
				return nil
			case output.NormalizeFormatName(format) == "console":
				styled := output.ConsoleFormatter{Renderer: lipgloss.NewRenderer(cmd.OutOrStdout())}
				return output.Render(cmd.OutOrStdout(), styled, report)
			}

			return output.GenerateReport(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Analysis input file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "", fmt.Sprintf("Output format %v (default from settings)", output.AvailableFormatterNames()))
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "Write a timestamped report into the configured output directory")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
