package cli

import (
	"fmt"

	"github.com/airoi/roi-calculator/internal/output"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newIndustriesCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "industries",
		Short: "List industries with their benchmark ROI and preset departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			industries := app.Benchmarks.Industries()
			w := cmd.OutOrStdout()

			if asJSON {
				data, err := json.MarshalIndent(industries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode industries: %w", err)
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			}

			for _, ind := range industries {
				fmt.Fprintf(w, "%s (%s)\n", ind.Name, ind.ID)
				for _, b := range ind.Benchmarks {
					fmt.Fprintf(w, "  %-28s %s\n", b.DepartmentName, output.FormatPercentage(b.ROIPercent))
				}
				if len(ind.DefaultDepartments) > 0 {
					fmt.Fprintf(w, "  presets: %d departments\n", len(ind.DefaultDepartments))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}
