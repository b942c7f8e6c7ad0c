package cli

import (
	"fmt"

	"github.com/airoi/roi-calculator/internal/config"
	"github.com/spf13/cobra"
)

func newExampleCmd(app *App) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example analysis input",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveInput(app.Parser.CreateExampleInput(), outputFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example input written to %s\n", outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "example_input.yaml", "Destination file")
	return cmd
}
