package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/airoi/roi-calculator/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection engine as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == 0 {
				port = app.Settings.Server.Port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h := server.NewHandler(app.Logger, app.Benchmarks)
			return server.ListenAndServe(ctx, fmt.Sprintf(":%d", port), h, int(app.Settings.Server.MaxRequestBody))
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from settings)")
	return cmd
}
