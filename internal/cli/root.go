// Package cli wires the roicalc cobra commands.
package cli

import (
	"fmt"

	"github.com/airoi/roi-calculator/internal/benchmark"
	"github.com/airoi/roi-calculator/internal/calculation"
	"github.com/airoi/roi-calculator/internal/config"
	"github.com/airoi/roi-calculator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the collaborators shared by all commands. Fields left nil are
// built from the persistent flags before a command runs.
type App struct {
	Settings   *config.Settings
	Logger     *zap.Logger
	Benchmarks *benchmark.Table
	Parser     *config.InputParser
	Calculator *calculation.ImpactCalculator
}

type rootOptions struct {
	settingsPath   string
	logLevel       string
	benchmarksPath string
}

// NewRootCmd creates the top-level "roicalc" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:           "roicalc",
		Short:         "AI adoption impact and ROI projections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.settingsPath, "settings", "", "Settings file (YAML)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.benchmarksPath, "benchmarks", "", "Benchmark table file replacing the built-in industries")

	root.AddCommand(
		newCalculateCmd(app),
		newTimelineCmd(app),
		newIndustriesCmd(app),
		newSensitivityCmd(app),
		newExampleCmd(app),
		newServeCmd(app),
	)

	return root
}

func (a *App) setup(opts rootOptions) error {
	if a.Settings == nil {
		s, err := config.LoadSettings(opts.settingsPath)
		if err != nil {
			return err
		}
		a.Settings = s
	}

	if a.Logger == nil {
		l, err := logging.New(a.Settings.Logging, opts.logLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.Logger = l
	}

	if a.Benchmarks == nil {
		path := opts.benchmarksPath
		if path == "" {
			path = a.Settings.Benchmarks
		}
		if path == "" {
			a.Benchmarks = benchmark.Default()
		} else {
			t, err := benchmark.LoadFromFile(path)
			if err != nil {
				return err
			}
			a.Logger.Info("loaded benchmark table", zap.String("path", path), zap.Int("industries", len(t.IDs())))
			a.Benchmarks = t
		}
	}

	if a.Parser == nil {
		a.Parser = config.NewInputParser(a.Benchmarks)
	}
	if a.Calculator == nil {
		a.Calculator = calculation.NewImpactCalculator(a.Benchmarks)
		a.Calculator.SetLogger(a.Logger.Sugar())
	}
	return nil
}
