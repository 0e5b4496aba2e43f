package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	cfgPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bufferstock",
	Short: "Solve and simulate buffer-stock consumption-saving models",
	Long: `bufferstock solves life-cycle and infinite-horizon consumption-saving
problems with idiosyncratic income risk, simulates populations of households,
and compares simulated wealth distributions against empirical Lorenz targets.

Experiments are described by YAML configs; see examples/ for presets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to experiment YAML config")

	rootCmd.AddCommand(
		newSolveCmd(),
		newSimulateCmd(),
		newLorenzCmd(),
		newEstimateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
