package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bufferstock/internal/config"
	"bufferstock/internal/data"
	"bufferstock/internal/estimate"
)

func newEstimateCmd() *cobra.Command {
	var (
		spread      float64
		types       int
		centerMin   float64
		centerMax   float64
		targetsPath string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Fit the discount factor distribution to target Lorenz shares",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadParams()
			if err != nil {
				return err
			}

			targets := estimate.USWealthTargets()
			if targetsPath != "" {
				targets, err = data.LoadTargetsJSON(targetsPath)
				if err != nil {
					return err
				}
			} else if cfgPath != "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return err
				}
				targets = cfg.TargetSpec()
			}

			res, err := estimate.DiscFacDistribution(p, targets, estimate.Options{
				Spread:    spread,
				Types:     types,
				CenterMin: centerMin,
				CenterMax: centerMax,
			})
			if err != nil {
				return err
			}
			logger.Debug("estimation finished",
				zap.Float64("center", res.Center),
				zap.Int("evaluations", res.Evaluations))

			fmt.Printf("Estimated DiscFac distribution: center=%.6f spread=%.4f\n", res.Center, res.Spread)
			fmt.Printf("Lorenz distance=%.6f after %d objective evaluations\n", res.Distance, res.Evaluations)
			fmt.Printf("%-12s %-12s %-12s\n", "percentile", "simulated", "target")
			for i, q := range targets.Percentiles {
				fmt.Printf("%-12.2f %-12.4f %-12.4f\n", q, res.Lorenz[i], targets.Shares[i])
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&spread, "spread", 0.01, "half-width of the discount factor distribution")
	cmd.Flags().IntVar(&types, "types", 7, "number of discrete preference types")
	cmd.Flags().Float64Var(&centerMin, "center-min", 0.90, "lower bound of the center search")
	cmd.Flags().Float64Var(&centerMax, "center-max", 0.985, "upper bound of the center search")
	cmd.Flags().StringVar(&targetsPath, "targets", "", "JSON file with empirical Lorenz targets")
	return cmd
}
