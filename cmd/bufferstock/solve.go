package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bufferstock/internal/config"
	"bufferstock/internal/model"
	"bufferstock/internal/output"
	"bufferstock/internal/solve"
)

func loadParams() (model.Params, error) {
	if cfgPath == "" {
		return model.DefaultParams(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return model.Params{}, err
	}
	return cfg.ToParams(), nil
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func newSolveCmd() *cobra.Command {
	var (
		outPath string
		mMax    float64
		points  int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a model and tabulate its consumption function",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadParams()
			if err != nil {
				return err
			}

			policy, err := solve.Solve(p)
			if err != nil {
				return err
			}
			sol := policy[0]
			logger.Debug("solved",
				zap.Float64("m_nrm_min", sol.MNrmMin),
				zap.Float64("h_nrm", sol.HNrm),
				zap.Int("periods", p.T))

			fmt.Printf("mNrmMin=%.6f hNrm=%.4f MPC=[%.4f, %.4f]\n",
				sol.MNrmMin, sol.HNrm, sol.MPCMin, sol.MPCMax)

			if outPath != "" {
				if err := ensureDir(outPath); err != nil {
					return err
				}
				if err := output.WritePolicyCSV(outPath, sol, sol.MNrmMin, mMax, points); err != nil {
					return err
				}
				fmt.Printf("Wrote %d policy points to %s\n", points, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write tabulated policy CSV to this path")
	cmd.Flags().Float64Var(&mMax, "m-max", 20.0, "upper bound of the tabulation domain")
	cmd.Flags().IntVar(&points, "points", 201, "number of tabulation points")
	return cmd
}
