package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bufferstock/internal/analysis"
	"bufferstock/internal/output"
	"bufferstock/internal/simulate"
	"bufferstock/internal/solve"
)

func newSimulateCmd() *cobra.Command {
	var (
		outPath      string
		panelPeriods int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Solve a model and simulate its population forward",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadParams()
			if err != nil {
				return err
			}

			policy, err := solve.Solve(p)
			if err != nil {
				return err
			}
			sim, err := simulate.New(p, policy)
			if err != nil {
				return err
			}

			keep := panelPeriods
			if outPath == "" {
				keep = 0
			} else if keep <= 0 || keep > p.SimPeriods {
				keep = p.SimPeriods
			}
			if warmup := p.SimPeriods - keep; warmup > 0 {
				sim.Run(warmup)
			}
			var panel []simulate.Record
			if keep > 0 {
				panel = sim.RunPanel(keep)
			}
			logger.Debug("simulated",
				zap.Int("agents", p.AgentCount),
				zap.Int("periods", sim.PeriodsSimulated()))

			summary, err := analysis.Summarize(sim.ALvl(), nil)
			if err != nil {
				return err
			}
			fmt.Printf("Simulated %d agents for %d periods\n", p.AgentCount, sim.PeriodsSimulated())
			fmt.Printf("Wealth: mean=%.4f median=%.4f gini=%.4f\n", summary.Mean, summary.Median, summary.Gini)

			if outPath != "" {
				if err := ensureDir(outPath); err != nil {
					return err
				}
				if err := output.WritePanelCSV(outPath, panel); err != nil {
					return err
				}
				fmt.Printf("Wrote %d panel rows to %s\n", len(panel), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write simulation panel CSV to this path")
	cmd.Flags().IntVar(&panelPeriods, "panel-periods", 0, "trailing periods to keep in the panel (0 = all)")
	return cmd
}
