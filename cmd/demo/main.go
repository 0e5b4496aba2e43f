package main

import (
	"flag"
	"fmt"

	"bufferstock/internal/analysis"
	"bufferstock/internal/config"
	"bufferstock/internal/consumer"
	"bufferstock/internal/model"
)

// Demo:
// - Build a buffer-stock consumer from default (or YAML) parameters
// - Solve the infinite-horizon problem and print the consumption function
// - Simulate a population forward and summarize its wealth distribution
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	periods := flag.Int("periods", 0, "Simulation periods (0 = params default)")
	flag.Parse()

	params := model.DefaultParams()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.ToParams()
	}

	agent, err := consumer.New(params)
	if err != nil {
		panic(err)
	}
	if err := agent.Solve(); err != nil {
		panic(err)
	}

	sol, err := agent.Policy(0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Solved: mNrmMin=%.4f hNrm=%.4f MPC in [%.4f, %.4f]\n\n", sol.MNrmMin, sol.HNrm, sol.MPCMin, sol.MPCMax)
	fmt.Printf("%8s %10s %8s\n", "m", "c(m)", "mpc")
	for _, m := range []float64{0.5, 1, 2, 5, 10, 20} {
		fmt.Printf("%8.2f %10.4f %8.4f\n", m, sol.Consumption(m), sol.MPC(m))
	}

	n := *periods
	if n <= 0 {
		n = params.SimPeriods
	}
	if err := agent.Simulate(n); err != nil {
		panic(err)
	}

	wealth, err := agent.ALvl()
	if err != nil {
		panic(err)
	}
	summary, err := analysis.Summarize(wealth, analysis.DefaultLorenzPercentiles)
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nSimulated %d agents for %d periods\n", params.AgentCount, n)
	fmt.Printf("Wealth: mean=%.4f median=%.4f p95=%.4f gini=%.4f\n",
		summary.Mean, summary.Median, summary.P95, summary.Gini)
	fmt.Printf("Lorenz shares at 20/40/60/80: %.4f %.4f %.4f %.4f\n",
		summary.LorenzShares[0], summary.LorenzShares[1], summary.LorenzShares[2], summary.LorenzShares[3])
}
