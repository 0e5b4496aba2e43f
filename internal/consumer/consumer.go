// Package consumer bundles a parameterized consumption-saving problem with
// its solution and simulation state behind a small lifecycle API: construct,
// Solve, InitializeSim, Simulate, then read the simulated cross-section.
package consumer

import (
	"errors"
	"fmt"

	"bufferstock/internal/model"
	"bufferstock/internal/simulate"
	"bufferstock/internal/solve"
)

// Consumer is a configured agent type. A freshly constructed Consumer is
// unsolved; Solve must run before InitializeSim or Simulate.
type Consumer struct {
	Params model.Params

	policy []*solve.Solution
	sim    *simulate.Simulator
}

// New validates params and returns an unsolved consumer.
func New(p model.Params) (*Consumer, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	return &Consumer{Params: p}, nil
}

// Solve computes the consumption policy for every period of the problem.
func (c *Consumer) Solve() error {
	policy, err := solve.Solve(c.Params)
	if err != nil {
		return err
	}
	c.policy = policy
	c.sim = nil
	return nil
}

// Solved reports whether Solve has run.
func (c *Consumer) Solved() bool { return len(c.policy) > 0 }

// Policy returns the period-t solution. For an infinite horizon every t maps
// to the single converged policy.
func (c *Consumer) Policy(t int) (*solve.Solution, error) {
	if !c.Solved() {
		return nil, errors.New("consumer is not solved")
	}
	if c.Params.T == 0 {
		return c.policy[0], nil
	}
	if t < 0 || t >= len(c.policy) {
		return nil, fmt.Errorf("period %d out of range [0, %d]", t, len(c.policy)-1)
	}
	return c.policy[t], nil
}

// InitializeSim resets the simulated population to newborn state. It is
// called implicitly by the first Simulate.
func (c *Consumer) InitializeSim() error {
	if !c.Solved() {
		return errors.New("consumer must be solved before simulation")
	}
	sim, err := simulate.New(c.Params, c.policy)
	if err != nil {
		return err
	}
	c.sim = sim
	return nil
}

// Simulate advances the population periods steps (Params.SimPeriods when
// periods <= 0).
func (c *Consumer) Simulate(periods int) error {
	if c.sim == nil {
		if err := c.InitializeSim(); err != nil {
			return err
		}
	}
	c.sim.Run(periods)
	return nil
}

// Simulator exposes the underlying simulation state after Simulate.
func (c *Consumer) Simulator() (*simulate.Simulator, error) {
	if c.sim == nil {
		return nil, errors.New("simulation is not initialized")
	}
	return c.sim, nil
}

// ALvl returns the simulated cross-section of wealth levels.
func (c *Consumer) ALvl() ([]float64, error) {
	if c.sim == nil {
		return nil, errors.New("simulation is not initialized")
	}
	return c.sim.ALvl(), nil
}
