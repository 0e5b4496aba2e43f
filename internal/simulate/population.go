package simulate

import (
	"fmt"

	"bufferstock/internal/model"
	"bufferstock/internal/solve"
)

// PopulationSpec describes a population of consumer types identical except
// for their discount factor, which is spread uniformly across
// [Center-Spread, Center+Spread]. This approximates a continuous distribution
// of time preference with Types evenly weighted points.
type PopulationSpec struct {
	Types  int
	Center float64
	Spread float64
}

func (ps PopulationSpec) Validate() error {
	if ps.Types < 1 {
		return fmt.Errorf("population must have at least 1 type, got %d", ps.Types)
	}
	if ps.Spread < 0 {
		return fmt.Errorf("spread must be >= 0, got %v", ps.Spread)
	}
	lo, hi := ps.Center-ps.Spread, ps.Center+ps.Spread
	if lo <= 0 || hi >= 1 {
		return fmt.Errorf("discount factors [%v, %v] must lie inside (0, 1)", lo, hi)
	}
	return nil
}

// DiscFacs returns the discount factor of each type: the midpoints of Types
// equal subintervals of [Center-Spread, Center+Spread].
func (ps PopulationSpec) DiscFacs() []float64 {
	out := make([]float64, ps.Types)
	width := 2 * ps.Spread / float64(ps.Types)
	lo := ps.Center - ps.Spread
	for k := 0; k < ps.Types; k++ {
		out[k] = lo + width*(float64(k)+0.5)
	}
	return out
}

// Population is an ordered collection of solved, simulated consumer types.
type Population struct {
	Spec       PopulationSpec
	Simulators []*Simulator
}

// RunPopulation solves and simulates each type and returns the collection.
// base supplies every parameter except DiscFac; each type gets a distinct
// seed offset so shock streams are independent across types.
func RunPopulation(base model.Params, spec PopulationSpec, periods int) (*Population, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid population: %w", err)
	}
	pop := &Population{Spec: spec, Simulators: make([]*Simulator, 0, spec.Types)}
	for k, beta := range spec.DiscFacs() {
		p := base
		p.DiscFac = beta
		p.Seed = base.Seed + int64(k)*int64(base.AgentCount+1)
		policy, err := solve.Solve(p)
		if err != nil {
			return nil, fmt.Errorf("type %d (DiscFac=%.6f): %w", k, beta, err)
		}
		sim, err := New(p, policy)
		if err != nil {
			return nil, fmt.Errorf("type %d (DiscFac=%.6f): %w", k, beta, err)
		}
		sim.Run(periods)
		pop.Simulators = append(pop.Simulators, sim)
	}
	return pop, nil
}

// ALvl concatenates the wealth-level cross-sections of every type, in type
// order. With equal AgentCount per type this is the population wealth
// distribution under equal type weights.
func (p *Population) ALvl() []float64 {
	out := make([]float64, 0)
	for _, sim := range p.Simulators {
		out = append(out, sim.ALvl()...)
	}
	return out
}

// MPCs concatenates per-agent marginal propensities to consume across types.
func (p *Population) MPCs() []float64 {
	out := make([]float64, 0)
	for _, sim := range p.Simulators {
		out = append(out, sim.MPCs()...)
	}
	return out
}
