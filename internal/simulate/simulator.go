package simulate

import (
	"fmt"
	"math/rand"

	"bufferstock/internal/model"
	"bufferstock/internal/shocks"
	"bufferstock/internal/solve"
)

// Simulator runs a solved consumption-saving model forward for a population
// of ex-ante identical agents hit by idiosyncratic income shocks. Each agent
// owns its RNG, seeded from Params.Seed plus the agent index, so runs are
// reproducible and agents are independent.
type Simulator struct {
	params model.Params
	policy []*solve.Solution

	perm []shocks.Discrete // per-period permanent shock distributions
	tran []shocks.Discrete

	rngs []*rand.Rand

	// Cross-sectional state, one entry per agent.
	ANrm []float64 // end-of-period normalized assets
	MNrm []float64 // normalized market resources this period
	CNrm []float64 // normalized consumption this period
	PLvl []float64 // permanent income level
	Age  []int     // periods lived in the current life

	t int // periods simulated since Initialize
}

// New builds a simulator for a solved model. policy must come from
// solve.Solve on the same params: one entry for an infinite horizon, T+1 for
// a life cycle.
func New(p model.Params, policy []*solve.Solution) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if len(policy) == 0 {
		return nil, fmt.Errorf("empty policy")
	}
	if p.T > 0 && len(policy) != p.T+1 {
		return nil, fmt.Errorf("life cycle of %d periods needs %d policies, got %d", p.T, p.T+1, len(policy))
	}

	n := p.PeriodCount()
	perm := make([]shocks.Discrete, n)
	tran := make([]shocks.Discrete, n)
	for t := 0; t < n; t++ {
		pd, td, err := solve.ShockDistributions(p, t)
		if err != nil {
			return nil, fmt.Errorf("shock distributions for period %d: %w", t, err)
		}
		perm[t] = pd
		tran[t] = td
	}

	s := &Simulator{params: p, policy: policy, perm: perm, tran: tran}
	s.Initialize()
	return s, nil
}

// Initialize resets every agent to a newborn state and reseeds the per-agent
// RNG streams. Calling it again replays the exact same simulation.
func (s *Simulator) Initialize() {
	n := s.params.AgentCount
	s.ANrm = make([]float64, n)
	s.MNrm = make([]float64, n)
	s.CNrm = make([]float64, n)
	s.PLvl = make([]float64, n)
	s.Age = make([]int, n)
	s.rngs = make([]*rand.Rand, n)
	for i := 0; i < n; i++ {
		s.rngs[i] = rand.New(rand.NewSource(s.params.Seed + int64(i)))
		s.reborn(i)
	}
	s.t = 0
}

// Step advances every agent one period: mortality, income shocks, the
// consumption decision, and asset accumulation.
func (s *Simulator) Step() {
	for i := range s.ANrm {
		rng := s.rngs[i]
		age := s.Age[i]

		// Life-cycle agents past the terminal period are replaced before
		// anything else happens.
		if s.params.T > 0 && age > s.params.T {
			s.reborn(i)
			age = 0
		}

		// Mortality draw; the dead are replaced by newborns who then live
		// through this period.
		if rng.Float64() > model.At(s.params.LivPrb, s.periodIndex(age)) {
			s.reborn(i)
			age = 0
		}

		t := s.periodIndex(age)
		psi := s.perm[t].Draw(rng)
		theta := s.tran[t].Draw(rng)
		g := model.At(s.params.PermGroFac, t) * psi

		s.PLvl[i] *= g
		s.MNrm[i] = s.params.Rfree/g*s.ANrm[i] + theta
		s.CNrm[i] = s.policyAt(age).Consumption(s.MNrm[i])
		s.ANrm[i] = s.MNrm[i] - s.CNrm[i]
		s.Age[i] = age + 1
	}
	s.t++
}

// Run simulates periods steps (Params.SimPeriods when periods <= 0).
func (s *Simulator) Run(periods int) {
	if periods <= 0 {
		periods = s.params.SimPeriods
	}
	for k := 0; k < periods; k++ {
		s.Step()
	}
}

// PeriodsSimulated reports steps taken since the last Initialize.
func (s *Simulator) PeriodsSimulated() int { return s.t }

// ALvl returns the cross-section of wealth levels aNrm * pLvl.
func (s *Simulator) ALvl() []float64 {
	out := make([]float64, len(s.ANrm))
	for i, a := range s.ANrm {
		out[i] = a * s.PLvl[i]
	}
	return out
}

// MPCs returns the cross-section of marginal propensities to consume at each
// agent's current resources.
func (s *Simulator) MPCs() []float64 {
	out := make([]float64, len(s.MNrm))
	for i, m := range s.MNrm {
		age := s.Age[i]
		if age > 0 {
			age--
		}
		out[i] = s.policyAt(age).MPC(m)
	}
	return out
}

func (s *Simulator) reborn(i int) {
	s.ANrm[i] = s.params.ANrmInit
	s.MNrm[i] = 0
	s.CNrm[i] = 0
	s.PLvl[i] = 1.0
	s.Age[i] = 0
}

// periodIndex maps an age to the index into per-period sequences.
func (s *Simulator) periodIndex(age int) int {
	if s.params.T == 0 {
		return 0
	}
	if age >= s.params.T {
		return s.params.T - 1
	}
	return age
}

func (s *Simulator) policyAt(age int) *solve.Solution {
	if s.params.T == 0 {
		return s.policy[0]
	}
	if age >= len(s.policy) {
		age = len(s.policy) - 1
	}
	return s.policy[age]
}
