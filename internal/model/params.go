package model

import (
	"errors"
	"fmt"
)

// Params defines a buffer-stock consumption-saving problem.
// Units and conventions:
// - All resource variables are normalized by permanent income ("Nrm" suffix
//   elsewhere); level variables carry an explicit "Lvl" suffix.
// - Sequences (LivPrb, PermGroFac, PermShkStd, TranShkStd) have length T for a
//   life cycle, or length 1 which broadcasts to every period. T == 0 means an
//   infinite horizon solved to a fixed point.
// - Shock distributions are mean-one lognormal, discretized to PermShkCount /
//   TranShkCount equiprobable atoms; the transitory shock is mixed with an
//   unemployment point mass IncUnemp of probability UnempPrb.
type Params struct {
	CRRA    float64 // coefficient of relative risk aversion (rho > 0, != 1 handled via CRRA utility)
	DiscFac float64 // per-period discount factor beta
	Rfree   float64 // gross risk-free return R

	LivPrb     []float64 // per-period survival probability
	PermGroFac []float64 // per-period permanent income growth factor G
	PermShkStd []float64 // stdev of log permanent shock
	TranShkStd []float64 // stdev of log transitory shock

	PermShkCount int
	TranShkCount int

	UnempPrb float64 // probability of the unemployment transitory draw
	IncUnemp float64 // transitory income when unemployed

	BoroCnstArt float64 // artificial borrowing constraint on end-of-period assets

	// End-of-period asset grid (values above the minimum feasible level).
	AXtraMin   float64
	AXtraMax   float64
	AXtraCount int

	T int // non-terminal periods; 0 = infinite horizon

	// Infinite-horizon convergence controls. Zero values fall back to
	// DefaultTolerance / DefaultMaxIter.
	Tolerance float64
	MaxIter   int

	// Simulation controls.
	AgentCount int
	SimPeriods int
	ANrmInit   float64 // newborn normalized assets
	Seed       int64
}

const (
	DefaultTolerance = 1e-6
	DefaultMaxIter   = 1000
)

// DefaultParams returns a standard calibration of the infinite-horizon
// buffer-stock problem. Callers typically override DiscFac and the simulation
// fields.
func DefaultParams() Params {
	return Params{
		CRRA:         2.0,
		DiscFac:      0.96,
		Rfree:        1.03,
		LivPrb:       []float64{0.98},
		PermGroFac:   []float64{1.01},
		PermShkStd:   []float64{0.10},
		TranShkStd:   []float64{0.10},
		PermShkCount: 7,
		TranShkCount: 7,
		UnempPrb:     0.005,
		IncUnemp:     0.30,
		BoroCnstArt:  0.0,
		AXtraMin:     0.001,
		AXtraMax:     40.0,
		AXtraCount:   48,
		T:            0,
		AgentCount:   1000,
		SimPeriods:   120,
		ANrmInit:     0.0,
		Seed:         1,
	}
}

func (p *Params) Validate() error {
	if p.CRRA <= 0 {
		return errors.New("CRRA must be > 0")
	}
	if p.DiscFac <= 0 || p.DiscFac >= 1 {
		return errors.New("DiscFac must be in (0, 1)")
	}
	if p.Rfree <= 0 {
		return errors.New("Rfree must be > 0")
	}
	if p.T < 0 {
		return errors.New("T must be >= 0")
	}
	n := p.PeriodCount()
	if err := checkSeq("LivPrb", p.LivPrb, n, func(v float64) bool { return v > 0 && v <= 1 }, "(0, 1]"); err != nil {
		return err
	}
	if err := checkSeq("PermGroFac", p.PermGroFac, n, func(v float64) bool { return v > 0 }, "> 0"); err != nil {
		return err
	}
	if err := checkSeq("PermShkStd", p.PermShkStd, n, func(v float64) bool { return v >= 0 }, ">= 0"); err != nil {
		return err
	}
	if err := checkSeq("TranShkStd", p.TranShkStd, n, func(v float64) bool { return v >= 0 }, ">= 0"); err != nil {
		return err
	}
	if p.PermShkCount < 1 || p.TranShkCount < 1 {
		return errors.New("PermShkCount and TranShkCount must be >= 1")
	}
	if p.UnempPrb < 0 || p.UnempPrb >= 1 {
		return errors.New("UnempPrb must be in [0, 1)")
	}
	if p.UnempPrb > 0 && p.IncUnemp < 0 {
		return errors.New("IncUnemp must be >= 0")
	}
	if p.AXtraMin <= 0 {
		return errors.New("AXtraMin must be > 0")
	}
	if p.AXtraMax <= p.AXtraMin {
		return errors.New("AXtraMax must be > AXtraMin")
	}
	if p.AXtraCount < 2 {
		return errors.New("AXtraCount must be >= 2")
	}
	if p.AgentCount < 0 {
		return errors.New("AgentCount must be >= 0")
	}
	if p.SimPeriods < 0 {
		return errors.New("SimPeriods must be >= 0")
	}
	if p.ANrmInit < p.BoroCnstArt {
		return errors.New("ANrmInit must be >= BoroCnstArt")
	}
	return nil
}

// PeriodCount is the number of distinct non-terminal periods: T for a life
// cycle, 1 for the infinite horizon.
func (p *Params) PeriodCount() int {
	if p.T == 0 {
		return 1
	}
	return p.T
}

// At reads a broadcastable sequence at period t: length-1 sequences apply to
// every period.
func At(seq []float64, t int) float64 {
	if len(seq) == 1 {
		return seq[0]
	}
	return seq[t]
}

// ToleranceOrDefault and MaxIterOrDefault resolve infinite-horizon controls.
func (p *Params) ToleranceOrDefault() float64 {
	if p.Tolerance > 0 {
		return p.Tolerance
	}
	return DefaultTolerance
}

func (p *Params) MaxIterOrDefault() int {
	if p.MaxIter > 0 {
		return p.MaxIter
	}
	return DefaultMaxIter
}

func checkSeq(name string, seq []float64, n int, ok func(float64) bool, rng string) error {
	if len(seq) != 1 && len(seq) != n {
		return fmt.Errorf("%s must have length 1 or %d, got %d", name, n, len(seq))
	}
	for i, v := range seq {
		if !ok(v) {
			return fmt.Errorf("%s[%d] = %v must be %s", name, i, v, rng)
		}
	}
	return nil
}
