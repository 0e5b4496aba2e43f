package estimate

import (
	"fmt"
	"math"

	"bufferstock/internal/analysis"
	"bufferstock/internal/model"
	"bufferstock/internal/simulate"
)

// Targets are the empirical Lorenz shares the estimation tries to match:
// Shares[i] is the cumulative wealth share of the bottom Percentiles[i] of
// households.
type Targets struct {
	Percentiles []float64
	Shares      []float64
}

func (t Targets) Validate() error {
	if len(t.Percentiles) == 0 || len(t.Percentiles) != len(t.Shares) {
		return fmt.Errorf("percentiles and shares must be non-empty and equal length")
	}
	for i, q := range t.Percentiles {
		if q <= 0 || q >= 1 {
			return fmt.Errorf("percentile %v must be in (0, 1)", q)
		}
		if i > 0 && q <= t.Percentiles[i-1] {
			return fmt.Errorf("percentiles must be strictly increasing")
		}
	}
	return nil
}

// USWealthTargets returns the canonical US net-worth Lorenz shares at the
// 20/40/60/80th percentiles used in the buffer-stock literature.
func USWealthTargets() Targets {
	return Targets{
		Percentiles: []float64{0.2, 0.4, 0.6, 0.8},
		Shares:      []float64{-0.002, 0.01, 0.05, 0.17},
	}
}

// Options controls the discount factor search.
type Options struct {
	Spread     float64 // half-width of the discount factor distribution
	Types      int     // number of discrete preference types
	SimPeriods int     // periods to simulate each type (0 = Params.SimPeriods)

	CenterMin float64 // search bracket for the distribution center
	CenterMax float64

	Tolerance float64 // bracket width at which the search stops
	MaxIter   int
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.Types == 0 {
		out.Types = 7
	}
	if out.CenterMin == 0 {
		out.CenterMin = 0.90
	}
	if out.CenterMax == 0 {
		out.CenterMax = 0.985
	}
	if out.Tolerance == 0 {
		out.Tolerance = 1e-4
	}
	if out.MaxIter == 0 {
		out.MaxIter = 60
	}
	return out
}

// Result is the outcome of a discount factor distribution estimation.
type Result struct {
	Center   float64
	Spread   float64
	Distance float64

	Lorenz  []float64 // simulated shares at the target percentiles
	Targets Targets

	Evaluations int
}

// DiscFacDistribution finds the center of a uniform discount factor
// distribution whose simulated wealth distribution best matches the target
// Lorenz shares, by golden-section search on the Euclidean distance between
// the two share vectors. Candidate centers whose most patient type fails to
// converge score +Inf and are avoided by the search.
func DiscFacDistribution(base model.Params, targets Targets, opts Options) (*Result, error) {
	if err := targets.Validate(); err != nil {
		return nil, fmt.Errorf("invalid targets: %w", err)
	}
	o := opts.withDefaults()
	if o.CenterMin >= o.CenterMax {
		return nil, fmt.Errorf("center bracket [%v, %v] is empty", o.CenterMin, o.CenterMax)
	}

	evals := 0
	bestLorenz := map[float64][]float64{}
	objective := func(center float64) float64 {
		evals++
		spec := simulate.PopulationSpec{Types: o.Types, Center: center, Spread: o.Spread}
		pop, err := simulate.RunPopulation(base, spec, o.SimPeriods)
		if err != nil {
			return math.Inf(1)
		}
		shares, err := analysis.LorenzShares(pop.ALvl(), targets.Percentiles)
		if err != nil {
			return math.Inf(1)
		}
		d, err := analysis.EuclideanDistance(shares, targets.Shares)
		if err != nil {
			return math.Inf(1)
		}
		bestLorenz[center] = shares
		return d
	}

	center, dist, err := goldenSection(objective, o.CenterMin, o.CenterMax, o.Tolerance, o.MaxIter)
	if err != nil {
		return nil, err
	}

	// The minimizer is a bracket midpoint that may not itself have been
	// evaluated yet.
	lorenz, ok := bestLorenz[center]
	if !ok {
		dist = objective(center)
		lorenz = bestLorenz[center]
	}
	if math.IsInf(dist, 1) {
		return nil, fmt.Errorf("no candidate center in [%v, %v] produced a convergent model", o.CenterMin, o.CenterMax)
	}

	return &Result{
		Center:      center,
		Spread:      o.Spread,
		Distance:    dist,
		Lorenz:      lorenz,
		Targets:     targets,
		Evaluations: evals,
	}, nil
}

// goldenSection minimizes f on [lo, hi], assuming unimodality.
func goldenSection(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, float64, error) {
	const invPhi = 0.6180339887498949

	a, b := lo, hi
	x1 := b - invPhi*(b-a)
	x2 := a + invPhi*(b-a)
	f1 := f(x1)
	f2 := f(x2)

	for i := 0; i < maxIter && b-a > tol; i++ {
		if f1 <= f2 {
			b = x2
			x2, f2 = x1, f1
			x1 = b - invPhi*(b-a)
			f1 = f(x1)
		} else {
			a = x1
			x1, f1 = x2, f2
			x2 = a + invPhi*(b-a)
			f2 = f(x2)
		}
	}

	mid := (a + b) / 2
	if f1 <= f2 {
		return mid, f1, nil
	}
	return mid, f2, nil
}
