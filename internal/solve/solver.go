package solve

import (
	"fmt"
	"math"

	"bufferstock/internal/model"
	"bufferstock/internal/shocks"
)

// Solve dispatches on the horizon: a life cycle returns T+1 policies (the
// last is the terminal consume-everything rule); an infinite horizon returns
// a single converged policy.
func Solve(p model.Params) ([]*Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if p.T == 0 {
		sol, _, err := solveInfinite(p)
		if err != nil {
			return nil, err
		}
		return []*Solution{sol}, nil
	}
	return solveLifeCycle(p)
}

// SolveInfiniteHorizon iterates the one-period solver to a fixed point,
// returning the converged policy and the number of iterations used.
func SolveInfiniteHorizon(p model.Params) (*Solution, int, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid params: %w", err)
	}
	if p.T != 0 {
		return nil, 0, fmt.Errorf("params describe a %d-period life cycle, not an infinite horizon", p.T)
	}
	return solveInfinite(p)
}

func solveLifeCycle(p model.Params) ([]*Solution, error) {
	grid := AssetGrid(p.AXtraMin, p.AXtraMax, p.AXtraCount)
	sols := make([]*Solution, p.T+1)
	sols[p.T] = Terminal()
	for t := p.T - 1; t >= 0; t-- {
		per, err := periodAt(p, t, grid)
		if err != nil {
			return nil, fmt.Errorf("period %d: %w", t, err)
		}
		sols[t] = solvePeriod(sols[t+1], per)
	}
	return sols, nil
}

func solveInfinite(p model.Params) (*Solution, int, error) {
	grid := AssetGrid(p.AXtraMin, p.AXtraMax, p.AXtraCount)
	per, err := periodAt(p, 0, grid)
	if err != nil {
		return nil, 0, err
	}

	// The growth impatience condition guarantees a target wealth ratio
	// exists; without it successive approximation will not settle.
	patFac := math.Pow(p.Rfree*p.DiscFac*per.LivPrb, 1.0/p.CRRA) / p.Rfree
	gic := patFac * p.Rfree / per.PermGroFac
	if gic >= 1.0 {
		return nil, 0, fmt.Errorf("growth impatience condition violated (factor %.6f >= 1); no stable target wealth exists", gic)
	}

	tol := p.ToleranceOrDefault()
	maxIter := p.MaxIterOrDefault()

	sol := Terminal()
	for it := 1; it <= maxIter; it++ {
		nextSol := solvePeriod(sol, per)
		if distance(nextSol, sol) < tol {
			return nextSol, it, nil
		}
		sol = nextSol
	}
	return nil, maxIter, fmt.Errorf("no convergence after %d iterations (tolerance %g)", maxIter, tol)
}

func periodAt(p model.Params, t int, grid []float64) (period, error) {
	perm, err := shocks.MeanOneLogNormal(model.At(p.PermShkStd, t), p.PermShkCount)
	if err != nil {
		return period{}, fmt.Errorf("permanent shock: %w", err)
	}
	tranBase, err := shocks.MeanOneLogNormal(model.At(p.TranShkStd, t), p.TranShkCount)
	if err != nil {
		return period{}, fmt.Errorf("transitory shock: %w", err)
	}
	tran := shocks.AddUnemployment(tranBase, p.UnempPrb, p.IncUnemp)

	return period{
		CRRA:        p.CRRA,
		DiscFac:     p.DiscFac,
		Rfree:       p.Rfree,
		PermGroFac:  model.At(p.PermGroFac, t),
		LivPrb:      model.At(p.LivPrb, t),
		PermShk:     perm,
		TranShk:     tran,
		AXtraGrid:   grid,
		BoroCnstArt: p.BoroCnstArt,
	}, nil
}

// AssetGrid builds an exponentially spaced grid on [min, max]: points bunch
// near the bottom, where the consumption function has the most curvature.
func AssetGrid(min, max float64, n int) []float64 {
	lo := math.Log(1 + min)
	hi := math.Log(1 + max)
	grid := make([]float64, n)
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n-1)
		grid[i] = math.Exp(lo+frac*(hi-lo)) - 1
	}
	return grid
}

// ShockDistributions exposes the discretized income shock distributions used
// in period t, for simulation with the same measure the solver integrates
// over.
func ShockDistributions(p model.Params, t int) (perm, tran shocks.Discrete, err error) {
	per, err := periodAt(p, t, nil)
	if err != nil {
		return shocks.Discrete{}, shocks.Discrete{}, err
	}
	return per.PermShk, per.TranShk, nil
}
