package solve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bufferstock/internal/model"
)

func TestTerminalConsumesEverything(t *testing.T) {
	t.Parallel()

	term := Terminal()
	for _, m := range []float64{0.5, 1.0, 3.7, 100.0} {
		assert.InDelta(t, m, term.Consumption(m), 1e-12)
	}
	assert.Equal(t, 0.0, term.Consumption(0))
	assert.Equal(t, 0.0, term.Consumption(-1))
	assert.Equal(t, 0.0, term.MNrmMin)
	assert.Equal(t, 1.0, term.MPCMin)
}

func TestAssetGrid(t *testing.T) {
	t.Parallel()

	grid := AssetGrid(0.001, 20, 48)
	require.Len(t, grid, 48)
	assert.InDelta(t, 0.001, grid[0], 1e-9)
	assert.InDelta(t, 20.0, grid[47], 1e-9)
	for i := 1; i < len(grid); i++ {
		assert.Greater(t, grid[i], grid[i-1])
	}
	// Exponential spacing: steps grow monotonically.
	assert.Less(t, grid[1]-grid[0], grid[47]-grid[46])
}

func TestSolveInfiniteHorizonConverges(t *testing.T) {
	t.Parallel()

	p := model.DefaultParams()
	sol, iters, err := SolveInfiniteHorizon(p)
	require.NoError(t, err)
	assert.Greater(t, iters, 10)
	assert.Less(t, iters, p.MaxIterOrDefault())

	// Artificial constraint at zero binds above the natural constraint.
	assert.Equal(t, 0.0, sol.MNrmMin)
	assert.Positive(t, sol.HNrm)
	assert.Greater(t, sol.MPCMin, 0.0)
	assert.Less(t, sol.MPCMin, 1.0)
	assert.GreaterOrEqual(t, sol.MPCMax, sol.MPCMin)
	assert.LessOrEqual(t, sol.MPCMax, 1.0)
}

func TestConsumptionFunctionShape(t *testing.T) {
	t.Parallel()

	sol, _, err := SolveInfiniteHorizon(model.DefaultParams())
	require.NoError(t, err)

	prevC := 0.0
	prevMPC := math.Inf(1)
	for m := 0.05; m <= 30; m += 0.05 {
		c := sol.Consumption(m)
		assert.Greater(t, c, prevC, "consumption must increase in m (m=%v)", m)
		assert.Greater(t, c, 0.0)
		assert.LessOrEqual(t, c, m-sol.MNrmMin+1e-9, "consumption must be feasible (m=%v)", m)

		mpc := sol.MPC(m)
		assert.Greater(t, mpc, 0.0)
		assert.LessOrEqual(t, mpc, 1.0+1e-9)
		assert.LessOrEqual(t, mpc, prevMPC+1e-9, "MPC must weakly decline in m (m=%v)", m)
		prevC = c
		prevMPC = mpc
	}
}

func TestExtrapolationUsesLimitingMPC(t *testing.T) {
	t.Parallel()

	sol, _, err := SolveInfiniteHorizon(model.DefaultParams())
	require.NoError(t, err)

	mTop := sol.MNrm[len(sol.MNrm)-1]
	c1 := sol.Consumption(mTop + 10)
	c2 := sol.Consumption(mTop + 11)
	assert.InDelta(t, sol.MPCMin, c2-c1, 1e-9)
}

func TestLifeCycleSolveShape(t *testing.T) {
	t.Parallel()

	p := model.DefaultParams()
	p.T = 5
	p.LivPrb = []float64{1.0, 0.99, 0.98, 0.95, 0.90}
	p.PermGroFac = []float64{1.05, 1.03, 1.02, 1.01, 1.00}

	sols, err := Solve(p)
	require.NoError(t, err)
	require.Len(t, sols, 6)

	// Terminal rule consumes everything.
	assert.InDelta(t, 2.0, sols[5].Consumption(2.0), 1e-12)

	// Earlier periods consume less than the terminal rule at the same m:
	// there is a future worth saving for.
	for tt := 0; tt < 5; tt++ {
		assert.Less(t, sols[tt].Consumption(2.0), 2.0)
		assert.Positive(t, sols[tt].HNrm)
	}
	// Human wealth shrinks as fewer earning periods remain.
	for tt := 1; tt < 5; tt++ {
		assert.Less(t, sols[tt].HNrm, sols[tt-1].HNrm)
	}
}

func TestNoRiskMatchesPerfectForesightBounds(t *testing.T) {
	t.Parallel()

	p := model.DefaultParams()
	p.PermShkStd = []float64{0.0}
	p.TranShkStd = []float64{0.0}
	p.UnempPrb = 0.0

	sol, _, err := SolveInfiniteHorizon(p)
	require.NoError(t, err)

	// With no risk, human wealth approaches G/(R-G) and consumption at large
	// m tracks the perfect-foresight rule c = MPCMin*(m + hNrm).
	g := p.PermGroFac[0]
	r := p.Rfree
	hLim := g / (r - g)
	assert.InDelta(t, hLim, sol.HNrm, 1e-4*hLim)

	m := 100.0
	pfC := sol.MPCMin * (m + sol.HNrm)
	assert.InDelta(t, pfC, sol.Consumption(m), 0.02*pfC)
}

func TestGrowthImpatienceViolationRejected(t *testing.T) {
	t.Parallel()

	p := model.DefaultParams()
	p.DiscFac = 0.999
	p.Rfree = 1.08
	p.PermGroFac = []float64{1.0}

	_, _, err := SolveInfiniteHorizon(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "impatience")
}

func TestSolveRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	p := model.DefaultParams()
	p.CRRA = -1
	_, err := Solve(p)
	assert.Error(t, err)

	p = model.DefaultParams()
	_, _, err = SolveInfiniteHorizon(model.Params{})
	assert.Error(t, err)
}

func TestNaturalBorrowingConstraint(t *testing.T) {
	t.Parallel()

	p := model.DefaultParams()
	// Disable the artificial constraint; with a positive unemployment floor
	// the natural constraint stays at a strictly negative level.
	p.BoroCnstArt = -10.0
	p.IncUnemp = 0.3

	sol, _, err := SolveInfiniteHorizon(p)
	require.NoError(t, err)
	assert.Less(t, sol.MNrmMin, 0.0)
	assert.Greater(t, sol.MNrmMin, -10.0)
	assert.Equal(t, 0.0, sol.Consumption(sol.MNrmMin))
	assert.Positive(t, sol.Consumption(sol.MNrmMin+0.01))
}

func TestTabulate(t *testing.T) {
	t.Parallel()

	sol, _, err := SolveInfiniteHorizon(model.DefaultParams())
	require.NoError(t, err)

	ms, cs := sol.Tabulate(0, 10, 101)
	require.Len(t, ms, 101)
	require.Len(t, cs, 101)
	assert.Equal(t, 0.0, ms[0])
	assert.InDelta(t, 10.0, ms[100], 1e-9)
	for i, m := range ms {
		assert.InDelta(t, sol.Consumption(m), cs[i], 1e-12)
	}
}
