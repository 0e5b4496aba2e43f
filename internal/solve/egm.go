package solve

import (
	"math"

	"bufferstock/internal/shocks"
)

// period bundles everything needed to step the solution back one period.
type period struct {
	CRRA        float64
	DiscFac     float64
	Rfree       float64
	PermGroFac  float64
	LivPrb      float64
	PermShk     shocks.Discrete
	TranShk     shocks.Discrete
	AXtraGrid   []float64 // asset gridpoints above the period's minimum
	BoroCnstArt float64
}

// solvePeriod computes this period's policy from next period's via the
// endogenous grid method:
//
//  1. For each end-of-period asset level a, integrate next period's marginal
//     value over the shock distribution to get the end-of-period marginal
//     value of assets.
//  2. Invert the Euler equation u'(c) = EndOfPrdvP(a) to get consumption.
//  3. The endogenous gridpoint is m = a + c.
//
// The borrowing constraint enters through the gridpoint (MNrmMin, 0): below
// the first endogenous point the interpolant approaches the constrained
// policy c = m - MNrmMin.
func solvePeriod(next *Solution, p period) *Solution {
	rho := p.CRRA
	permMin := p.PermShk.Min()
	tranMin := p.TranShk.Min()

	natural := (next.MNrmMin - tranMin) * p.PermGroFac * permMin / p.Rfree
	mNrmMin := math.Max(natural, p.BoroCnstArt)

	discEff := p.DiscFac * p.LivPrb

	n := len(p.AXtraGrid)
	mGrid := make([]float64, n+1)
	cGrid := make([]float64, n+1)
	mGrid[0] = mNrmMin
	cGrid[0] = 0.0

	for j, ax := range p.AXtraGrid {
		a := mNrmMin + ax
		vP := 0.0
		for pi, psi := range p.PermShk.Atoms {
			gPsi := p.PermGroFac * psi
			growthFac := math.Pow(gPsi, -rho) * p.PermShk.Probs[pi]
			rNrm := p.Rfree / gPsi
			for ti, theta := range p.TranShk.Atoms {
				mNext := rNrm*a + theta
				cNext := next.Consumption(mNext)
				vP += growthFac * p.TranShk.Probs[ti] * math.Pow(cNext, -rho)
			}
		}
		vP *= discEff * p.Rfree
		c := math.Pow(vP, -1.0/rho)
		cGrid[j+1] = c
		mGrid[j+1] = a + c
	}

	// Perfect-foresight bounds via the absolute patience factor.
	patFac := math.Pow(p.Rfree*discEff, 1.0/rho) / p.Rfree
	mpcMin := 1.0 / (1.0 + patFac/next.MPCMin)

	mpcMax := 1.0
	if p.BoroCnstArt <= natural {
		worstPrb := p.PermShk.MinProb() * p.TranShk.MinProb()
		mpcMax = 1.0 / (1.0 + math.Pow(worstPrb, 1.0/rho)*patFac/next.MPCMax)
	}

	hNrm := p.PermGroFac / p.Rfree * (1.0 + next.HNrm)

	return &Solution{
		MNrm:    mGrid,
		CNrm:    cGrid,
		MNrmMin: mNrmMin,
		HNrm:    hNrm,
		MPCMin:  mpcMin,
		MPCMax:  mpcMax,
	}
}

// distance is the sup-norm gap between two policies evaluated on the
// endogenous gridpoints of the newer one.
func distance(a, b *Solution) float64 {
	d := math.Abs(a.MNrmMin - b.MNrmMin)
	for _, m := range a.MNrm {
		gap := math.Abs(a.Consumption(m) - b.Consumption(m))
		if gap > d {
			d = gap
		}
	}
	return d
}
