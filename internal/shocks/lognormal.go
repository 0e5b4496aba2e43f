package shocks

import (
	"fmt"
	"math"
)

// MeanOneLogNormal discretizes a mean-one lognormal variable into n
// equiprobable atoms. Each atom is the conditional mean of the distribution on
// one of n equal-probability partitions, so the discretized mean is exactly 1
// for any n.
//
// With X = exp(mu + sigma*Z), mu = -sigma^2/2 and partition boundaries z_i at
// the standard-normal quantiles i/n:
//
//	atom_i = n * (Phi(z_{i+1} - sigma) - Phi(z_i - sigma))
func MeanOneLogNormal(sigma float64, n int) (Discrete, error) {
	if n < 1 {
		return Discrete{}, fmt.Errorf("atom count must be >= 1, got %d", n)
	}
	if sigma < 0 {
		return Discrete{}, fmt.Errorf("sigma must be >= 0, got %v", sigma)
	}
	if sigma == 0 || n == 1 {
		return Degenerate(1.0), nil
	}

	atoms := make([]float64, n)
	probs := make([]float64, n)
	prevCDF := 0.0 // Phi(z_0 - sigma) with z_0 = -inf
	for i := 0; i < n; i++ {
		var cdf float64
		if i == n-1 {
			cdf = 1.0
		} else {
			z := normalQuantile(float64(i+1) / float64(n))
			cdf = normalCDF(z - sigma)
		}
		atoms[i] = float64(n) * (cdf - prevCDF)
		probs[i] = 1.0 / float64(n)
		prevCDF = cdf
	}
	return Discrete{Atoms: atoms, Probs: probs}, nil
}

// AddUnemployment mixes an unemployment point mass into a transitory shock
// distribution, rescaling the employed atoms so the overall mean stays at 1.
func AddUnemployment(d Discrete, unempPrb, incUnemp float64) Discrete {
	if unempPrb <= 0 {
		return d
	}
	scale := (1.0 - unempPrb*incUnemp) / (1.0 - unempPrb)
	atoms := make([]float64, 0, len(d.Atoms)+1)
	probs := make([]float64, 0, len(d.Probs)+1)
	atoms = append(atoms, incUnemp)
	probs = append(probs, unempPrb)
	for i, a := range d.Atoms {
		atoms = append(atoms, a*scale)
		probs = append(probs, d.Probs[i]*(1.0-unempPrb))
	}
	return Discrete{Atoms: atoms, Probs: probs}
}

func normalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

func normalQuantile(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
