package analysis

import (
	"fmt"
	"math"
	"sort"
)

// DefaultLorenzPercentiles are the population quantiles at which wealth
// distributions are conventionally compared.
var DefaultLorenzPercentiles = []float64{0.2, 0.4, 0.6, 0.8}

// LorenzShares computes the cumulative share of total wealth held by the
// bottom q of the population, for each q in percentiles. wealth may contain
// negative entries (debtors); shares are then also negative at the bottom.
func LorenzShares(wealth []float64, percentiles []float64) ([]float64, error) {
	if len(wealth) == 0 {
		return nil, fmt.Errorf("empty wealth distribution")
	}
	for _, q := range percentiles {
		if q <= 0 || q >= 1 {
			return nil, fmt.Errorf("percentile %v must be in (0, 1)", q)
		}
	}

	sorted := append([]float64(nil), wealth...)
	sort.Float64s(sorted)

	total := 0.0
	cum := make([]float64, len(sorted))
	for i, w := range sorted {
		total += w
		cum[i] = total
	}
	if total == 0 {
		return nil, fmt.Errorf("total wealth is zero; Lorenz shares undefined")
	}

	out := make([]float64, len(percentiles))
	for k, q := range percentiles {
		// Linear interpolation between cumulative sums, matching the
		// interpolated percentile convention used elsewhere in this package.
		pos := q*float64(len(sorted)) - 1
		if pos <= 0 {
			out[k] = cum[0] * (pos + 1) / total
			continue
		}
		lo := int(math.Floor(pos))
		if lo >= len(sorted)-1 {
			out[k] = 1.0
			continue
		}
		frac := pos - float64(lo)
		out[k] = (cum[lo]*(1-frac) + cum[lo+1]*frac) / total
	}
	return out, nil
}

// Gini computes the Gini coefficient of a wealth distribution from the
// identity G = 2*cov(w, rank)/(n*mean).
func Gini(wealth []float64) (float64, error) {
	n := len(wealth)
	if n == 0 {
		return 0, fmt.Errorf("empty wealth distribution")
	}
	sorted := append([]float64(nil), wealth...)
	sort.Float64s(sorted)

	total := 0.0
	weighted := 0.0
	for i, w := range sorted {
		total += w
		weighted += float64(i+1) * w
	}
	if total == 0 {
		return 0, fmt.Errorf("total wealth is zero; Gini undefined")
	}
	nf := float64(n)
	return 2*weighted/(nf*total) - (nf+1)/nf, nil
}

// EuclideanDistance is the L2 distance between two equal-length vectors.
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector lengths differ: %d vs %d", len(a), len(b))
	}
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}
