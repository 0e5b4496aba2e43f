package analysis

import (
	"math"
	"sort"
)

// WealthSummary is a cross-sectional summary of a simulated wealth
// distribution, used for ranking calibrations and for API responses.
type WealthSummary struct {
	Count int

	Mean   float64
	Median float64
	Min    float64
	Max    float64

	P05 float64
	P25 float64
	P75 float64
	P95 float64

	Gini         float64
	LorenzShares []float64
}

// Summarize computes a WealthSummary with Lorenz shares at the given
// percentiles (DefaultLorenzPercentiles when nil).
func Summarize(wealth []float64, lorenzPercentiles []float64) (WealthSummary, error) {
	if lorenzPercentiles == nil {
		lorenzPercentiles = DefaultLorenzPercentiles
	}
	s := WealthSummary{Count: len(wealth)}

	sorted := append([]float64(nil), wealth...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, w := range sorted {
		sum += w
	}
	if len(sorted) > 0 {
		s.Mean = sum / float64(len(sorted))
		s.Min = sorted[0]
		s.Max = sorted[len(sorted)-1]
		s.Median = PercentileSorted(sorted, 0.5)
		s.P05 = PercentileSorted(sorted, 0.05)
		s.P25 = PercentileSorted(sorted, 0.25)
		s.P75 = PercentileSorted(sorted, 0.75)
		s.P95 = PercentileSorted(sorted, 0.95)
	}

	gini, err := Gini(wealth)
	if err != nil {
		return WealthSummary{}, err
	}
	s.Gini = gini

	lorenz, err := LorenzShares(wealth, lorenzPercentiles)
	if err != nil {
		return WealthSummary{}, err
	}
	s.LorenzShares = lorenz
	return s, nil
}

// PercentileSorted reads quantile q from an ascending slice with linear
// interpolation between order statistics.
func PercentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
