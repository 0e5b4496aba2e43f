package solve

import (
	"sort"
)

// Solution is the policy for a single period of the consumption-saving
// problem. The consumption function is piecewise linear over (MNrm, CNrm),
// with MNrm[0] == MNrmMin and CNrm[0] == 0 (consumption goes to zero at the
// borrowing constraint) and linear extrapolation of slope MPCMin above the
// last gridpoint.
type Solution struct {
	MNrm []float64 // normalized market resources gridpoints, ascending
	CNrm []float64 // optimal normalized consumption at each gridpoint

	MNrmMin float64 // minimum feasible normalized resources
	HNrm    float64 // normalized human wealth
	MPCMin  float64 // limiting MPC as m -> infinity
	MPCMax  float64 // limiting MPC as m -> MNrmMin
}

// Terminal is the last-period solution: consume everything, c(m) = m.
func Terminal() *Solution {
	return &Solution{
		MNrm:    []float64{0.0, 1.0},
		CNrm:    []float64{0.0, 1.0},
		MNrmMin: 0.0,
		HNrm:    0.0,
		MPCMin:  1.0,
		MPCMax:  1.0,
	}
}

// Consumption evaluates the policy at normalized resources m. Below MNrmMin
// no consumption is feasible and the policy returns 0.
func (s *Solution) Consumption(m float64) float64 {
	n := len(s.MNrm)
	if m <= s.MNrm[0] {
		return 0.0
	}
	if m >= s.MNrm[n-1] {
		return s.CNrm[n-1] + s.MPCMin*(m-s.MNrm[n-1])
	}
	// First index with MNrm[i] >= m; the segment is [i-1, i].
	i := sort.SearchFloat64s(s.MNrm, m)
	if s.MNrm[i] == m {
		return s.CNrm[i]
	}
	frac := (m - s.MNrm[i-1]) / (s.MNrm[i] - s.MNrm[i-1])
	return s.CNrm[i-1] + frac*(s.CNrm[i]-s.CNrm[i-1])
}

// MPC evaluates the marginal propensity to consume at m (the local slope of
// the consumption function).
func (s *Solution) MPC(m float64) float64 {
	n := len(s.MNrm)
	if m <= s.MNrm[0] {
		return s.MPCMax
	}
	if m >= s.MNrm[n-1] {
		return s.MPCMin
	}
	i := sort.SearchFloat64s(s.MNrm, m)
	if i == 0 {
		i = 1
	}
	return (s.CNrm[i] - s.CNrm[i-1]) / (s.MNrm[i] - s.MNrm[i-1])
}

// Tabulate samples the policy at n evenly spaced points on [mMin, mMax],
// returning parallel (m, c) slices. Used for CSV output and API responses in
// place of a plotting surface.
func (s *Solution) Tabulate(mMin, mMax float64, n int) ([]float64, []float64) {
	if n < 2 {
		n = 2
	}
	if mMin < s.MNrmMin {
		mMin = s.MNrmMin
	}
	if mMax <= mMin {
		mMax = mMin + 1.0
	}
	ms := make([]float64, n)
	cs := make([]float64, n)
	step := (mMax - mMin) / float64(n-1)
	for i := 0; i < n; i++ {
		ms[i] = mMin + float64(i)*step
		cs[i] = s.Consumption(ms[i])
	}
	return ms, cs
}
