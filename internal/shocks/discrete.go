package shocks

import (
	"errors"
	"math/rand"
)

// Discrete is a finite probability distribution over positive income shock
// values. Probs always sum to 1 and align with Atoms by index.
type Discrete struct {
	Atoms []float64
	Probs []float64
}

// Degenerate returns the point mass at v.
func Degenerate(v float64) Discrete {
	return Discrete{Atoms: []float64{v}, Probs: []float64{1.0}}
}

func (d Discrete) Validate() error {
	if len(d.Atoms) == 0 || len(d.Atoms) != len(d.Probs) {
		return errors.New("atoms and probs must be non-empty and equal length")
	}
	sum := 0.0
	for _, p := range d.Probs {
		if p < 0 {
			return errors.New("probabilities must be >= 0")
		}
		sum += p
	}
	if sum < 1-1e-9 || sum > 1+1e-9 {
		return errors.New("probabilities must sum to 1")
	}
	return nil
}

func (d Discrete) Mean() float64 {
	m := 0.0
	for i, a := range d.Atoms {
		m += a * d.Probs[i]
	}
	return m
}

// Expect computes E[f(X)].
func (d Discrete) Expect(f func(x float64) float64) float64 {
	e := 0.0
	for i, a := range d.Atoms {
		e += f(a) * d.Probs[i]
	}
	return e
}

// Min returns the smallest atom.
func (d Discrete) Min() float64 {
	m := d.Atoms[0]
	for _, a := range d.Atoms[1:] {
		if a < m {
			m = a
		}
	}
	return m
}

// MinProb returns the total probability mass on the smallest atom.
func (d Discrete) MinProb() float64 {
	m := d.Min()
	p := 0.0
	for i, a := range d.Atoms {
		if a == m {
			p += d.Probs[i]
		}
	}
	return p
}

// Draw samples one atom using rng.
func (d Discrete) Draw(rng *rand.Rand) float64 {
	u := rng.Float64()
	cum := 0.0
	for i, p := range d.Probs {
		cum += p
		if u < cum {
			return d.Atoms[i]
		}
	}
	return d.Atoms[len(d.Atoms)-1]
}
