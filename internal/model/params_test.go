package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParamsValid(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, 0, p.T)
	assert.Equal(t, 1, p.PeriodCount())
}

func TestValidateRejectsBadFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero CRRA", func(p *Params) { p.CRRA = 0 }},
		{"DiscFac above one", func(p *Params) { p.DiscFac = 1.0 }},
		{"negative Rfree", func(p *Params) { p.Rfree = -1 }},
		{"negative T", func(p *Params) { p.T = -1 }},
		{"LivPrb above one", func(p *Params) { p.LivPrb = []float64{1.5} }},
		{"empty PermGroFac", func(p *Params) { p.PermGroFac = nil }},
		{"negative shock stdev", func(p *Params) { p.TranShkStd = []float64{-0.1} }},
		{"zero shock atoms", func(p *Params) { p.PermShkCount = 0 }},
		{"UnempPrb of one", func(p *Params) { p.UnempPrb = 1.0 }},
		{"inverted asset grid", func(p *Params) { p.AXtraMax = p.AXtraMin }},
		{"single gridpoint", func(p *Params) { p.AXtraCount = 1 }},
		{"newborn assets below constraint", func(p *Params) { p.ANrmInit = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestValidateSequenceLengths(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	p.T = 3
	p.LivPrb = []float64{0.99, 0.98, 0.95}
	require.NoError(t, p.Validate())

	p.LivPrb = []float64{0.99, 0.98}
	assert.Error(t, p.Validate(), "length must be 1 or T")
}

func TestAtBroadcasts(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.01, At([]float64{1.01}, 5))
	assert.Equal(t, 1.02, At([]float64{1.01, 1.02, 1.03}, 1))
}

func TestConvergenceDefaults(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	assert.Equal(t, DefaultTolerance, p.ToleranceOrDefault())
	assert.Equal(t, DefaultMaxIter, p.MaxIterOrDefault())

	p.Tolerance = 1e-4
	p.MaxIter = 50
	assert.Equal(t, 1e-4, p.ToleranceOrDefault())
	assert.Equal(t, 50, p.MaxIterOrDefault())
}
