package consumer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bufferstock/internal/model"
)

func TestLifecycleOrder(t *testing.T) {
	t.Parallel()

	p := model.DefaultParams()
	p.AgentCount = 50
	p.SimPeriods = 20

	c, err := New(p)
	require.NoError(t, err)
	assert.False(t, c.Solved())

	// Simulation before solving is rejected.
	assert.Error(t, c.InitializeSim())
	assert.Error(t, c.Simulate(10))
	_, err = c.Policy(0)
	assert.Error(t, err)
	_, err = c.ALvl()
	assert.Error(t, err)

	require.NoError(t, c.Solve())
	assert.True(t, c.Solved())

	pol, err := c.Policy(0)
	require.NoError(t, err)
	assert.Positive(t, pol.Consumption(1.0))

	// Simulate without explicit InitializeSim initializes on first use.
	require.NoError(t, c.Simulate(0))
	wealth, err := c.ALvl()
	require.NoError(t, err)
	assert.Len(t, wealth, 50)

	sim, err := c.Simulator()
	require.NoError(t, err)
	assert.Equal(t, 20, sim.PeriodsSimulated())
}

func TestInitializeSimResets(t *testing.T) {
	t.Parallel()

	p := model.DefaultParams()
	p.AgentCount = 30
	p.SimPeriods = 15

	c, err := New(p)
	require.NoError(t, err)
	require.NoError(t, c.Solve())
	require.NoError(t, c.Simulate(0))
	first, err := c.ALvl()
	require.NoError(t, err)

	require.NoError(t, c.InitializeSim())
	require.NoError(t, c.Simulate(0))
	second, err := c.ALvl()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPolicyPeriodRange(t *testing.T) {
	t.Parallel()

	p := model.DefaultParams()
	p.T = 3
	c, err := New(p)
	require.NoError(t, err)
	require.NoError(t, c.Solve())

	for tt := 0; tt <= 3; tt++ {
		_, err := c.Policy(tt)
		assert.NoError(t, err)
	}
	_, err = c.Policy(4)
	assert.Error(t, err)
	_, err = c.Policy(-1)
	assert.Error(t, err)
}

func TestNewRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	_, err := New(model.Params{})
	assert.Error(t, err)
}
