package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bufferstock/internal/model"
	"bufferstock/internal/solve"
)

func TestListModelPresets(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "buffer_stock.yaml"), []byte(`
model:
  name: Buffer Stock
  crra: 2.0
  disc_fac: 0.96
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anonymous.yaml"), []byte(`
model:
  crra: 3.0
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	presets, err := ListModelPresets(dir)
	require.NoError(t, err)
	require.Len(t, presets, 2)

	assert.Equal(t, "anonymous", presets[0].ID)
	assert.Equal(t, "anonymous", presets[0].Name, "falls back to file ID")
	assert.Equal(t, "buffer_stock", presets[1].ID)
	assert.Equal(t, "Buffer Stock", presets[1].Name)
	assert.Equal(t, 0.96, presets[1].Model.DiscFac)

	found, err := FindModelPreset(dir, "buffer_stock")
	require.NoError(t, err)
	assert.Equal(t, "Buffer Stock", found.Name)

	_, err = FindModelPreset(dir, "missing")
	assert.Error(t, err)

	_, err = ListModelPresets(filepath.Join(dir, "nonexistent"))
	assert.Error(t, err)
}

func TestLoadTargetsJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "targets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "name": "scf_2004_net_worth",
  "percentiles": [0.2, 0.4, 0.6, 0.8],
  "lorenz": [-0.002, 0.01, 0.05, 0.17]
}`), 0o644))

	targets, err := LoadTargetsJSON(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.4, 0.6, 0.8}, targets.Percentiles)
	assert.Equal(t, 0.17, targets.Shares[3])

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"percentiles": [0.9], "lorenz": []}`), 0o644))
	_, err = LoadTargetsJSON(bad)
	assert.Error(t, err)

	_, err = LoadTargetsJSON(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestSolutionCache(t *testing.T) {
	t.Parallel()

	c := NewSolutionCache(time.Minute)
	p := model.DefaultParams()
	key := Key(p)

	_, ok := c.Get(key)
	assert.False(t, ok)

	policy := []*solve.Solution{solve.Terminal()}
	c.Set(key, policy)
	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, policy, got)
	assert.Equal(t, 1, c.Len())

	// Different params hash to a different key.
	p2 := p
	p2.DiscFac = 0.90
	assert.NotEqual(t, key, Key(p2))

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestSolutionCacheNilSafe(t *testing.T) {
	t.Parallel()

	var c *SolutionCache
	_, ok := c.Get("k")
	assert.False(t, ok)
	c.Set("k", nil)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestSolutionCacheExpiry(t *testing.T) {
	t.Parallel()

	c := NewSolutionCache(time.Nanosecond)
	c.Set("k", []*solve.Solution{solve.Terminal()})
	time.Sleep(time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)
}
