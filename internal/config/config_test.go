package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMergesModelFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", `
model:
  name: buffer-stock
  crra: 2.0
  disc_fac: 0.96
  rfree: 1.03
  perm_shk_std: [0.1]
  tran_shk_std: [0.1]
`)
	cfgPath := writeFile(t, dir, "experiment.yaml", `
model_file: preset.yaml
model:
  disc_fac: 0.94
simulation:
  periods: 50
  agents: 500
  seed: 7
`)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "buffer-stock", cfg.Model.Name)
	assert.Equal(t, 0.94, cfg.Model.DiscFac, "experiment overrides preset")
	assert.Equal(t, 2.0, cfg.Model.CRRA, "preset survives where not overridden")

	p := cfg.ToParams()
	assert.Equal(t, 0.94, p.DiscFac)
	assert.Equal(t, 50, p.SimPeriods)
	assert.Equal(t, 500, p.AgentCount)
	assert.Equal(t, int64(7), p.Seed)
	require.NoError(t, p.Validate())
}

func TestLoadRejectsInvalidModel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "bad.yaml", `
model:
  crra: -3.0
`)
	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CRRA")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadPopulation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "pop.yaml", `
population:
  types: 5
  disc_fac_center: 0.99
  disc_fac_spread: 0.05
`)
	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "population")
}

func TestPopulationSpecDefaultsCenterToDiscFac(t *testing.T) {
	t.Parallel()

	c := &Config{
		Model:      ModelConfig{DiscFac: 0.95},
		Population: PopulationConfig{Types: 3, Spread: 0.01},
	}
	spec := c.PopulationSpec()
	assert.Equal(t, 0.95, spec.Center)
	assert.Equal(t, 3, spec.Types)
}

func TestTargetSpecDefaults(t *testing.T) {
	t.Parallel()

	c := &Config{}
	targets := c.TargetSpec()
	assert.Equal(t, []float64{0.2, 0.4, 0.6, 0.8}, targets.Percentiles)
	require.NoError(t, targets.Validate())

	c.Targets = TargetsConfig{Percentiles: []float64{0.5}, Lorenz: []float64{0.2}}
	targets = c.TargetSpec()
	assert.Equal(t, []float64{0.5}, targets.Percentiles)
	assert.Equal(t, []float64{0.2}, targets.Shares)
}

func TestMergeModelZeroFieldsKeepBase(t *testing.T) {
	t.Parallel()

	base := ModelConfig{Name: "a", CRRA: 2, DiscFac: 0.96, AXtraCount: 48, PermGroFac: []float64{1.01}}
	out := MergeModel(base, ModelConfig{DiscFac: 0.9})
	assert.Equal(t, "a", out.Name)
	assert.Equal(t, 2.0, out.CRRA)
	assert.Equal(t, 0.9, out.DiscFac)
	assert.Equal(t, 48, out.AXtraCount)
	assert.Equal(t, []float64{1.01}, out.PermGroFac)
}

func TestLoadUncheckedAllowsPartial(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "partial.yaml", `
model:
  crra: -1
`)
	c, err := LoadUnchecked(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, -1.0, c.Model.CRRA)
}
