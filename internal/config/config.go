package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bufferstock/internal/estimate"
	"bufferstock/internal/model"
	"bufferstock/internal/simulate"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk experiment configuration shape (YAML).
type Config struct {
	// Optional: load model parameters from a separate YAML preset
	// (e.g. examples/models/*.yaml). Fields set in Model override the preset.
	ModelFile string      `yaml:"model_file"`
	Model     ModelConfig `yaml:"model"`

	Simulation SimulationConfig `yaml:"simulation"`
	Population PopulationConfig `yaml:"population"`
	Targets    TargetsConfig    `yaml:"targets"`
}

type ModelConfig struct {
	Name string `yaml:"name"`

	CRRA    float64 `yaml:"crra"`
	DiscFac float64 `yaml:"disc_fac"`
	Rfree   float64 `yaml:"rfree"`

	LivPrb     []float64 `yaml:"liv_prb"`
	PermGroFac []float64 `yaml:"perm_gro_fac"`
	PermShkStd []float64 `yaml:"perm_shk_std"`
	TranShkStd []float64 `yaml:"tran_shk_std"`

	PermShkCount int     `yaml:"perm_shk_count"`
	TranShkCount int     `yaml:"tran_shk_count"`
	UnempPrb     float64 `yaml:"unemp_prb"`
	IncUnemp     float64 `yaml:"inc_unemp"`

	BoroCnstArt float64 `yaml:"boro_cnst_art"`

	AXtraMin   float64 `yaml:"axtra_min"`
	AXtraMax   float64 `yaml:"axtra_max"`
	AXtraCount int     `yaml:"axtra_count"`

	T int `yaml:"periods"` // 0 = infinite horizon

	Tolerance float64 `yaml:"tolerance"`
	MaxIter   int     `yaml:"max_iter"`
}

type SimulationConfig struct {
	Periods    int     `yaml:"periods"`
	AgentCount int     `yaml:"agents"`
	ANrmInit   float64 `yaml:"anrm_init"`
	Seed       int64   `yaml:"seed"`
}

type PopulationConfig struct {
	Types  int     `yaml:"types"`
	Center float64 `yaml:"disc_fac_center"`
	Spread float64 `yaml:"disc_fac_spread"`
}

type TargetsConfig struct {
	Percentiles []float64 `yaml:"percentiles"`
	Lorenz      []float64 `yaml:"lorenz"`
}

// Load reads, merges and validates an experiment config.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If model_file is set, load it and merge in any explicit overrides.
	if c.ModelFile != "" {
		modelPath := c.ModelFile
		if !filepath.IsAbs(modelPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), modelPath)
			if _, err := os.Stat(cand); err == nil {
				modelPath = cand
			}
		}
		loaded, err := LoadModelFile(modelPath)
		if err != nil {
			return nil, err
		}
		c.Model = MergeModel(loaded, c.Model)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	params := c.ToParams()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("model config invalid: %w", err)
	}
	if c.Population.Types > 0 {
		if err := c.PopulationSpec().Validate(); err != nil {
			return fmt.Errorf("population config invalid: %w", err)
		}
	}
	if len(c.Targets.Percentiles) > 0 || len(c.Targets.Lorenz) > 0 {
		if err := c.TargetSpec().Validate(); err != nil {
			return fmt.Errorf("targets config invalid: %w", err)
		}
	}
	return nil
}

// ToParams assembles solver/simulation parameters, starting from the package
// defaults so presets only need to state what they change.
func (c *Config) ToParams() model.Params {
	p := model.DefaultParams()
	m := c.Model
	if m.CRRA != 0 {
		p.CRRA = m.CRRA
	}
	if m.DiscFac != 0 {
		p.DiscFac = m.DiscFac
	}
	if m.Rfree != 0 {
		p.Rfree = m.Rfree
	}
	if len(m.LivPrb) > 0 {
		p.LivPrb = m.LivPrb
	}
	if len(m.PermGroFac) > 0 {
		p.PermGroFac = m.PermGroFac
	}
	if len(m.PermShkStd) > 0 {
		p.PermShkStd = m.PermShkStd
	}
	if len(m.TranShkStd) > 0 {
		p.TranShkStd = m.TranShkStd
	}
	if m.PermShkCount != 0 {
		p.PermShkCount = m.PermShkCount
	}
	if m.TranShkCount != 0 {
		p.TranShkCount = m.TranShkCount
	}
	if m.UnempPrb != 0 {
		p.UnempPrb = m.UnempPrb
	}
	if m.IncUnemp != 0 {
		p.IncUnemp = m.IncUnemp
	}
	if m.BoroCnstArt != 0 {
		p.BoroCnstArt = m.BoroCnstArt
	}
	if m.AXtraMin != 0 {
		p.AXtraMin = m.AXtraMin
	}
	if m.AXtraMax != 0 {
		p.AXtraMax = m.AXtraMax
	}
	if m.AXtraCount != 0 {
		p.AXtraCount = m.AXtraCount
	}
	p.T = m.T
	if m.Tolerance != 0 {
		p.Tolerance = m.Tolerance
	}
	if m.MaxIter != 0 {
		p.MaxIter = m.MaxIter
	}

	if c.Simulation.Periods != 0 {
		p.SimPeriods = c.Simulation.Periods
	}
	if c.Simulation.AgentCount != 0 {
		p.AgentCount = c.Simulation.AgentCount
	}
	p.ANrmInit = c.Simulation.ANrmInit
	if c.Simulation.Seed != 0 {
		p.Seed = c.Simulation.Seed
	}
	return p
}

// PopulationSpec assembles the heterogeneous-preference population spec. When
// disc_fac_center is omitted, the model's own discount factor is the center.
func (c *Config) PopulationSpec() simulate.PopulationSpec {
	spec := simulate.PopulationSpec{
		Types:  c.Population.Types,
		Center: c.Population.Center,
		Spread: c.Population.Spread,
	}
	if spec.Center == 0 {
		spec.Center = c.ToParams().DiscFac
	}
	return spec
}

// TargetSpec assembles Lorenz matching targets, defaulting to the canonical
// US wealth shares.
func (c *Config) TargetSpec() estimate.Targets {
	if len(c.Targets.Percentiles) == 0 {
		return estimate.USWealthTargets()
	}
	return estimate.Targets{
		Percentiles: c.Targets.Percentiles,
		Shares:      c.Targets.Lorenz,
	}
}

type modelFileWrapper struct {
	Model ModelConfig `yaml:"model"`
}

// LoadModelFile reads a model preset YAML of the form {model: {...}}.
func LoadModelFile(path string) (ModelConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ModelConfig{}, err
	}
	var w modelFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ModelConfig{}, err
	}
	return w.Model, nil
}

// MergeModel overlays non-zero fields from override onto base. Used when a
// preset file is loaded and then adjusted by the experiment config or an API
// request.
func MergeModel(base, override ModelConfig) ModelConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CRRA != 0 {
		out.CRRA = override.CRRA
	}
	if override.DiscFac != 0 {
		out.DiscFac = override.DiscFac
	}
	if override.Rfree != 0 {
		out.Rfree = override.Rfree
	}
	if len(override.LivPrb) > 0 {
		out.LivPrb = override.LivPrb
	}
	if len(override.PermGroFac) > 0 {
		out.PermGroFac = override.PermGroFac
	}
	if len(override.PermShkStd) > 0 {
		out.PermShkStd = override.PermShkStd
	}
	if len(override.TranShkStd) > 0 {
		out.TranShkStd = override.TranShkStd
	}
	if override.PermShkCount != 0 {
		out.PermShkCount = override.PermShkCount
	}
	if override.TranShkCount != 0 {
		out.TranShkCount = override.TranShkCount
	}
	if override.UnempPrb != 0 {
		out.UnempPrb = override.UnempPrb
	}
	if override.IncUnemp != 0 {
		out.IncUnemp = override.IncUnemp
	}
	if override.BoroCnstArt != 0 {
		out.BoroCnstArt = override.BoroCnstArt
	}
	if override.AXtraMin != 0 {
		out.AXtraMin = override.AXtraMin
	}
	if override.AXtraMax != 0 {
		out.AXtraMax = override.AXtraMax
	}
	if override.AXtraCount != 0 {
		out.AXtraCount = override.AXtraCount
	}
	if override.T != 0 {
		out.T = override.T
	}
	if override.Tolerance != 0 {
		out.Tolerance = override.Tolerance
	}
	if override.MaxIter != 0 {
		out.MaxIter = override.MaxIter
	}
	return out
}
