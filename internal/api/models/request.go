package models

import "bufferstock/internal/config"

// ModelSpec selects model parameters for a request: a preset ID, inline
// parameters, or a preset with inline overrides.
type ModelSpec struct {
	// ModelID names a preset from the server's model directory.
	ModelID string `json:"model_id,omitempty"`
	// Model holds inline parameters; non-zero fields override the preset.
	Model ModelConfig `json:"model,omitempty"`
}

// ModelConfig mirrors config.ModelConfig with JSON tags for request binding.
type ModelConfig struct {
	Name string `json:"name,omitempty"`

	CRRA    float64 `json:"crra,omitempty"`
	DiscFac float64 `json:"disc_fac,omitempty"`
	Rfree   float64 `json:"rfree,omitempty"`

	LivPrb     []float64 `json:"liv_prb,omitempty"`
	PermGroFac []float64 `json:"perm_gro_fac,omitempty"`
	PermShkStd []float64 `json:"perm_shk_std,omitempty"`
	TranShkStd []float64 `json:"tran_shk_std,omitempty"`

	PermShkCount int     `json:"perm_shk_count,omitempty"`
	TranShkCount int     `json:"tran_shk_count,omitempty"`
	UnempPrb     float64 `json:"unemp_prb,omitempty"`
	IncUnemp     float64 `json:"inc_unemp,omitempty"`

	BoroCnstArt float64 `json:"boro_cnst_art,omitempty"`

	AXtraMin   float64 `json:"axtra_min,omitempty"`
	AXtraMax   float64 `json:"axtra_max,omitempty"`
	AXtraCount int     `json:"axtra_count,omitempty"`

	T int `json:"periods,omitempty"`

	Tolerance float64 `json:"tolerance,omitempty"`
	MaxIter   int     `json:"max_iter,omitempty"`
}

func (m ModelConfig) ToConfig() config.ModelConfig {
	return config.ModelConfig{
		Name:         m.Name,
		CRRA:         m.CRRA,
		DiscFac:      m.DiscFac,
		Rfree:        m.Rfree,
		LivPrb:       m.LivPrb,
		PermGroFac:   m.PermGroFac,
		PermShkStd:   m.PermShkStd,
		TranShkStd:   m.TranShkStd,
		PermShkCount: m.PermShkCount,
		TranShkCount: m.TranShkCount,
		UnempPrb:     m.UnempPrb,
		IncUnemp:     m.IncUnemp,
		BoroCnstArt:  m.BoroCnstArt,
		AXtraMin:     m.AXtraMin,
		AXtraMax:     m.AXtraMax,
		AXtraCount:   m.AXtraCount,
		T:            m.T,
		Tolerance:    m.Tolerance,
		MaxIter:      m.MaxIter,
	}
}

// SimulationConfig mirrors config.SimulationConfig for requests.
type SimulationConfig struct {
	Periods    int     `json:"periods,omitempty"`
	AgentCount int     `json:"agents,omitempty"`
	ANrmInit   float64 `json:"anrm_init,omitempty"`
	Seed       int64   `json:"seed,omitempty"`
}

func (s SimulationConfig) ToConfig() config.SimulationConfig {
	return config.SimulationConfig{
		Periods:    s.Periods,
		AgentCount: s.AgentCount,
		ANrmInit:   s.ANrmInit,
		Seed:       s.Seed,
	}
}

// PopulationConfig describes heterogeneous discount factors for a request.
type PopulationConfig struct {
	Types  int     `json:"types"`
	Center float64 `json:"disc_fac_center,omitempty"`
	Spread float64 `json:"disc_fac_spread,omitempty"`
}

// SolveRequest asks for the consumption policy of one model.
type SolveRequest struct {
	ModelSpec
	Options SolveOptions `json:"options,omitempty"`
}

type SolveOptions struct {
	TabulatePoints int     `json:"tabulate_points,omitempty"` // 0 = no tabulation
	MMax           float64 `json:"m_max,omitempty"`           // tabulation domain upper bound
}

// SimulateRequest asks to solve a model and simulate its population.
type SimulateRequest struct {
	ModelSpec
	Simulation SimulationConfig `json:"simulation,omitempty"`
	Options    SimulateOptions  `json:"options,omitempty"`
}

type SimulateOptions struct {
	IncludePanel bool `json:"include_panel,omitempty"`
	PanelPeriods int  `json:"panel_periods,omitempty"` // trailing periods kept in the panel
}

// DistributionRequest asks for the wealth distribution of a population of
// types differing only in discount factor.
type DistributionRequest struct {
	ModelSpec
	Simulation  SimulationConfig `json:"simulation,omitempty"`
	Population  PopulationConfig `json:"population"`
	Percentiles []float64        `json:"percentiles,omitempty"`
}

// EstimateRequest asks for the discount factor distribution that best matches
// target Lorenz shares.
type EstimateRequest struct {
	ModelSpec
	Simulation SimulationConfig `json:"simulation,omitempty"`
	Targets    TargetsConfig    `json:"targets,omitempty"`
	Search     SearchConfig     `json:"search,omitempty"`
}

type TargetsConfig struct {
	Percentiles []float64 `json:"percentiles,omitempty"`
	Lorenz      []float64 `json:"lorenz,omitempty"`
}

type SearchConfig struct {
	Spread     float64 `json:"spread,omitempty"`
	Types      int     `json:"types,omitempty"`
	SimPeriods int     `json:"sim_periods,omitempty"`
	CenterMin  float64 `json:"center_min,omitempty"`
	CenterMax  float64 `json:"center_max,omitempty"`
	Tolerance  float64 `json:"tolerance,omitempty"`
}
