package models

// PolicySummary exposes the scalar bounds of a solved policy.
type PolicySummary struct {
	MNrmMin    float64 `json:"m_nrm_min"`
	HNrm       float64 `json:"h_nrm"`
	MPCMin     float64 `json:"mpc_min"`
	MPCMax     float64 `json:"mpc_max"`
	Gridpoints int     `json:"gridpoints"`
	Periods    int     `json:"periods"` // 0 for an infinite horizon
}

// PolicyPoint is one (m, c) sample of a consumption function.
type PolicyPoint struct {
	MNrm float64 `json:"m_nrm"`
	CNrm float64 `json:"c_nrm"`
}

// SolveResponse returns the solved policy. Policy is present only when the
// request asked for tabulation.
type SolveResponse struct {
	Status  string        `json:"status"`
	Summary PolicySummary `json:"summary"`
	Policy  []PolicyPoint `json:"policy,omitempty"`
	Cached  bool          `json:"cached"`
}

// WealthSummary is the JSON shape of a simulated wealth distribution summary.
type WealthSummary struct {
	Count int `json:"count"`

	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`

	P05 float64 `json:"p05"`
	P25 float64 `json:"p25"`
	P75 float64 `json:"p75"`
	P95 float64 `json:"p95"`

	Gini         float64   `json:"gini"`
	LorenzShares []float64 `json:"lorenz_shares"`
}

// PanelRow is one agent-period observation in a simulation panel.
type PanelRow struct {
	Period int     `json:"period"`
	Agent  int     `json:"agent"`
	Age    int     `json:"age"`
	MNrm   float64 `json:"m_nrm"`
	CNrm   float64 `json:"c_nrm"`
	ANrm   float64 `json:"a_nrm"`
	PLvl   float64 `json:"p_lvl"`
	ALvl   float64 `json:"a_lvl"`
}

// SimulateResponse returns simulation aggregates and optionally the panel.
type SimulateResponse struct {
	Status  string        `json:"status"`
	Periods int           `json:"periods"`
	Agents  int           `json:"agents"`
	Policy  PolicySummary `json:"policy"`
	Wealth  WealthSummary `json:"wealth"`
	Panel   []PanelRow    `json:"panel,omitempty"`
}

// DistributionResponse returns the wealth distribution of a heterogeneous
// discount factor population.
type DistributionResponse struct {
	Status      string        `json:"status"`
	DiscFacs    []float64     `json:"disc_facs"`
	Percentiles []float64     `json:"percentiles"`
	Lorenz      []float64     `json:"lorenz"`
	Wealth      WealthSummary `json:"wealth"`
}

// EstimateResponse returns the fitted discount factor distribution.
type EstimateResponse struct {
	Status      string    `json:"status"`
	Center      float64   `json:"center"`
	Spread      float64   `json:"spread"`
	Distance    float64   `json:"distance"`
	Percentiles []float64 `json:"percentiles"`
	Lorenz      []float64 `json:"lorenz"`
	Targets     []float64 `json:"targets"`
	Evaluations int       `json:"evaluations"`
}

// ModelInfo describes one model preset.
type ModelInfo struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	File    string  `json:"file"`
	CRRA    float64 `json:"crra"`
	DiscFac float64 `json:"disc_fac"`
	Rfree   float64 `json:"rfree"`
	Periods int     `json:"periods"`
}

// ModelsResponse lists available presets.
type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
