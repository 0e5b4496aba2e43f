package handlers

import (
	"net/http"

	"bufferstock/internal/analysis"
	"bufferstock/internal/api/models"
	"bufferstock/internal/simulate"

	"github.com/gin-gonic/gin"
)

// Simulate handles POST /api/v1/simulate.
func (h *Handler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	p, err := h.buildParams(req.ModelSpec, req.Simulation)
	if err != nil {
		badRequest(c, "INVALID_MODEL", err)
		return
	}

	policy, _, err := h.solveCached(p)
	if err != nil {
		unprocessable(c, "SOLVE_ERROR", err)
		return
	}

	sim, err := simulate.New(p, policy)
	if err != nil {
		unprocessable(c, "SIMULATION_ERROR", err)
		return
	}

	var panel []simulate.Record
	if req.Options.IncludePanel {
		keep := req.Options.PanelPeriods
		if keep <= 0 || keep > p.SimPeriods {
			keep = p.SimPeriods
		}
		if warmup := p.SimPeriods - keep; warmup > 0 {
			sim.Run(warmup)
		}
		panel = sim.RunPanel(keep)
	} else {
		sim.Run(0)
	}

	summary, err := analysis.Summarize(sim.ALvl(), nil)
	if err != nil {
		unprocessable(c, "ANALYSIS_ERROR", err)
		return
	}

	resp := models.SimulateResponse{
		Status:  "ok",
		Periods: sim.PeriodsSimulated(),
		Agents:  p.AgentCount,
		Policy:  policySummary(p, policy),
		Wealth:  wealthSummary(summary),
	}
	if req.Options.IncludePanel {
		resp.Panel = make([]models.PanelRow, len(panel))
		for i, r := range panel {
			resp.Panel[i] = models.PanelRow{
				Period: r.Period,
				Agent:  r.Agent,
				Age:    r.Age,
				MNrm:   r.MNrm,
				CNrm:   r.CNrm,
				ANrm:   r.ANrm,
				PLvl:   r.PLvl,
				ALvl:   r.ALvl,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

func wealthSummary(s analysis.WealthSummary) models.WealthSummary {
	return models.WealthSummary{
		Count:        s.Count,
		Mean:         s.Mean,
		Median:       s.Median,
		Min:          s.Min,
		Max:          s.Max,
		P05:          s.P05,
		P25:          s.P25,
		P75:          s.P75,
		P95:          s.P95,
		Gini:         s.Gini,
		LorenzShares: s.LorenzShares,
	}
}
