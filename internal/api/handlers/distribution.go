package handlers

import (
	"net/http"

	"bufferstock/internal/analysis"
	"bufferstock/internal/api/models"
	"bufferstock/internal/simulate"

	"github.com/gin-gonic/gin"
)

// Distribution handles POST /api/v1/distribution: solve and simulate a
// population of types spanning a discount factor interval, and report the
// resulting wealth distribution.
func (h *Handler) Distribution(c *gin.Context) {
	var req models.DistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	p, err := h.buildParams(req.ModelSpec, req.Simulation)
	if err != nil {
		badRequest(c, "INVALID_MODEL", err)
		return
	}

	spec := simulate.PopulationSpec{
		Types:  req.Population.Types,
		Center: req.Population.Center,
		Spread: req.Population.Spread,
	}
	if spec.Center == 0 {
		spec.Center = p.DiscFac
	}
	if err := spec.Validate(); err != nil {
		badRequest(c, "INVALID_POPULATION", err)
		return
	}

	percentiles := req.Percentiles
	if len(percentiles) == 0 {
		percentiles = analysis.DefaultLorenzPercentiles
	}

	pop, err := simulate.RunPopulation(p, spec, 0)
	if err != nil {
		unprocessable(c, "SIMULATION_ERROR", err)
		return
	}

	wealth := pop.ALvl()
	lorenz, err := analysis.LorenzShares(wealth, percentiles)
	if err != nil {
		unprocessable(c, "ANALYSIS_ERROR", err)
		return
	}
	summary, err := analysis.Summarize(wealth, percentiles)
	if err != nil {
		unprocessable(c, "ANALYSIS_ERROR", err)
		return
	}

	c.JSON(http.StatusOK, models.DistributionResponse{
		Status:      "ok",
		DiscFacs:    spec.DiscFacs(),
		Percentiles: percentiles,
		Lorenz:      lorenz,
		Wealth:      wealthSummary(summary),
	})
}
