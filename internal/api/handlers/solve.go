package handlers

import (
	"net/http"

	"bufferstock/internal/api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Solve handles POST /api/v1/solve.
func (h *Handler) Solve(c *gin.Context) {
	var req models.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	p, err := h.buildParams(req.ModelSpec, models.SimulationConfig{})
	if err != nil {
		badRequest(c, "INVALID_MODEL", err)
		return
	}

	policy, cached, err := h.solveCached(p)
	if err != nil {
		unprocessable(c, "SOLVE_ERROR", err)
		return
	}
	if h.Logger != nil {
		h.Logger.Info("solved model",
			zap.Float64("disc_fac", p.DiscFac),
			zap.Int("periods", p.T),
			zap.Bool("cached", cached))
	}

	resp := models.SolveResponse{
		Status:  "ok",
		Summary: policySummary(p, policy),
		Cached:  cached,
	}

	if req.Options.TabulatePoints > 0 {
		mMax := req.Options.MMax
		if mMax <= 0 {
			mMax = 20.0
		}
		ms, cs := policy[0].Tabulate(policy[0].MNrmMin, mMax, req.Options.TabulatePoints)
		resp.Policy = make([]models.PolicyPoint, len(ms))
		for i := range ms {
			resp.Policy[i] = models.PolicyPoint{MNrm: ms[i], CNrm: cs[i]}
		}
	}

	c.JSON(http.StatusOK, resp)
}
