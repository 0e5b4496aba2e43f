package handlers

import (
	"net/http"

	"bufferstock/internal/api/models"
	"bufferstock/internal/estimate"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Estimate handles POST /api/v1/estimate: fit the center of a uniform
// discount factor distribution to target Lorenz shares.
func (h *Handler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	p, err := h.buildParams(req.ModelSpec, req.Simulation)
	if err != nil {
		badRequest(c, "INVALID_MODEL", err)
		return
	}

	targets := estimate.USWealthTargets()
	if len(req.Targets.Percentiles) > 0 {
		targets = estimate.Targets{
			Percentiles: req.Targets.Percentiles,
			Shares:      req.Targets.Lorenz,
		}
	}

	opts := estimate.Options{
		Spread:     req.Search.Spread,
		Types:      req.Search.Types,
		SimPeriods: req.Search.SimPeriods,
		CenterMin:  req.Search.CenterMin,
		CenterMax:  req.Search.CenterMax,
		Tolerance:  req.Search.Tolerance,
	}

	res, err := estimate.DiscFacDistribution(p, targets, opts)
	if err != nil {
		unprocessable(c, "ESTIMATION_ERROR", err)
		return
	}
	if h.Logger != nil {
		h.Logger.Info("estimated discount factor distribution",
			zap.Float64("center", res.Center),
			zap.Float64("spread", res.Spread),
			zap.Float64("distance", res.Distance),
			zap.Int("evaluations", res.Evaluations))
	}

	c.JSON(http.StatusOK, models.EstimateResponse{
		Status:      "ok",
		Center:      res.Center,
		Spread:      res.Spread,
		Distance:    res.Distance,
		Percentiles: targets.Percentiles,
		Lorenz:      res.Lorenz,
		Targets:     targets.Shares,
		Evaluations: res.Evaluations,
	})
}
