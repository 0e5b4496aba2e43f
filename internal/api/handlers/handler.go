package handlers

import (
	"fmt"
	"net/http"

	"bufferstock/internal/api/models"
	"bufferstock/internal/config"
	"bufferstock/internal/data"
	"bufferstock/internal/model"
	"bufferstock/internal/solve"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries the shared dependencies of all API endpoints.
type Handler struct {
	PresetDir string
	Cache     *data.SolutionCache
	Logger    *zap.Logger
}

func New(presetDir string, cache *data.SolutionCache, logger *zap.Logger) *Handler {
	return &Handler{PresetDir: presetDir, Cache: cache, Logger: logger}
}

// buildParams resolves a request's model spec (preset ID plus inline
// overrides) and simulation settings into validated solver parameters.
func (h *Handler) buildParams(spec models.ModelSpec, sim models.SimulationConfig) (model.Params, error) {
	cfg := &config.Config{
		Model:      spec.Model.ToConfig(),
		Simulation: sim.ToConfig(),
	}
	if spec.ModelID != "" {
		preset, err := data.FindModelPreset(h.PresetDir, spec.ModelID)
		if err != nil {
			return model.Params{}, err
		}
		cfg.Model = config.MergeModel(preset.Model, cfg.Model)
	}
	p := cfg.ToParams()
	if err := p.Validate(); err != nil {
		return model.Params{}, fmt.Errorf("invalid model: %w", err)
	}
	return p, nil
}

// solveCached solves p, reusing a cached policy when possible. The second
// return reports a cache hit.
func (h *Handler) solveCached(p model.Params) ([]*solve.Solution, bool, error) {
	key := data.Key(p)
	if policy, ok := h.Cache.Get(key); ok {
		return policy, true, nil
	}
	policy, err := solve.Solve(p)
	if err != nil {
		return nil, false, err
	}
	h.Cache.Set(key, policy)
	return policy, false, nil
}

func policySummary(p model.Params, policy []*solve.Solution) models.PolicySummary {
	first := policy[0]
	return models.PolicySummary{
		MNrmMin:    first.MNrmMin,
		HNrm:       first.HNrm,
		MPCMin:     first.MPCMin,
		MPCMax:     first.MPCMax,
		Gridpoints: len(first.MNrm),
		Periods:    p.T,
	}
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}

func unprocessable(c *gin.Context, code string, err error) {
	c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}
