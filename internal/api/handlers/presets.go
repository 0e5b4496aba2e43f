package handlers

import (
	"net/http"

	"bufferstock/internal/api/models"
	"bufferstock/internal/data"

	"github.com/gin-gonic/gin"
)

// ListModels handles GET /api/v1/models.
func (h *Handler) ListModels(c *gin.Context) {
	presets, err := data.ListModelPresets(h.PresetDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "PRESET_DIR_ERROR", Message: err.Error()},
		})
		return
	}
	out := make([]models.ModelInfo, 0, len(presets))
	for _, p := range presets {
		out = append(out, models.ModelInfo{
			ID:      p.ID,
			Name:    p.Name,
			File:    p.File,
			CRRA:    p.Model.CRRA,
			DiscFac: p.Model.DiscFac,
			Rfree:   p.Model.Rfree,
			Periods: p.Model.T,
		})
	}
	c.JSON(http.StatusOK, models.ModelsResponse{Models: out})
}
