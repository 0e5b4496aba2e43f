package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bufferstock/internal/api/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "buffer_stock.yaml"), []byte(`
model:
  name: Buffer Stock
  crra: 2.0
  disc_fac: 0.96
  rfree: 1.03
`), 0o644))

	return NewRouter(Options{PresetDir: dir})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListModels(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/v1/models", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ModelsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Models, 1)
	assert.Equal(t, "buffer_stock", resp.Models[0].ID)
	assert.Equal(t, "Buffer Stock", resp.Models[0].Name)
	assert.Equal(t, 0.96, resp.Models[0].DiscFac)
}

func TestSolveEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	body := map[string]any{
		"model_id": "buffer_stock",
		"options":  map[string]any{"tabulate_points": 25, "m_max": 10},
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/solve", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Cached)
	assert.Equal(t, 0.0, resp.Summary.MNrmMin)
	assert.Positive(t, resp.Summary.HNrm)
	assert.Greater(t, resp.Summary.MPCMin, 0.0)
	assert.Less(t, resp.Summary.MPCMin, 1.0)
	require.Len(t, resp.Policy, 25)
	for i := 1; i < len(resp.Policy); i++ {
		assert.Greater(t, resp.Policy[i].CNrm, resp.Policy[i-1].CNrm)
	}

	// Second identical request hits the solution cache.
	w = doJSON(t, router, http.MethodPost, "/api/v1/solve", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)
}

func TestSolveRejectsUnknownPreset(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/v1/solve", map[string]any{"model_id": "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_MODEL", resp.Error.Code)
}

func TestSolveRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/v1/solve", map[string]any{
		"model": map[string]any{"crra": -2.0},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveReportsNonConvergence(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	// A patient consumer facing high returns violates growth impatience.
	w := doJSON(t, router, http.MethodPost, "/api/v1/solve", map[string]any{
		"model": map[string]any{"disc_fac": 0.999, "rfree": 1.08, "perm_gro_fac": []float64{1.0}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SOLVE_ERROR", resp.Error.Code)
}

func TestSimulateEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/v1/simulate", map[string]any{
		"model_id":   "buffer_stock",
		"simulation": map[string]any{"agents": 100, "periods": 30, "seed": 5},
		"options":    map[string]any{"include_panel": true, "panel_periods": 2},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SimulateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 30, resp.Periods)
	assert.Equal(t, 100, resp.Agents)
	assert.Equal(t, 100, resp.Wealth.Count)
	assert.Len(t, resp.Panel, 200, "2 trailing periods x 100 agents")
	assert.GreaterOrEqual(t, resp.Wealth.Gini, 0.0)
	require.Len(t, resp.Wealth.LorenzShares, 4)
}

func TestDistributionEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/v1/distribution", map[string]any{
		"model_id":   "buffer_stock",
		"simulation": map[string]any{"agents": 80, "periods": 40},
		"population": map[string]any{"types": 3, "disc_fac_spread": 0.01},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.DistributionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.DiscFacs, 3)
	assert.InDelta(t, 0.96, resp.DiscFacs[1], 1e-9, "center defaults to the model's discount factor")
	require.Len(t, resp.Lorenz, 4)
	assert.Equal(t, 240, resp.Wealth.Count)
}

func TestDistributionRejectsBadPopulation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/v1/distribution", map[string]any{
		"model_id":   "buffer_stock",
		"population": map[string]any{"types": 0},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_POPULATION", resp.Error.Code)
}

func TestInvalidJSONRejected(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
