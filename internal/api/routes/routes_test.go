package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garden-planner-backend/internal/api/handlers"
	"garden-planner-backend/internal/config"
	"garden-planner-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AllowedOrigins:        []string{"http://localhost:5173"},
		BulkDeleteConcurrency: 2,
		PlacementRetention:    time.Minute,
	}
}

func TestSetupRoutes_RegistersAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(nil, testConfig())

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /api/v1/gardens",
		"POST /api/v1/gardens",
		"POST /api/v1/gardens/bulk-delete",
		"GET /api/v1/gardens/:id",
		"PATCH /api/v1/gardens/:id",
		"DELETE /api/v1/gardens/:id",
		"GET /api/v1/gardens/:id/layout",
		"GET /api/v1/gardens/:id/raised-beds",
		"POST /api/v1/gardens/:id/raised-beds",
		"GET /api/v1/gardens/:id/plants",
		"POST /api/v1/gardens/:id/plants",
		"GET /api/v1/raised-beds/:id",
		"PATCH /api/v1/raised-beds/:id",
		"DELETE /api/v1/raised-beds/:id",
		"GET /api/v1/raised-beds/:id/plants",
		"GET /api/v1/materials",
		"PATCH /api/v1/plants/:id",
		"PUT /api/v1/plants/:id/position",
		"DELETE /api/v1/plants/:id",
		"GET /api/v1/plant-types",
		"POST /api/v1/plant-types/seed",
		"GET /api/v1/maintenance/orphans/plants",
		"GET /api/v1/maintenance/orphans/raised-beds",
		"POST /api/v1/maintenance/cleanup/plants",
		"POST /api/v1/maintenance/cleanup/raised-beds",
		"POST /api/v1/maintenance/cleanup",
		"GET /api/v1/placements/:correlation_id",
		"GET /health",
		"GET /health/ready",
		"GET /health/live",
		"GET /metrics",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestSetupRoutes_ServesWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRoutes(nil, testConfig())

	t.Run("liveness", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "garden_pending_placements")
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})

	api := testutils.SetupHTTPTest(router)

	t.Run("materials", func(t *testing.T) {
		var materials []handlers.MaterialResponse
		testutils.AssertJSONResponse(t, api.MakeRequest(http.MethodGet, "/api/v1/materials", nil), http.StatusOK, &materials)
		require.Len(t, materials, 4)
		assert.Equal(t, "wood", materials[0].Material)
		assert.Equal(t, "#8B4513", materials[0].Color)
	})

	t.Run("unknown placement", func(t *testing.T) {
		w := api.MakeRequest(http.MethodGet, "/api/v1/placements/nothing-here", nil)
		testutils.AssertErrorResponse(t, w, http.StatusNotFound, "placement not found")
	})

	t.Run("request id is echoed", func(t *testing.T) {
		w := api.MakeRequestWithHeaders(http.MethodGet, "/health/live", nil, map[string]string{"X-Request-ID": "abc-123"})
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}
