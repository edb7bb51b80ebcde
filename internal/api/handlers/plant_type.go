package handlers

import (
	"net/http"

	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlantTypeHandler handles HTTP requests for the plant type catalog
type PlantTypeHandler struct {
	plantTypeService service.PlantTypeServiceInterface
}

// NewPlantTypeHandler creates a new plant type handler
func NewPlantTypeHandler(plantTypeService service.PlantTypeServiceInterface) *PlantTypeHandler {
	return &PlantTypeHandler{
		plantTypeService: plantTypeService,
	}
}

// ListPlantTypes handles GET /plant-types
// @Summary List plant types
// @Description Get the plant type catalog, optionally filtered by category
// @Tags plant-types
// @Produce json
// @Param category query string false "Category filter (e.g. vegetable, herb)"
// @Success 200 {array} models.PlantType "Successfully retrieved plant types"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plant-types [get]
func (h *PlantTypeHandler) ListPlantTypes(c *gin.Context) {
	types, err := h.plantTypeService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// SeedPlantTypes handles POST /plant-types/seed
// @Summary Seed plant types
// @Description Insert the built-in catalog when no plant type exists yet. Running it again does nothing.
// @Tags plant-types
// @Produce json
// @Success 200 {object} service.SeedPlantTypesResponse "Seed outcome"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plant-types/seed [post]
func (h *PlantTypeHandler) SeedPlantTypes(c *gin.Context) {
	resp, err := h.plantTypeService.Seed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
