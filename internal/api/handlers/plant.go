package handlers

import (
	"net/http"

	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlantHandler handles HTTP requests for plant operations
type PlantHandler struct {
	plantService service.PlantServiceInterface
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(plantService service.PlantServiceInterface) *PlantHandler {
	return &PlantHandler{
		plantService: plantService,
	}
}

// ListPlantsByGarden handles GET /gardens/:id/plants
// @Summary List plants of a garden
// @Tags plants
// @Produce json
// @Param id path string true "Garden ID (UUID)"
// @Success 200 {array} service.PlantResponse "Successfully retrieved plants"
// @Failure 400 {object} map[string]interface{} "Invalid garden ID"
// @Failure 404 {object} map[string]interface{} "Garden not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gardens/{id}/plants [get]
func (h *PlantHandler) ListPlantsByGarden(c *gin.Context) {
	gardenID, ok := parseID(c, "id", "garden")
	if !ok {
		return
	}

	plants, err := h.plantService.ListByGarden(c.Request.Context(), gardenID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plants)
}

// ListPlantsByRaisedBed handles GET /raised-beds/:id/plants
// @Summary List plants of a raised bed
// @Tags plants
// @Produce json
// @Param id path string true "Raised bed ID (UUID)"
// @Success 200 {array} service.PlantResponse "Successfully retrieved plants"
// @Failure 400 {object} map[string]interface{} "Invalid raised bed ID"
// @Failure 404 {object} map[string]interface{} "Raised bed not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /raised-beds/{id}/plants [get]
func (h *PlantHandler) ListPlantsByRaisedBed(c *gin.Context) {
	bedID, ok := parseID(c, "id", "raised bed")
	if !ok {
		return
	}

	plants, err := h.plantService.ListByRaisedBed(c.Request.Context(), bedID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plants)
}

// PlacePlant handles POST /gardens/:id/plants
// @Summary Place a plant
// @Description Place a plant of the named type with its top-left corner at (x, y). A plant whose centre lies in a raised bed must fit entirely inside it; otherwise it goes into the ground.
// @Tags plants
// @Accept json
// @Produce json
// @Param id path string true "Garden ID (UUID)"
// @Param X-Correlation-ID header string false "Client id used to track the placement"
// @Param plant body service.PlacePlantRequest true "Plant type and position"
// @Success 201 {object} service.PlantResponse "Successfully placed plant"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Garden or plant type not found"
// @Failure 409 {object} map[string]interface{} "Correlation id already in use"
// @Failure 422 {object} ValidationErrorResponse "Placement rejected"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gardens/{id}/plants [post]
func (h *PlantHandler) PlacePlant(c *gin.Context) {
	gardenID, ok := parseID(c, "id", "garden")
	if !ok {
		return
	}
	var req service.PlacePlantRequest
	if !bindJSON(c, &req) {
		return
	}

	plant, err := h.plantService.Place(c.Request.Context(), gardenID, &req, c.GetHeader(CorrelationIDHeader))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plant)
}

// UpdatePlant handles PATCH /plants/:id
// @Summary Update a plant
// @Tags plants
// @Accept json
// @Produce json
// @Param id path string true "Plant ID (UUID)"
// @Param plant body service.UpdatePlantRequest true "Fields to change"
// @Success 200 {object} service.PlantResponse "Successfully updated plant"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Plant not found"
// @Failure 422 {object} ValidationErrorResponse "Invalid plant"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plants/{id} [patch]
func (h *PlantHandler) UpdatePlant(c *gin.Context) {
	id, ok := parseID(c, "id", "plant")
	if !ok {
		return
	}
	var req service.UpdatePlantRequest
	if !bindJSON(c, &req) {
		return
	}

	plant, err := h.plantService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plant)
}

// MovePlant handles PUT /plants/:id/position
// @Summary Move a plant
// @Description Drag a plant to (x, y). The position is clamped to the garden and snapped to the grid; the raised bed is kept.
// @Tags plants
// @Accept json
// @Produce json
// @Param id path string true "Plant ID (UUID)"
// @Param position body service.MovePlantRequest true "Drop position"
// @Success 200 {object} service.PlantResponse "Successfully moved plant"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Plant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plants/{id}/position [put]
func (h *PlantHandler) MovePlant(c *gin.Context) {
	id, ok := parseID(c, "id", "plant")
	if !ok {
		return
	}
	var req service.MovePlantRequest
	if !bindJSON(c, &req) {
		return
	}

	plant, err := h.plantService.Move(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plant)
}

// DeletePlant handles DELETE /plants/:id
// @Summary Delete a plant
// @Tags plants
// @Param id path string true "Plant ID (UUID)"
// @Success 204 "Successfully deleted plant"
// @Failure 400 {object} map[string]interface{} "Invalid plant ID"
// @Failure 404 {object} map[string]interface{} "Plant not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /plants/{id} [delete]
func (h *PlantHandler) DeletePlant(c *gin.Context) {
	id, ok := parseID(c, "id", "plant")
	if !ok {
		return
	}

	if err := h.plantService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
