package handlers

import (
	"net/http"
	"strconv"

	"garden-planner-backend/internal/database/models"
	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RaisedBedHandler handles HTTP requests for raised bed operations
type RaisedBedHandler struct {
	raisedBedService service.RaisedBedServiceInterface
}

// NewRaisedBedHandler creates a new raised bed handler
func NewRaisedBedHandler(raisedBedService service.RaisedBedServiceInterface) *RaisedBedHandler {
	return &RaisedBedHandler{
		raisedBedService: raisedBedService,
	}
}

// MaterialResponse is the default colour of one bed material
type MaterialResponse struct {
	Material string `json:"material" example:"wood"`
	Color    string `json:"color" example:"#8B4513"`
}

// ListRaisedBeds handles GET /gardens/:id/raised-beds
// @Summary List raised beds of a garden
// @Description Get the raised beds of a garden. With include_pending=true, placements still in flight are listed too.
// @Tags raised-beds
// @Produce json
// @Param id path string true "Garden ID (UUID)"
// @Param include_pending query bool false "Include pending optimistic placements"
// @Success 200 {object} service.RaisedBedListResponse "Successfully retrieved raised beds"
// @Failure 400 {object} map[string]interface{} "Invalid garden ID"
// @Failure 404 {object} map[string]interface{} "Garden not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gardens/{id}/raised-beds [get]
func (h *RaisedBedHandler) ListRaisedBeds(c *gin.Context) {
	gardenID, ok := parseID(c, "id", "garden")
	if !ok {
		return
	}
	includePending, _ := strconv.ParseBool(c.DefaultQuery("include_pending", "false"))

	resp, err := h.raisedBedService.ListByGarden(c.Request.Context(), gardenID, includePending)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PlaceRaisedBed handles POST /gardens/:id/raised-beds
// @Summary Place a raised bed
// @Description Place a raised bed with its top-left corner at (x, y). The corner snaps to the 0.25 m grid. Omitted settings use the defaults.
// @Tags raised-beds
// @Accept json
// @Produce json
// @Param id path string true "Garden ID (UUID)"
// @Param X-Correlation-ID header string false "Client id used to track the placement"
// @Param bed body service.PlaceRaisedBedRequest true "Position and settings"
// @Success 201 {object} service.RaisedBedResponse "Successfully placed raised bed"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Garden not found"
// @Failure 409 {object} map[string]interface{} "Correlation id already in use"
// @Failure 422 {object} ValidationErrorResponse "Placement rejected"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gardens/{id}/raised-beds [post]
func (h *RaisedBedHandler) PlaceRaisedBed(c *gin.Context) {
	gardenID, ok := parseID(c, "id", "garden")
	if !ok {
		return
	}
	var req service.PlaceRaisedBedRequest
	if !bindJSON(c, &req) {
		return
	}

	bed, err := h.raisedBedService.Place(c.Request.Context(), gardenID, &req, c.GetHeader(CorrelationIDHeader))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bed)
}

// GetRaisedBed handles GET /raised-beds/:id
// @Summary Get raised bed by ID
// @Tags raised-beds
// @Produce json
// @Param id path string true "Raised bed ID (UUID)"
// @Success 200 {object} service.RaisedBedResponse "Successfully retrieved raised bed"
// @Failure 400 {object} map[string]interface{} "Invalid raised bed ID"
// @Failure 404 {object} map[string]interface{} "Raised bed not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /raised-beds/{id} [get]
func (h *RaisedBedHandler) GetRaisedBed(c *gin.Context) {
	id, ok := parseID(c, "id", "raised bed")
	if !ok {
		return
	}

	bed, err := h.raisedBedService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bed)
}

// UpdateRaisedBed handles PATCH /raised-beds/:id
// @Summary Update a raised bed
// @Description Change the fields present in the body. A new material also resets the colour unless one is given.
// @Tags raised-beds
// @Accept json
// @Produce json
// @Param id path string true "Raised bed ID (UUID)"
// @Param bed body service.UpdateRaisedBedRequest true "Fields to change"
// @Success 200 {object} service.RaisedBedResponse "Successfully updated raised bed"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Raised bed not found"
// @Failure 422 {object} ValidationErrorResponse "Invalid raised bed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /raised-beds/{id} [patch]
func (h *RaisedBedHandler) UpdateRaisedBed(c *gin.Context) {
	id, ok := parseID(c, "id", "raised bed")
	if !ok {
		return
	}
	var req service.UpdateRaisedBedRequest
	if !bindJSON(c, &req) {
		return
	}

	bed, err := h.raisedBedService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bed)
}

// DeleteRaisedBed handles DELETE /raised-beds/:id
// @Summary Delete a raised bed
// @Description Delete a raised bed. Its plants stay in the garden with no bed.
// @Tags raised-beds
// @Param id path string true "Raised bed ID (UUID)"
// @Success 204 "Successfully deleted raised bed"
// @Failure 400 {object} map[string]interface{} "Invalid raised bed ID"
// @Failure 404 {object} map[string]interface{} "Raised bed not found"
// @Failure 500 {object} map[string]interface{} "Cascade failed"
// @Router /raised-beds/{id} [delete]
func (h *RaisedBedHandler) DeleteRaisedBed(c *gin.Context) {
	id, ok := parseID(c, "id", "raised bed")
	if !ok {
		return
	}

	if err := h.raisedBedService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ListMaterials handles GET /materials
// @Summary List bed materials
// @Description Get every raised bed material with its default colour
// @Tags raised-beds
// @Produce json
// @Success 200 {array} MaterialResponse "Materials"
// @Router /materials [get]
func (h *RaisedBedHandler) ListMaterials(c *gin.Context) {
	colors := h.raisedBedService.MaterialColors()

	materials := make([]MaterialResponse, 0, len(colors))
	for _, m := range []models.Material{models.MaterialWood, models.MaterialStone, models.MaterialMetal, models.MaterialComposite} {
		if color, ok := colors[m]; ok {
			materials = append(materials, MaterialResponse{Material: string(m), Color: color})
		}
	}

	c.JSON(http.StatusOK, materials)
}
