package handlers

import (
	"net/http"

	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GardenHandler handles HTTP requests for garden operations
type GardenHandler struct {
	gardenService service.GardenServiceInterface
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(gardenService service.GardenServiceInterface) *GardenHandler {
	return &GardenHandler{
		gardenService: gardenService,
	}
}

// ListGardens handles GET /gardens
// @Summary List gardens
// @Description Get every garden, newest first
// @Tags gardens
// @Produce json
// @Success 200 {array} service.GardenResponse "Successfully retrieved gardens"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gardens [get]
func (h *GardenHandler) ListGardens(c *gin.Context) {
	gardens, err := h.gardenService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gardens)
}

// CreateGarden handles POST /gardens
// @Summary Create a new garden
// @Description Create a garden with the given outer dimensions in meters
// @Tags gardens
// @Accept json
// @Produce json
// @Param garden body service.CreateGardenRequest true "Garden data"
// @Success 201 {object} service.GardenResponse "Successfully created garden"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 422 {object} ValidationErrorResponse "Invalid garden"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gardens [post]
func (h *GardenHandler) CreateGarden(c *gin.Context) {
	var req service.CreateGardenRequest
	if !bindJSON(c, &req) {
		return
	}

	garden, err := h.gardenService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, garden)
}

// GetGarden handles GET /gardens/:id
// @Summary Get garden by ID
// @Tags gardens
// @Produce json
// @Param id path string true "Garden ID (UUID)"
// @Success 200 {object} service.GardenResponse "Successfully retrieved garden"
// @Failure 400 {object} map[string]interface{} "Invalid garden ID"
// @Failure 404 {object} map[string]interface{} "Garden not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gardens/{id} [get]
func (h *GardenHandler) GetGarden(c *gin.Context) {
	id, ok := parseID(c, "id", "garden")
	if !ok {
		return
	}

	garden, err := h.gardenService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, garden)
}

// GetGardenLayout handles GET /gardens/:id/layout
// @Summary Get garden layout
// @Description Get a garden together with all of its raised beds and plants
// @Tags gardens
// @Produce json
// @Param id path string true "Garden ID (UUID)"
// @Success 200 {object} service.GardenLayoutResponse "Successfully retrieved layout"
// @Failure 400 {object} map[string]interface{} "Invalid garden ID"
// @Failure 404 {object} map[string]interface{} "Garden not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gardens/{id}/layout [get]
func (h *GardenHandler) GetGardenLayout(c *gin.Context) {
	id, ok := parseID(c, "id", "garden")
	if !ok {
		return
	}

	layout, err := h.gardenService.GetLayout(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, layout)
}

// UpdateGarden handles PATCH /gardens/:id
// @Summary Update a garden
// @Description Change the fields present in the body
// @Tags gardens
// @Accept json
// @Produce json
// @Param id path string true "Garden ID (UUID)"
// @Param garden body service.UpdateGardenRequest true "Fields to change"
// @Success 200 {object} service.GardenResponse "Successfully updated garden"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Garden not found"
// @Failure 422 {object} ValidationErrorResponse "Invalid garden"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /gardens/{id} [patch]
func (h *GardenHandler) UpdateGarden(c *gin.Context) {
	id, ok := parseID(c, "id", "garden")
	if !ok {
		return
	}
	var req service.UpdateGardenRequest
	if !bindJSON(c, &req) {
		return
	}

	garden, err := h.gardenService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, garden)
}

// DeleteGarden handles DELETE /gardens/:id
// @Summary Delete a garden
// @Description Delete a garden, then its plants, then its raised beds
// @Tags gardens
// @Param id path string true "Garden ID (UUID)"
// @Success 204 "Successfully deleted garden"
// @Failure 400 {object} map[string]interface{} "Invalid garden ID"
// @Failure 404 {object} map[string]interface{} "Garden not found"
// @Failure 500 {object} map[string]interface{} "Cascade failed"
// @Router /gardens/{id} [delete]
func (h *GardenHandler) DeleteGarden(c *gin.Context) {
	id, ok := parseID(c, "id", "garden")
	if !ok {
		return
	}

	if err := h.gardenService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// BulkDeleteGardens handles POST /gardens/bulk-delete
// @Summary Delete several gardens
// @Description Delete gardens in parallel. Each id gets its own result; one failure does not stop the others.
// @Tags gardens
// @Accept json
// @Produce json
// @Param request body service.BulkDeleteGardensRequest true "Garden IDs"
// @Success 200 {object} service.BulkDeleteGardensResponse "Per-id results"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 422 {object} ValidationErrorResponse "Invalid bulk delete"
// @Router /gardens/bulk-delete [post]
func (h *GardenHandler) BulkDeleteGardens(c *gin.Context) {
	var req service.BulkDeleteGardensRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.gardenService.BulkDelete(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
