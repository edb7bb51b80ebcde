package handlers

import (
	"net/http"

	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlacementHandler answers optimistic placement status queries
type PlacementHandler struct {
	placementService service.PlacementServiceInterface
}

// NewPlacementHandler creates a new placement handler
func NewPlacementHandler(placementService service.PlacementServiceInterface) *PlacementHandler {
	return &PlacementHandler{
		placementService: placementService,
	}
}

// GetPlacement handles GET /placements/:correlation_id
// @Summary Get placement status
// @Description Get the state (pending, confirmed or failed) of a placement sent with X-Correlation-ID
// @Tags placements
// @Produce json
// @Param correlation_id path string true "Correlation ID"
// @Success 200 {object} service.PlacementStatusResponse "Placement state"
// @Failure 400 {object} map[string]interface{} "Invalid correlation id"
// @Failure 404 {object} map[string]interface{} "Placement not found"
// @Router /placements/{correlation_id} [get]
func (h *PlacementHandler) GetPlacement(c *gin.Context) {
	status, err := h.placementService.GetStatus(c.Request.Context(), c.Param("correlation_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
