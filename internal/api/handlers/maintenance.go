package handlers

import (
	"net/http"

	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler exposes orphan detection and repair
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceServiceInterface
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService service.MaintenanceServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// FindOrphanedPlants handles GET /maintenance/orphans/plants
// @Summary Find orphaned plants
// @Description List plants whose garden or raised bed no longer exists
// @Tags maintenance
// @Produce json
// @Success 200 {array} service.OrphanedPlant "Orphaned plants"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /maintenance/orphans/plants [get]
func (h *MaintenanceHandler) FindOrphanedPlants(c *gin.Context) {
	orphans, err := h.maintenanceService.FindOrphanedPlants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orphans)
}

// FindOrphanedRaisedBeds handles GET /maintenance/orphans/raised-beds
// @Summary Find orphaned raised beds
// @Description List raised beds whose garden no longer exists
// @Tags maintenance
// @Produce json
// @Success 200 {array} service.OrphanedRaisedBed "Orphaned raised beds"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /maintenance/orphans/raised-beds [get]
func (h *MaintenanceHandler) FindOrphanedRaisedBeds(c *gin.Context) {
	orphans, err := h.maintenanceService.FindOrphanedRaisedBeds(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orphans)
}

// CleanupPlants handles POST /maintenance/cleanup/plants
// @Summary Repair orphaned plants
// @Description Delete plants without a garden and clear dangling raised bed references
// @Tags maintenance
// @Produce json
// @Success 200 {object} service.PlantCleanupResult "Repair counts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /maintenance/cleanup/plants [post]
func (h *MaintenanceHandler) CleanupPlants(c *gin.Context) {
	result, err := h.maintenanceService.CleanupOrphanedPlants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CleanupRaisedBeds handles POST /maintenance/cleanup/raised-beds
// @Summary Repair orphaned raised beds
// @Description Delete raised beds without a garden
// @Tags maintenance
// @Produce json
// @Success 200 {object} service.RaisedBedCleanupResult "Repair counts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /maintenance/cleanup/raised-beds [post]
func (h *MaintenanceHandler) CleanupRaisedBeds(c *gin.Context) {
	result, err := h.maintenanceService.CleanupOrphanedRaisedBeds(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CleanupAll handles POST /maintenance/cleanup
// @Summary Repair everything
// @Description Repair plants, then raised beds. A second run reports zeros.
// @Tags maintenance
// @Produce json
// @Success 200 {object} service.CleanupResult "Repair counts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /maintenance/cleanup [post]
func (h *MaintenanceHandler) CleanupAll(c *gin.Context) {
	result, err := h.maintenanceService.CleanupAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
