package routes

import (
	"garden-planner-backend/internal/api/handlers"
	"garden-planner-backend/internal/api/middleware"
	"garden-planner-backend/internal/cascade"
	"garden-planner-backend/internal/config"
	"garden-planner-backend/internal/database/seed"
	"garden-planner-backend/internal/logger"
	"garden-planner-backend/internal/metrics"
	"garden-planner-backend/internal/repository"
	"garden-planner-backend/internal/service"
	"garden-planner-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validation.New()

	// Metrics live on their own registry so tests can build routers repeatedly
	registry, m := metrics.NewRegistry()

	// Initialize repositories
	gardenRepo := repository.NewGardenRepository(db)
	raisedBedRepo := repository.NewRaisedBedRepository(db)
	plantRepo := repository.NewPlantRepository(db)
	plantTypeRepo := repository.NewPlantTypeRepository(db)

	catalog, err := seed.DefaultPlantTypes()
	if err != nil {
		logger.New().Warnf("Failed to load built-in plant type catalog: %v", err)
	}

	// Cascade rules and the optimistic placement overlay are shared by the services
	cascades := cascade.NewDefaultRegistry(plantRepo, raisedBedRepo, m)
	overlay := service.NewPlacementOverlay(cfg.PlacementRetention, m)

	// Initialize services
	gardenService := service.NewGardenService(gardenRepo, raisedBedRepo, plantRepo, cascades, validator, cfg.BulkDeleteConcurrency)
	raisedBedService := service.NewRaisedBedService(raisedBedRepo, gardenRepo, cascades, overlay, m, validator)
	plantService := service.NewPlantService(plantRepo, gardenRepo, raisedBedRepo, plantTypeRepo, cascades, overlay, m, validator)
	plantTypeService := service.NewPlantTypeService(plantTypeRepo, catalog)
	maintenanceService := service.NewMaintenanceService(gardenRepo, raisedBedRepo, plantRepo, m)
	placementService := service.NewPlacementService(overlay)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	gardenHandler := handlers.NewGardenHandler(gardenService)
	raisedBedHandler := handlers.NewRaisedBedHandler(raisedBedService)
	plantHandler := handlers.NewPlantHandler(plantService)
	plantTypeHandler := handlers.NewPlantTypeHandler(plantTypeService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	placementHandler := handlers.NewPlacementHandler(placementService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Garden routes
		gardens := v1.Group("/gardens")
		{
			gardens.GET("", gardenHandler.ListGardens)
			gardens.POST("", gardenHandler.CreateGarden)
			gardens.POST("/bulk-delete", gardenHandler.BulkDeleteGardens)
			gardens.GET("/:id", gardenHandler.GetGarden)
			gardens.PATCH("/:id", gardenHandler.UpdateGarden)
			gardens.DELETE("/:id", gardenHandler.DeleteGarden)
			gardens.GET("/:id/layout", gardenHandler.GetGardenLayout)
			gardens.GET("/:id/raised-beds", raisedBedHandler.ListRaisedBeds)
			gardens.POST("/:id/raised-beds", raisedBedHandler.PlaceRaisedBed)
			gardens.GET("/:id/plants", plantHandler.ListPlantsByGarden)
			gardens.POST("/:id/plants", plantHandler.PlacePlant)
		}

		// Raised bed routes
		raisedBeds := v1.Group("/raised-beds")
		{
			raisedBeds.GET("/:id", raisedBedHandler.GetRaisedBed)
			raisedBeds.PATCH("/:id", raisedBedHandler.UpdateRaisedBed)
			raisedBeds.DELETE("/:id", raisedBedHandler.DeleteRaisedBed)
			raisedBeds.GET("/:id/plants", plantHandler.ListPlantsByRaisedBed)
		}
		v1.GET("/materials", raisedBedHandler.ListMaterials)

		// Plant routes
		plants := v1.Group("/plants")
		{
			plants.PATCH("/:id", plantHandler.UpdatePlant)
			plants.PUT("/:id/position", plantHandler.MovePlant)
			plants.DELETE("/:id", plantHandler.DeletePlant)
		}

		// Plant type routes
		plantTypes := v1.Group("/plant-types")
		{
			plantTypes.GET("", plantTypeHandler.ListPlantTypes)
			plantTypes.POST("/seed", plantTypeHandler.SeedPlantTypes)
		}

		// Maintenance routes
		maintenance := v1.Group("/maintenance")
		{
			maintenance.GET("/orphans/plants", maintenanceHandler.FindOrphanedPlants)
			maintenance.GET("/orphans/raised-beds", maintenanceHandler.FindOrphanedRaisedBeds)
			maintenance.POST("/cleanup/plants", maintenanceHandler.CleanupPlants)
			maintenance.POST("/cleanup/raised-beds", maintenanceHandler.CleanupRaisedBeds)
			maintenance.POST("/cleanup", maintenanceHandler.CleanupAll)
		}

		// Optimistic placement status
		v1.GET("/placements/:correlation_id", placementHandler.GetPlacement)
	}

	return router
}
