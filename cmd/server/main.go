package main

import (
	"context"
	"log"
	"os"
	"time"

	"garden-planner-backend/internal/api/routes"
	"garden-planner-backend/internal/config"
	"garden-planner-backend/internal/database"
	"garden-planner-backend/internal/database/seed"
	"garden-planner-backend/internal/repository"
	"garden-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "garden-planner-backend/docs" // This is needed for swag
)

//	@title			Garden Planner API
//	@version		1.0
//	@description	Backend API for the garden planner: gardens, raised beds, plants and the plant type catalog, with cascade deletes, placement validation and orphan repair.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Seed the plant type catalog when the collection is still empty
	if cfg.SeedPlantTypes {
		seedPlantTypes(db)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func seedPlantTypes(db *gorm.DB) {
	catalog, err := seed.DefaultPlantTypes()
	if err != nil {
		logrus.Warnf("Skipping plant type seed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := service.NewPlantTypeService(repository.NewPlantTypeRepository(db), catalog).Seed(ctx)
	if err != nil {
		logrus.Warnf("Plant type seed failed: %v", err)
		return
	}
	if result.Skipped {
		logrus.Debug("Plant type catalog already populated")
		return
	}
	logrus.Infof("Seeded %d plant types", result.Inserted)
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
