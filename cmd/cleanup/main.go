// Command cleanup runs one orphan repair pass against the configured database
// and exits. It is meant to be scheduled next to the server.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"garden-planner-backend/internal/config"
	"garden-planner-backend/internal/database"
	"garden-planner-backend/internal/repository"
	"garden-planner-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report orphans without repairing them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline for the pass")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	maintenance := service.NewMaintenanceService(
		repository.NewGardenRepository(db),
		repository.NewRaisedBedRepository(db),
		repository.NewPlantRepository(db),
		nil,
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *dryRun {
		plants, err := maintenance.FindOrphanedPlants(ctx)
		if err != nil {
			logrus.Fatal("Failed to scan plants: ", err)
		}
		beds, err := maintenance.FindOrphanedRaisedBeds(ctx)
		if err != nil {
			logrus.Fatal("Failed to scan raised beds: ", err)
		}
		logrus.WithFields(logrus.Fields{
			"orphaned_plants":      len(plants),
			"orphaned_raised_beds": len(beds),
		}).Info("Dry run complete")
		return
	}

	result, err := maintenance.CleanupAll(ctx)
	if err != nil {
		logrus.Fatal("Cleanup failed: ", err)
	}
	logrus.WithFields(logrus.Fields{
		"deleted_plants":     result.DeletedPlants,
		"deleted_beds":       result.DeletedBeds,
		"cleared_references": result.ClearedReferences,
		"total_deleted":      result.TotalDeleted,
	}).Info("Cleanup complete")
}
