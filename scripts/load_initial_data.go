package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"garden-planner-backend/internal/config"
	"garden-planner-backend/internal/database"
	"garden-planner-backend/internal/database/models"
	"garden-planner-backend/internal/database/seed"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type GardenData struct {
	Name        string          `yaml:"name"`
	Width       float64         `yaml:"width"`
	Height      float64         `yaml:"height"`
	Description string          `yaml:"description"`
	RaisedBeds  []RaisedBedData `yaml:"raised_beds,omitempty"`
	Plants      []PlantData     `yaml:"plants,omitempty"`
}

type RaisedBedData struct {
	Name      string  `yaml:"name"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BedHeight float64 `yaml:"bed_height"`
	Material  string  `yaml:"material"`
	SoilType  string  `yaml:"soil_type,omitempty"`
}

type PlantData struct {
	PlantType string  `yaml:"plant_type"`
	RaisedBed string  `yaml:"raised_bed,omitempty"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Status    string  `yaml:"status,omitempty"`
}

// File structures
type GardensFile struct {
	Gardens []GardenData `yaml:"gardens"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	plantTypes, err := loadPlantTypes(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load plant types: %w", err)
	}

	gardens, err := loadGardens(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load gardens: %w", err)
	}

	created, skipped := 0, 0
	typeMap := make(map[string]*models.PlantType, len(plantTypes))
	for _, ptData := range plantTypes {
		pt, isNew, err := createPlantType(db, ptData)
		if err != nil {
			return fmt.Errorf("failed to create plant type %s: %w", ptData.Name, err)
		}
		if isNew {
			created++
		} else {
			skipped++
		}
		typeMap[pt.Name] = pt
	}
	log.Printf("Plant types: %d created, %d already present", created, skipped)

	for _, gardenData := range gardens {
		isNew, err := createGarden(db, gardenData, typeMap)
		if err != nil {
			return fmt.Errorf("failed to create garden %s: %w", gardenData.Name, err)
		}
		if isNew {
			log.Printf("Garden %q created with %d beds and %d plants",
				gardenData.Name, len(gardenData.RaisedBeds), len(gardenData.Plants))
		} else {
			log.Printf("Garden %q already exists, skipped", gardenData.Name)
		}
	}

	return nil
}

// loadPlantTypes reads plant_types.yaml from dataDir, falling back to the built-in catalog
func loadPlantTypes(dataDir string) ([]models.PlantType, error) {
	path := filepath.Join(dataDir, "plant_types.yaml")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("%s not found, using built-in catalog", path)
		return seed.DefaultPlantTypes()
	}
	return seed.LoadPlantTypes(path)
}

func loadGardens(dataDir string) ([]GardenData, error) {
	path := filepath.Join(dataDir, "gardens.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var file GardensFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Gardens, nil
}

func createPlantType(db *gorm.DB, ptData models.PlantType) (*models.PlantType, bool, error) {
	var existing models.PlantType
	err := db.Where("name = ?", ptData.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	pt := ptData
	if err := db.Create(&pt).Error; err != nil {
		return nil, false, err
	}
	return &pt, true, nil
}

// createGarden inserts a demo garden with its beds and plants. Plant footprints
// follow the plant type spacing; positions are taken as given.
func createGarden(db *gorm.DB, gardenData GardenData, typeMap map[string]*models.PlantType) (bool, error) {
	var count int64
	if err := db.Model(&models.Garden{}).Where("name = ?", gardenData.Name).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		garden := models.Garden{
			Name:        gardenData.Name,
			Width:       gardenData.Width,
			Height:      gardenData.Height,
			Description: gardenData.Description,
		}
		if err := tx.Create(&garden).Error; err != nil {
			return err
		}

		bedMap := make(map[string]*models.RaisedBed, len(gardenData.RaisedBeds))
		for _, bd := range gardenData.RaisedBeds {
			material := models.Material(bd.Material)
			if !material.IsValid() {
				return fmt.Errorf("raised bed %s: invalid material %q", bd.Name, bd.Material)
			}
			bed := models.RaisedBed{
				GardenID:  garden.ID,
				Name:      bd.Name,
				Rect:      models.Rect{X: bd.X, Y: bd.Y, Width: bd.Width, Height: bd.Height},
				BedHeight: bd.BedHeight,
				Material:  material,
				Color:     material.Color(),
				SoilType:  bd.SoilType,
			}
			if err := tx.Create(&bed).Error; err != nil {
				return err
			}
			bedMap[bed.Name] = &bed
		}

		for _, pd := range gardenData.Plants {
			pt, ok := typeMap[pd.PlantType]
			if !ok {
				return fmt.Errorf("unknown plant type %q", pd.PlantType)
			}
			status := models.PlantStatus(pd.Status)
			if status == "" {
				status = models.PlantStatusPlanned
			}
			size := pt.Spacing / 100
			plant := models.Plant{
				GardenID: garden.ID,
				Name:     pt.Name,
				Variety:  pt.Name,
				Rect:     models.Rect{X: pd.X, Y: pd.Y, Width: size, Height: size},
				Color:    pt.Color,
				Status:   status,
			}
			if pd.RaisedBed != "" {
				bed, ok := bedMap[pd.RaisedBed]
				if !ok {
					return fmt.Errorf("plant %s: unknown raised bed %q", pt.Name, pd.RaisedBed)
				}
				plant.RaisedBedID = &bed.ID
			}
			if err := tx.Create(&plant).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
