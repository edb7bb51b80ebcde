package repository

import (
	"garden-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GardenRepositoryInterface defines the interface for garden repository operations
type GardenRepositoryInterface interface {
	Create(garden *models.Garden) error
	GetByID(id uuid.UUID) (*models.Garden, error)
	GetAll() ([]models.Garden, error)
	ListIDs() ([]uuid.UUID, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// RaisedBedRepositoryInterface defines the interface for raised bed repository operations
type RaisedBedRepositoryInterface interface {
	Create(bed *models.RaisedBed) error
	GetByID(id uuid.UUID) (*models.RaisedBed, error)
	GetAll() ([]models.RaisedBed, error)
	ListIDs() ([]uuid.UUID, error)
	GetByGardenID(gardenID uuid.UUID) ([]models.RaisedBed, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// PlantRepositoryInterface defines the interface for plant repository operations
type PlantRepositoryInterface interface {
	Create(plant *models.Plant) error
	GetByID(id uuid.UUID) (*models.Plant, error)
	GetAll() ([]models.Plant, error)
	GetByGardenID(gardenID uuid.UUID) ([]models.Plant, error)
	GetByRaisedBedID(raisedBedID uuid.UUID) ([]models.Plant, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	ClearRaisedBed(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// PlantTypeRepositoryInterface defines the interface for plant type repository operations
type PlantTypeRepositoryInterface interface {
	GetAll() ([]models.PlantType, error)
	GetByCategory(category string) ([]models.PlantType, error)
	GetByID(id uuid.UUID) (*models.PlantType, error)
	GetByName(name string) (*models.PlantType, error)
	Count() (int64, error)
	CreateBatch(plantTypes []models.PlantType) error
}
