package service

import (
	"context"

	"garden-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GardenServiceInterface defines the interface for garden service
type GardenServiceInterface interface {
	List(ctx context.Context) ([]GardenResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GardenResponse, error)
	GetLayout(ctx context.Context, id uuid.UUID) (*GardenLayoutResponse, error)
	Create(ctx context.Context, req *CreateGardenRequest) (*GardenResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateGardenRequest) (*GardenResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, req *BulkDeleteGardensRequest) (*BulkDeleteGardensResponse, error)
}

// RaisedBedServiceInterface defines the interface for raised bed service
type RaisedBedServiceInterface interface {
	ListByGarden(ctx context.Context, gardenID uuid.UUID, includePending bool) (*RaisedBedListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RaisedBedResponse, error)
	Place(ctx context.Context, gardenID uuid.UUID, req *PlaceRaisedBedRequest, correlationID string) (*RaisedBedResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRaisedBedRequest) (*RaisedBedResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MaterialColors() map[models.Material]string
}

// PlantServiceInterface defines the interface for plant service
type PlantServiceInterface interface {
	ListByGarden(ctx context.Context, gardenID uuid.UUID) ([]PlantResponse, error)
	ListByRaisedBed(ctx context.Context, raisedBedID uuid.UUID) ([]PlantResponse, error)
	Place(ctx context.Context, gardenID uuid.UUID, req *PlacePlantRequest, correlationID string) (*PlantResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdatePlantRequest) (*PlantResponse, error)
	Move(ctx context.Context, id uuid.UUID, req *MovePlantRequest) (*PlantResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlantTypeServiceInterface defines the interface for plant type service
type PlantTypeServiceInterface interface {
	List(ctx context.Context, category string) ([]models.PlantType, error)
	Seed(ctx context.Context) (*SeedPlantTypesResponse, error)
}

// MaintenanceServiceInterface defines the interface for orphan detection and repair
type MaintenanceServiceInterface interface {
	FindOrphanedPlants(ctx context.Context) ([]OrphanedPlant, error)
	FindOrphanedRaisedBeds(ctx context.Context) ([]OrphanedRaisedBed, error)
	CleanupOrphanedPlants(ctx context.Context) (*PlantCleanupResult, error)
	CleanupOrphanedRaisedBeds(ctx context.Context) (*RaisedBedCleanupResult, error)
	CleanupAll(ctx context.Context) (*CleanupResult, error)
}

// PlacementServiceInterface defines the interface for optimistic placement lookups
type PlacementServiceInterface interface {
	GetStatus(ctx context.Context, correlationID string) (*PlacementStatusResponse, error)
}
