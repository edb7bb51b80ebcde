package service

import (
	"context"
	"fmt"
	"strings"

	"garden-planner-backend/internal/database/models"
	"garden-planner-backend/internal/logger"
	"garden-planner-backend/internal/repository"
)

// PlantTypeService handles business logic for the plant type catalog
type PlantTypeService struct {
	repo    repository.PlantTypeRepositoryInterface
	catalog []models.PlantType
}

// NewPlantTypeService creates a new plant type service seeding from catalog
func NewPlantTypeService(repo repository.PlantTypeRepositoryInterface, catalog []models.PlantType) *PlantTypeService {
	return &PlantTypeService{repo: repo, catalog: catalog}
}

// SeedPlantTypesResponse reports what a seed run did
type SeedPlantTypesResponse struct {
	Inserted int  `json:"inserted"`
	Skipped  bool `json:"skipped"`
}

// List returns every plant type, or those of one category when category is set
func (s *PlantTypeService) List(ctx context.Context, category string) ([]models.PlantType, error) {
	category = strings.TrimSpace(category)

	var (
		types []models.PlantType
		err   error
	)
	if category == "" {
		types, err = s.repo.GetAll()
	} else {
		types, err = s.repo.GetByCategory(category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list plant types: %w", err)
	}
	if types == nil {
		types = []models.PlantType{}
	}
	return types, nil
}

// Seed inserts the catalog when no plant type exists yet. Running it again is a no-op.
func (s *PlantTypeService) Seed(ctx context.Context) (*SeedPlantTypesResponse, error) {
	count, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count plant types: %w", err)
	}
	if count > 0 {
		return &SeedPlantTypesResponse{Skipped: true}, nil
	}

	batch := make([]models.PlantType, len(s.catalog))
	copy(batch, s.catalog)
	if err := s.repo.CreateBatch(batch); err != nil {
		return nil, fmt.Errorf("failed to seed plant types: %w", err)
	}

	logger.WithContext(ctx).Infof("seeded %d plant types", len(batch))
	return &SeedPlantTypesResponse{Inserted: len(batch)}, nil
}
