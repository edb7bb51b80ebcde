package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"garden-planner-backend/internal/cascade"
	"garden-planner-backend/internal/database/models"
	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/logger"
	"garden-planner-backend/internal/metrics"
	"garden-planner-backend/internal/placement"
	"garden-planner-backend/internal/repository"
	"garden-planner-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlantService handles business logic for plants
type PlantService struct {
	repo          repository.PlantRepositoryInterface
	gardenRepo    repository.GardenRepositoryInterface
	bedRepo       repository.RaisedBedRepositoryInterface
	plantTypeRepo repository.PlantTypeRepositoryInterface
	cascade       *cascade.Registry
	placer        *placement.Validator
	overlay       *PlacementOverlay
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewPlantService creates a new plant service
func NewPlantService(
	repo repository.PlantRepositoryInterface,
	gardenRepo repository.GardenRepositoryInterface,
	bedRepo repository.RaisedBedRepositoryInterface,
	plantTypeRepo repository.PlantTypeRepositoryInterface,
	registry *cascade.Registry,
	overlay *PlacementOverlay,
	m *metrics.Metrics,
	validator *validator.Validate,
) *PlantService {
	return &PlantService{
		repo:          repo,
		gardenRepo:    gardenRepo,
		bedRepo:       bedRepo,
		plantTypeRepo: plantTypeRepo,
		cascade:       registry,
		placer:        placement.NewValidator(validator),
		overlay:       overlay,
		metrics:       m,
		validator:     validator,
	}
}

// PlacePlantRequest places a plant of the named type with its top-left corner at (x, y)
type PlacePlantRequest struct {
	PlantTypeName string  `json:"plant_type_name" validate:"required" example:"Tomato"`
	X             float64 `json:"x" example:"0"`
	Y             float64 `json:"y" example:"0"`
}

// UpdatePlantRequest represents a partial plant update
type UpdatePlantRequest struct {
	Name         *string             `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Variety      *string             `json:"variety,omitempty" validate:"omitempty,max=100"`
	Notes        *string             `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Color        *string             `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Status       *models.PlantStatus `json:"status,omitempty" validate:"omitempty,oneof=planned planted growing harvested" swaggertype:"string"`
	PlantingDate *time.Time          `json:"planting_date,omitempty"`
	HarvestDate  *time.Time          `json:"harvest_date,omitempty"`
}

// MovePlantRequest is the drop position of a dragged plant
type MovePlantRequest struct {
	X float64 `json:"x" example:"1.25"`
	Y float64 `json:"y" example:"0.5"`
}

// PlantResponse represents the response for plant operations
type PlantResponse struct {
	ID           uuid.UUID          `json:"id"`
	GardenID     uuid.UUID          `json:"garden_id"`
	RaisedBedID  *uuid.UUID         `json:"raised_bed_id,omitempty"`
	Name         string             `json:"name"`
	Variety      string             `json:"variety"`
	X            float64            `json:"x"`
	Y            float64            `json:"y"`
	Width        float64            `json:"width"`
	Height       float64            `json:"height"`
	PlantingDate *time.Time         `json:"planting_date,omitempty"`
	HarvestDate  *time.Time         `json:"harvest_date,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Color        string             `json:"color,omitempty"`
	Status       models.PlantStatus `json:"status" swaggertype:"string"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ListByGarden returns the plants of a garden
func (s *PlantService) ListByGarden(ctx context.Context, gardenID uuid.UUID) ([]PlantResponse, error) {
	if _, err := s.getGarden(gardenID); err != nil {
		return nil, err
	}
	plants, err := s.repo.GetByGardenID(gardenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plants: %w", err)
	}
	return toPlantResponses(plants), nil
}

// ListByRaisedBed returns the plants of a raised bed
func (s *PlantService) ListByRaisedBed(ctx context.Context, raisedBedID uuid.UUID) ([]PlantResponse, error) {
	if _, err := s.bedRepo.GetByID(raisedBedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRaisedBedNotFound
		}
		return nil, fmt.Errorf("failed to get raised bed: %w", err)
	}
	plants, err := s.repo.GetByRaisedBedID(raisedBedID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plants: %w", err)
	}
	return toPlantResponses(plants), nil
}

// Place validates and persists a plant. The bed is chosen by the footprint
// centre; a plant whose centre lies in no bed goes into the ground.
func (s *PlantService) Place(ctx context.Context, gardenID uuid.UUID, req *PlacePlantRequest, correlationID string) (*PlantResponse, error) {
	log := logger.WithContext(ctx).WithField("garden_id", gardenID.String())

	req.PlantTypeName = strings.TrimSpace(req.PlantTypeName)
	if err := validation.Struct(s.validator, placement.ReasonInvalidPlacement, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	garden, err := s.getGarden(gardenID)
	if err != nil {
		return nil, err
	}
	plantType, err := s.plantTypeRepo.GetByName(req.PlantTypeName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlantTypeNotFound
		}
		return nil, fmt.Errorf("failed to get plant type: %w", err)
	}
	beds, err := s.bedRepo.GetByGardenID(gardenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get raised beds: %w", err)
	}

	side := placement.Footprint(plantType.Spacing)
	t := &tracker{
		overlay:       s.overlay,
		correlationID: correlationID,
		pending: PendingPlacement{
			Kind:     PlacementKindPlant,
			GardenID: gardenID,
			Name:     plantType.Name,
			Rect:     models.Rect{X: placement.Snap(req.X), Y: placement.Snap(req.Y), Width: side, Height: side},
		},
	}
	if err := t.stage(); err != nil {
		return nil, err
	}

	plan := s.placer.PlanPlant(*garden, *plantType, beds, req.X, req.Y)
	s.metrics.ObservePlacement(PlacementKindPlant, plan.OK)
	if !plan.OK {
		err := plan.Err()
		t.fail(ctx, err)
		log.Debugf("plant placement rejected: %v", err)
		return nil, err
	}

	plant := &models.Plant{
		GardenID:    gardenID,
		RaisedBedID: plan.RaisedBedID,
		Name:        plan.Name,
		Variety:     plan.Variety,
		Rect:        plan.Rect,
		Color:       plan.Color,
		Status:      models.PlantStatusPlanned,
	}
	if err := s.repo.Create(plant); err != nil {
		err = fmt.Errorf("failed to create plant: %w", err)
		t.fail(ctx, err)
		return nil, err
	}
	t.confirm(ctx, plant.ID)

	log.WithFields(map[string]interface{}{
		"plant_id": plant.ID.String(),
		"in_bed":   plant.RaisedBedID != nil,
	}).Info("plant placed")
	return toPlantResponse(plant), nil
}

// Update patches the fields present in req
func (s *PlantService) Update(ctx context.Context, id uuid.UUID, req *UpdatePlantRequest) (*PlantResponse, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := validation.Struct(s.validator, "Invalid plant", req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Variety != nil {
		updates["variety"] = *req.Variety
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.PlantingDate != nil {
		updates["planting_date"] = *req.PlantingDate
	}
	if req.HarvestDate != nil {
		updates["harvest_date"] = *req.HarvestDate
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrEmptyUpdate
	}

	if _, err := s.getPlant(id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update plant: %w", err)
	}

	plant, err := s.getPlant(id)
	if err != nil {
		return nil, err
	}
	return toPlantResponse(plant), nil
}

// Move repositions a dragged plant. The position is clamped to the garden and
// snapped to the grid; raised_bed_id is left untouched.
func (s *PlantService) Move(ctx context.Context, id uuid.UUID, req *MovePlantRequest) (*PlantResponse, error) {
	plant, err := s.getPlant(id)
	if err != nil {
		return nil, err
	}
	garden, err := s.getGarden(plant.GardenID)
	if err != nil {
		return nil, err
	}

	x, y := placement.Drag(*garden, plant.Rect, req.X, req.Y)
	if err := s.repo.Update(id, map[string]interface{}{"x": x, "y": y}); err != nil {
		return nil, fmt.Errorf("failed to move plant: %w", err)
	}

	plant.X, plant.Y = x, y
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"plant_id": id.String(),
		"x":        x,
		"y":        y,
	}).Debug("plant moved")
	return toPlantResponse(plant), nil
}

// Delete deletes a plant
func (s *PlantService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getPlant(id); err != nil {
		return err
	}
	if err := s.cascade.Delete(ctx, cascade.CollectionPlants, id, s.repo.Delete); err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}
	return nil
}

func (s *PlantService) getGarden(id uuid.UUID) (*models.Garden, error) {
	garden, err := s.gardenRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGardenNotFound
		}
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}
	return garden, nil
}

func (s *PlantService) getPlant(id uuid.UUID) (*models.Plant, error) {
	plant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlantNotFound
		}
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}
	return plant, nil
}

func toPlantResponse(p *models.Plant) *PlantResponse {
	return &PlantResponse{
		ID:           p.ID,
		GardenID:     p.GardenID,
		RaisedBedID:  p.RaisedBedID,
		Name:         p.Name,
		Variety:      p.Variety,
		X:            p.X,
		Y:            p.Y,
		Width:        p.Width,
		Height:       p.Height,
		PlantingDate: p.PlantingDate,
		HarvestDate:  p.HarvestDate,
		Notes:        p.Notes,
		Color:        p.Color,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	}
}

func toPlantResponses(plants []models.Plant) []PlantResponse {
	out := make([]PlantResponse, len(plants))
	for i := range plants {
		out[i] = *toPlantResponse(&plants[i])
	}
	return out
}
