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

// RaisedBedService handles business logic for raised beds
type RaisedBedService struct {
	repo       repository.RaisedBedRepositoryInterface
	gardenRepo repository.GardenRepositoryInterface
	cascade    *cascade.Registry
	placer     *placement.Validator
	overlay    *PlacementOverlay
	metrics    *metrics.Metrics
	validator  *validator.Validate
}

// NewRaisedBedService creates a new raised bed service
func NewRaisedBedService(
	repo repository.RaisedBedRepositoryInterface,
	gardenRepo repository.GardenRepositoryInterface,
	registry *cascade.Registry,
	overlay *PlacementOverlay,
	m *metrics.Metrics,
	validator *validator.Validate,
) *RaisedBedService {
	return &RaisedBedService{
		repo:       repo,
		gardenRepo: gardenRepo,
		cascade:    registry,
		placer:     placement.NewValidator(validator),
		overlay:    overlay,
		metrics:    m,
		validator:  validator,
	}
}

// PlaceRaisedBedRequest places a bed with its top-left corner at (x, y). Omitted
// settings fall back to the editor defaults.
type PlaceRaisedBedRequest struct {
	X         float64          `json:"x" example:"0"`
	Y         float64          `json:"y" example:"0"`
	Name      *string          `json:"name,omitempty" example:"North bed"`
	Width     *float64         `json:"width,omitempty" example:"1.2"`
	Height    *float64         `json:"height,omitempty" example:"2.4"`
	BedHeight *float64         `json:"bed_height,omitempty" example:"0.3"`
	Material  *models.Material `json:"material,omitempty" swaggertype:"string" enums:"wood,stone,metal,composite"`
	SoilType  *string          `json:"soil_type,omitempty"`
	Notes     string           `json:"notes,omitempty" validate:"max=1000"`
}

// Settings merges the request over the default bed settings
func (r *PlaceRaisedBedRequest) Settings() placement.BedSettings {
	settings := placement.DefaultBedSettings()
	if r.Name != nil {
		settings.Name = *r.Name
	}
	if r.Width != nil {
		settings.Width = *r.Width
	}
	if r.Height != nil {
		settings.Height = *r.Height
	}
	if r.BedHeight != nil {
		settings.BedHeight = *r.BedHeight
	}
	if r.Material != nil {
		settings.Material = *r.Material
	}
	if r.SoilType != nil {
		settings.SoilType = *r.SoilType
	}
	return settings
}

// UpdateRaisedBedRequest represents a partial raised bed update. Changing the
// material also changes the colour unless a colour is given.
type UpdateRaisedBedRequest struct {
	Name      *string          `json:"name,omitempty" validate:"omitnil,min=1,max=50"`
	BedHeight *float64         `json:"bed_height,omitempty" validate:"omitempty,min=0.1,max=1.5"`
	Material  *models.Material `json:"material,omitempty" validate:"omitempty,oneof=wood stone metal composite" swaggertype:"string"`
	Color     *string          `json:"color,omitempty" validate:"omitempty,hexcolor"`
	SoilType  *string          `json:"soil_type,omitempty" validate:"omitempty,max=100"`
	Notes     *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// RaisedBedResponse represents the response for raised bed operations
type RaisedBedResponse struct {
	ID        uuid.UUID       `json:"id"`
	GardenID  uuid.UUID       `json:"garden_id"`
	Name      string          `json:"name"`
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
	BedHeight float64         `json:"bed_height"`
	Material  models.Material `json:"material" swaggertype:"string"`
	Color     string          `json:"color"`
	SoilType  string          `json:"soil_type,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// RaisedBedListResponse lists the beds of a garden, optionally with placements
// still in flight.
type RaisedBedListResponse struct {
	RaisedBeds []RaisedBedResponse        `json:"raised_beds"`
	Pending    []PendingPlacementResponse `json:"pending,omitempty"`
}

// ListByGarden returns the raised beds of a garden
func (s *RaisedBedService) ListByGarden(ctx context.Context, gardenID uuid.UUID, includePending bool) (*RaisedBedListResponse, error) {
	if _, err := s.getGarden(gardenID); err != nil {
		return nil, err
	}

	beds, err := s.repo.GetByGardenID(gardenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get raised beds: %w", err)
	}

	resp := &RaisedBedListResponse{RaisedBeds: toRaisedBedResponses(beds)}
	if includePending && s.overlay != nil {
		for _, e := range s.overlay.Pending(func(p PendingPlacement) bool {
			return p.Kind == PlacementKindRaisedBed && p.GardenID == gardenID
		}) {
			resp.Pending = append(resp.Pending, toPendingResponse(e))
		}
	}
	return resp, nil
}

// GetByID retrieves a raised bed by ID
func (s *RaisedBedService) GetByID(ctx context.Context, id uuid.UUID) (*RaisedBedResponse, error) {
	bed, err := s.getBed(id)
	if err != nil {
		return nil, err
	}
	return toRaisedBedResponse(bed), nil
}

// Place validates and persists a new raised bed. Rejections come back as
// *apperrors.ValidationErrors.
func (s *RaisedBedService) Place(ctx context.Context, gardenID uuid.UUID, req *PlaceRaisedBedRequest, correlationID string) (*RaisedBedResponse, error) {
	log := logger.WithContext(ctx).WithField("garden_id", gardenID.String())

	if err := validation.Struct(s.validator, placement.ReasonInvalidBedSettings, req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	garden, err := s.getGarden(gardenID)
	if err != nil {
		return nil, err
	}

	settings := req.Settings()
	t := &tracker{
		overlay:       s.overlay,
		correlationID: correlationID,
		pending: PendingPlacement{
			Kind:     PlacementKindRaisedBed,
			GardenID: gardenID,
			Name:     strings.TrimSpace(settings.Name),
			Rect:     models.Rect{X: placement.Snap(req.X), Y: placement.Snap(req.Y), Width: settings.Width, Height: settings.Height},
		},
	}
	if err := t.stage(); err != nil {
		return nil, err
	}

	plan := s.placer.PlanBed(*garden, settings, req.X, req.Y)
	s.metrics.ObservePlacement(PlacementKindRaisedBed, plan.OK)
	if !plan.OK {
		err := plan.Err()
		t.fail(ctx, err)
		log.Debugf("raised bed placement rejected: %v", err)
		return nil, err
	}

	bed := &models.RaisedBed{
		GardenID:  gardenID,
		Name:      plan.Settings.Name,
		Rect:      plan.Rect,
		BedHeight: plan.Settings.BedHeight,
		Material:  plan.Settings.Material,
		Color:     plan.Color,
		SoilType:  plan.Settings.SoilType,
		Notes:     req.Notes,
	}
	if err := s.repo.Create(bed); err != nil {
		err = fmt.Errorf("failed to create raised bed: %w", err)
		t.fail(ctx, err)
		return nil, err
	}
	t.confirm(ctx, bed.ID)

	log.WithField("raised_bed_id", bed.ID.String()).Info("raised bed placed")
	return toRaisedBedResponse(bed), nil
}

// Update patches the fields present in req
func (s *RaisedBedService) Update(ctx context.Context, id uuid.UUID, req *UpdateRaisedBedRequest) (*RaisedBedResponse, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := validation.Struct(s.validator, "Invalid raised bed", req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.BedHeight != nil {
		updates["bed_height"] = *req.BedHeight
	}
	if req.Material != nil {
		updates["material"] = *req.Material
		updates["color"] = req.Material.Color()
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.SoilType != nil {
		updates["soil_type"] = *req.SoilType
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrEmptyUpdate
	}

	if _, err := s.getBed(id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update raised bed: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete deletes a raised bed and moves its plants into the ground
func (s *RaisedBedService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getBed(id); err != nil {
		return err
	}

	if err := s.cascade.Delete(ctx, cascade.CollectionRaisedBeds, id, s.repo.Delete); err != nil {
		var cascadeErr *cascade.Error
		if errors.As(err, &cascadeErr) {
			return err
		}
		return fmt.Errorf("failed to delete raised bed: %w", err)
	}

	logger.WithContext(ctx).WithField("raised_bed_id", id.String()).Info("raised bed deleted")
	return nil
}

// MaterialColors returns the default colour of every bed material
func (s *RaisedBedService) MaterialColors() map[models.Material]string {
	return models.MaterialColors()
}

func (s *RaisedBedService) getGarden(id uuid.UUID) (*models.Garden, error) {
	garden, err := s.gardenRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGardenNotFound
		}
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}
	return garden, nil
}

func (s *RaisedBedService) getBed(id uuid.UUID) (*models.RaisedBed, error) {
	bed, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRaisedBedNotFound
		}
		return nil, fmt.Errorf("failed to get raised bed: %w", err)
	}
	return bed, nil
}

func toRaisedBedResponse(b *models.RaisedBed) *RaisedBedResponse {
	return &RaisedBedResponse{
		ID:        b.ID,
		GardenID:  b.GardenID,
		Name:      b.Name,
		X:         b.X,
		Y:         b.Y,
		Width:     b.Width,
		Height:    b.Height,
		BedHeight: b.BedHeight,
		Material:  b.Material,
		Color:     b.Color,
		SoilType:  b.SoilType,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
	}
}

func toRaisedBedResponses(beds []models.RaisedBed) []RaisedBedResponse {
	out := make([]RaisedBedResponse, len(beds))
	for i := range beds {
		out[i] = *toRaisedBedResponse(&beds[i])
	}
	return out
}
