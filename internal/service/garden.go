package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"garden-planner-backend/internal/cascade"
	"garden-planner-backend/internal/database/models"
	apperrors "garden-planner-backend/internal/errors"
	"garden-planner-backend/internal/logger"
	"garden-planner-backend/internal/repository"
	"garden-planner-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const defaultBulkDeleteConcurrency = 4

// GardenService handles business logic for gardens
type GardenService struct {
	repo            repository.GardenRepositoryInterface
	bedRepo         repository.RaisedBedRepositoryInterface
	plantRepo       repository.PlantRepositoryInterface
	cascade         *cascade.Registry
	validator       *validator.Validate
	bulkConcurrency int
}

// NewGardenService creates a new garden service
func NewGardenService(
	repo repository.GardenRepositoryInterface,
	bedRepo repository.RaisedBedRepositoryInterface,
	plantRepo repository.PlantRepositoryInterface,
	registry *cascade.Registry,
	validator *validator.Validate,
	bulkConcurrency int,
) *GardenService {
	if bulkConcurrency < 1 {
		bulkConcurrency = defaultBulkDeleteConcurrency
	}
	return &GardenService{
		repo:            repo,
		bedRepo:         bedRepo,
		plantRepo:       plantRepo,
		cascade:         registry,
		validator:       validator,
		bulkConcurrency: bulkConcurrency,
	}
}

// CreateGardenRequest represents the request to create a garden
type CreateGardenRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100" example:"Backyard"`
	Width       float64 `json:"width" validate:"min=0.5,max=100" example:"3"`
	Height      float64 `json:"height" validate:"min=0.5,max=100" example:"2.5"`
	Description string  `json:"description,omitempty" validate:"max=500"`
}

// UpdateGardenRequest represents a partial garden update
type UpdateGardenRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Width       *float64 `json:"width,omitempty" validate:"omitempty,min=0.5,max=100"`
	Height      *float64 `json:"height,omitempty" validate:"omitempty,min=0.5,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

// BulkDeleteGardensRequest represents the request to delete several gardens
type BulkDeleteGardensRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1,max=100"`
}

// GardenResponse represents the response for garden operations
type GardenResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GardenLayoutResponse is a garden with everything placed in it
type GardenLayoutResponse struct {
	Garden     GardenResponse      `json:"garden"`
	RaisedBeds []RaisedBedResponse `json:"raised_beds"`
	Plants     []PlantResponse     `json:"plants"`
}

// BulkDeleteResult is the outcome for one garden of a bulk delete
type BulkDeleteResult struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
	Error   string    `json:"error,omitempty"`
}

// BulkDeleteGardensResponse reports every id of a bulk delete
type BulkDeleteGardensResponse struct {
	Results []BulkDeleteResult `json:"results"`
	Deleted int                `json:"deleted"`
	Failed  int                `json:"failed"`
}

// List returns every garden, newest first
func (s *GardenService) List(ctx context.Context) ([]GardenResponse, error) {
	gardens, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list gardens: %w", err)
	}

	responses := make([]GardenResponse, len(gardens))
	for i := range gardens {
		responses[i] = *toGardenResponse(&gardens[i])
	}
	return responses, nil
}

// GetByID retrieves a garden by ID
func (s *GardenService) GetByID(ctx context.Context, id uuid.UUID) (*GardenResponse, error) {
	garden, err := s.getGarden(id)
	if err != nil {
		return nil, err
	}
	return toGardenResponse(garden), nil
}

// GetLayout returns a garden together with its raised beds and plants
func (s *GardenService) GetLayout(ctx context.Context, id uuid.UUID) (*GardenLayoutResponse, error) {
	garden, err := s.getGarden(id)
	if err != nil {
		return nil, err
	}

	beds, err := s.bedRepo.GetByGardenID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get raised beds: %w", err)
	}
	plants, err := s.plantRepo.GetByGardenID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get plants: %w", err)
	}

	return &GardenLayoutResponse{
		Garden:     *toGardenResponse(garden),
		RaisedBeds: toRaisedBedResponses(beds),
		Plants:     toPlantResponses(plants),
	}, nil
}

// Create creates a new garden
func (s *GardenService) Create(ctx context.Context, req *CreateGardenRequest) (*GardenResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(s.validator, "Invalid garden", req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	garden := &models.Garden{
		Name:        req.Name,
		Width:       req.Width,
		Height:      req.Height,
		Description: req.Description,
	}
	if err := s.repo.Create(garden); err != nil {
		return nil, fmt.Errorf("failed to create garden: %w", err)
	}

	logger.WithContext(ctx).WithField("garden_id", garden.ID.String()).Info("garden created")
	return toGardenResponse(garden), nil
}

// Update patches the fields present in req
func (s *GardenService) Update(ctx context.Context, id uuid.UUID, req *UpdateGardenRequest) (*GardenResponse, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if err := validation.Struct(s.validator, "Invalid garden", req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Width != nil {
		updates["width"] = *req.Width
	}
	if req.Height != nil {
		updates["height"] = *req.Height
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return nil, apperrors.ErrEmptyUpdate
	}

	if _, err := s.getGarden(id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(id, updates); err != nil {
		return nil, fmt.Errorf("failed to update garden: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Delete deletes a garden, then its plants, then its raised beds
func (s *GardenService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getGarden(id); err != nil {
		return err
	}

	if err := s.cascade.Delete(ctx, cascade.CollectionGardens, id, s.repo.Delete); err != nil {
		var cascadeErr *cascade.Error
		if errors.As(err, &cascadeErr) {
			return err
		}
		return fmt.Errorf("failed to delete garden: %w", err)
	}

	logger.WithContext(ctx).WithField("garden_id", id.String()).Info("garden deleted")
	return nil
}

// BulkDelete deletes every garden in req concurrently. A failure for one id is
// reported in its result and does not stop the others.
func (s *GardenService) BulkDelete(ctx context.Context, req *BulkDeleteGardensRequest) (*BulkDeleteGardensResponse, error) {
	if err := validation.Struct(s.validator, "Invalid bulk delete", req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ids := uniqueIDs(req.IDs)
	results := make([]BulkDeleteResult, len(ids))

	var g errgroup.Group
	g.SetLimit(s.bulkConcurrency)
	var mu sync.Mutex
	resp := &BulkDeleteGardensResponse{}

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			result := BulkDeleteResult{ID: id, Deleted: true}
			if err := s.Delete(ctx, id); err != nil {
				result = BulkDeleteResult{ID: id, Error: err.Error()}
			}
			results[i] = result

			mu.Lock()
			if result.Deleted {
				resp.Deleted++
			} else {
				resp.Failed++
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	resp.Results = results
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"deleted": resp.Deleted,
		"failed":  resp.Failed,
	}).Info("bulk garden delete finished")
	return resp, nil
}

func (s *GardenService) getGarden(id uuid.UUID) (*models.Garden, error) {
	garden, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGardenNotFound
		}
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}
	return garden, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func toGardenResponse(g *models.Garden) *GardenResponse {
	return &GardenResponse{
		ID:          g.ID,
		Name:        g.Name,
		Width:       g.Width,
		Height:      g.Height,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
