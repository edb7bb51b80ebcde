package service

import (
	"context"
	"fmt"

	"garden-planner-backend/internal/cascade"
	"garden-planner-backend/internal/database/models"
	"garden-planner-backend/internal/logger"
	"garden-planner-backend/internal/metrics"
	"garden-planner-backend/internal/repository"

	"github.com/google/uuid"
)

// Orphan issues
const (
	IssueMissingGarden    = "missing_garden"
	IssueMissingRaisedBed = "missing_raised_bed"
)

// MaintenanceService detects and repairs references left dangling by failed or
// out-of-band deletes.
type MaintenanceService struct {
	gardenRepo repository.GardenRepositoryInterface
	bedRepo    repository.RaisedBedRepositoryInterface
	plantRepo  repository.PlantRepositoryInterface
	metrics    *metrics.Metrics
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	gardenRepo repository.GardenRepositoryInterface,
	bedRepo repository.RaisedBedRepositoryInterface,
	plantRepo repository.PlantRepositoryInterface,
	m *metrics.Metrics,
) *MaintenanceService {
	return &MaintenanceService{
		gardenRepo: gardenRepo,
		bedRepo:    bedRepo,
		plantRepo:  plantRepo,
		metrics:    m,
	}
}

// OrphanedPlant is a plant with a dangling reference. A plant missing both its
// garden and its bed is reported once per issue.
type OrphanedPlant struct {
	PlantID     uuid.UUID  `json:"plant_id"`
	PlantName   string     `json:"plant_name"`
	GardenID    uuid.UUID  `json:"garden_id"`
	RaisedBedID *uuid.UUID `json:"raised_bed_id,omitempty"`
	Issue       string     `json:"issue"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
}

// OrphanedRaisedBed is a raised bed whose garden no longer exists
type OrphanedRaisedBed struct {
	BedID    uuid.UUID       `json:"bed_id"`
	BedName  string          `json:"bed_name"`
	GardenID uuid.UUID       `json:"garden_id"`
	X        float64         `json:"x"`
	Y        float64         `json:"y"`
	Material models.Material `json:"material" swaggertype:"string"`
}

// PlantCleanupResult reports a plant repair pass
type PlantCleanupResult struct {
	DeletedPlants     int `json:"deleted_plants"`
	ClearedReferences int `json:"cleared_references"`
}

// RaisedBedCleanupResult reports a raised bed repair pass
type RaisedBedCleanupResult struct {
	DeletedBeds int `json:"deleted_beds"`
}

// CleanupResult reports a full repair pass
type CleanupResult struct {
	DeletedPlants     int `json:"deleted_plants"`
	DeletedBeds       int `json:"deleted_beds"`
	TotalDeleted      int `json:"total_deleted"`
	ClearedReferences int `json:"cleared_references"`
}

type idSet map[uuid.UUID]struct{}

func (s idSet) has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func newIDSet(ids []uuid.UUID) idSet {
	set := make(idSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s *MaintenanceService) gardenIDs() (idSet, error) {
	ids, err := s.gardenRepo.ListIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list gardens: %w", err)
	}
	return newIDSet(ids), nil
}

func (s *MaintenanceService) bedIDs() (idSet, error) {
	ids, err := s.bedRepo.ListIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list raised beds: %w", err)
	}
	return newIDSet(ids), nil
}

// Children are always read before the parent ids. A child read first whose
// parent is missing from the later snapshot is a real orphan, while a garden or
// bed created during the pass can never make its own children look orphaned.

func (s *MaintenanceService) allPlants() ([]models.Plant, error) {
	plants, err := s.plantRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	return plants, nil
}

func (s *MaintenanceService) allBeds() ([]models.RaisedBed, error) {
	beds, err := s.bedRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list raised beds: %w", err)
	}
	return beds, nil
}

// FindOrphanedPlants reports plants whose garden or raised bed is missing
func (s *MaintenanceService) FindOrphanedPlants(ctx context.Context) ([]OrphanedPlant, error) {
	plants, err := s.allPlants()
	if err != nil {
		return nil, err
	}
	gardens, err := s.gardenIDs()
	if err != nil {
		return nil, err
	}
	beds, err := s.bedIDs()
	if err != nil {
		return nil, err
	}

	orphans := []OrphanedPlant{}
	for _, p := range plants {
		if !gardens.has(p.GardenID) {
			orphans = append(orphans, OrphanedPlant{
				PlantID:   p.ID,
				PlantName: p.Name,
				GardenID:  p.GardenID,
				Issue:     IssueMissingGarden,
				X:         p.X,
				Y:         p.Y,
			})
		}
		if p.RaisedBedID != nil && !beds.has(*p.RaisedBedID) {
			orphans = append(orphans, OrphanedPlant{
				PlantID:     p.ID,
				PlantName:   p.Name,
				GardenID:    p.GardenID,
				RaisedBedID: p.RaisedBedID,
				Issue:       IssueMissingRaisedBed,
				X:           p.X,
				Y:           p.Y,
			})
		}
	}
	return orphans, nil
}

// FindOrphanedRaisedBeds reports raised beds whose garden is missing
func (s *MaintenanceService) FindOrphanedRaisedBeds(ctx context.Context) ([]OrphanedRaisedBed, error) {
	beds, err := s.allBeds()
	if err != nil {
		return nil, err
	}
	gardens, err := s.gardenIDs()
	if err != nil {
		return nil, err
	}

	orphans := []OrphanedRaisedBed{}
	for _, b := range beds {
		if gardens.has(b.GardenID) {
			continue
		}
		orphans = append(orphans, OrphanedRaisedBed{
			BedID:    b.ID,
			BedName:  b.Name,
			GardenID: b.GardenID,
			X:        b.X,
			Y:        b.Y,
			Material: b.Material,
		})
	}
	return orphans, nil
}

// CleanupOrphanedPlants deletes plants whose garden is missing and clears the
// raised bed reference of plants whose bed is missing.
func (s *MaintenanceService) CleanupOrphanedPlants(ctx context.Context) (*PlantCleanupResult, error) {
	plants, err := s.allPlants()
	if err != nil {
		return nil, err
	}
	gardens, err := s.gardenIDs()
	if err != nil {
		return nil, err
	}
	beds, err := s.bedIDs()
	if err != nil {
		return nil, err
	}
	return s.cleanupPlants(ctx, plants, gardens, beds)
}

// CleanupOrphanedRaisedBeds deletes raised beds whose garden is missing
func (s *MaintenanceService) CleanupOrphanedRaisedBeds(ctx context.Context) (*RaisedBedCleanupResult, error) {
	beds, err := s.allBeds()
	if err != nil {
		return nil, err
	}
	gardens, err := s.gardenIDs()
	if err != nil {
		return nil, err
	}
	deleted, err := s.cleanupBeds(ctx, gardens, beds)
	if err != nil {
		return nil, err
	}
	return &RaisedBedCleanupResult{DeletedBeds: deleted}, nil
}

// CleanupAll repairs plants, then raised beds. Beds about to be removed for a
// missing garden do not count as a valid home for a plant, so a second run
// finds nothing to do.
func (s *MaintenanceService) CleanupAll(ctx context.Context) (*CleanupResult, error) {
	plants, err := s.allPlants()
	if err != nil {
		return nil, err
	}
	allBeds, err := s.allBeds()
	if err != nil {
		return nil, err
	}
	gardens, err := s.gardenIDs()
	if err != nil {
		return nil, err
	}
	liveBeds := make(idSet, len(allBeds))
	for _, b := range allBeds {
		if gardens.has(b.GardenID) {
			liveBeds[b.ID] = struct{}{}
		}
	}

	cleaned, err := s.cleanupPlants(ctx, plants, gardens, liveBeds)
	if err != nil {
		return nil, err
	}
	deletedBeds, err := s.cleanupBeds(ctx, gardens, allBeds)
	if err != nil {
		return nil, err
	}

	return &CleanupResult{
		DeletedPlants:     cleaned.DeletedPlants,
		DeletedBeds:       deletedBeds,
		TotalDeleted:      cleaned.DeletedPlants + deletedBeds,
		ClearedReferences: cleaned.ClearedReferences,
	}, nil
}

func (s *MaintenanceService) cleanupPlants(ctx context.Context, plants []models.Plant, gardens, beds idSet) (*PlantCleanupResult, error) {
	log := logger.WithContext(ctx)

	result := &PlantCleanupResult{}
	defer func() {
		s.metrics.ObserveCleanup(cascade.CollectionPlants, "delete", result.DeletedPlants)
		s.metrics.ObserveCleanup(cascade.CollectionPlants, "clear_raised_bed", result.ClearedReferences)
	}()

	for _, p := range plants {
		if !gardens.has(p.GardenID) {
			if err := s.plantRepo.Delete(p.ID); err != nil {
				return nil, fmt.Errorf("failed to delete orphaned plant %s: %w", p.ID, err)
			}
			result.DeletedPlants++
			log.WithFields(map[string]interface{}{"plant_id": p.ID.String(), "name": p.Name}).Info("deleted orphaned plant")
			continue
		}
		if p.RaisedBedID != nil && !beds.has(*p.RaisedBedID) {
			if err := s.plantRepo.ClearRaisedBed(p.ID); err != nil {
				return nil, fmt.Errorf("failed to clear raised bed of plant %s: %w", p.ID, err)
			}
			result.ClearedReferences++
			log.WithFields(map[string]interface{}{"plant_id": p.ID.String(), "name": p.Name}).Info("removed invalid raised bed reference")
		}
	}
	return result, nil
}

func (s *MaintenanceService) cleanupBeds(ctx context.Context, gardens idSet, beds []models.RaisedBed) (int, error) {
	log := logger.WithContext(ctx)

	deleted := 0
	defer func() {
		s.metrics.ObserveCleanup(cascade.CollectionRaisedBeds, "delete", deleted)
	}()

	for _, b := range beds {
		if gardens.has(b.GardenID) {
			continue
		}
		if err := s.bedRepo.Delete(b.ID); err != nil {
			return deleted, fmt.Errorf("failed to delete orphaned raised bed %s: %w", b.ID, err)
		}
		deleted++
		log.WithFields(map[string]interface{}{"raised_bed_id": b.ID.String(), "name": b.Name}).Info("deleted orphaned raised bed")
	}
	return deleted, nil
}
