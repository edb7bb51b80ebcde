package cascade

import (
	"context"

	"garden-planner-backend/internal/database/models"
	"garden-planner-backend/internal/logger"

	"github.com/google/uuid"
)

// PlantStore is the part of the plant repository the rules need
type PlantStore interface {
	GetByGardenID(gardenID uuid.UUID) ([]models.Plant, error)
	GetByRaisedBedID(raisedBedID uuid.UUID) ([]models.Plant, error)
	ClearRaisedBed(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

// RaisedBedStore is the part of the raised bed repository the rules need
type RaisedBedStore interface {
	GetByGardenID(gardenID uuid.UUID) ([]models.RaisedBed, error)
	Delete(id uuid.UUID) error
}

// Observer counts child operations. *metrics.Metrics satisfies it.
type Observer interface {
	ObserveCascade(collection, action string)
}

type noopObserver struct{}

func (noopObserver) ObserveCascade(string, string) {}

// NewDefaultRegistry builds the registry with the garden and raised bed rules.
func NewDefaultRegistry(plants PlantStore, beds RaisedBedStore, observer Observer) *Registry {
	if observer == nil {
		observer = noopObserver{}
	}
	r := NewRegistry()
	r.Register(CollectionGardens, &GardenDeleteRule{plants: plants, beds: beds, observer: observer})
	r.Register(CollectionRaisedBeds, &RaisedBedDeleteRule{plants: plants, observer: observer})
	return r
}

// GardenDeleteRule removes every plant and then every raised bed of a deleted garden
type GardenDeleteRule struct {
	plants   PlantStore
	beds     RaisedBedStore
	observer Observer
}

// Name returns the rule name
func (g *GardenDeleteRule) Name() string {
	return "garden_delete"
}

// Apply deletes the children of change.ID. Each child list is read once before
// any of its members is touched.
func (g *GardenDeleteRule) Apply(ctx context.Context, change Change) error {
	if change.Operation != OperationDelete {
		return nil
	}
	log := logger.WithContext(ctx).WithField("garden_id", change.ID.String())

	plants, err := g.plants.GetByGardenID(change.ID)
	if err != nil {
		return g.fail(change, err)
	}
	for _, plant := range plants {
		if err := g.plants.Delete(plant.ID); err != nil {
			return g.fail(change, err)
		}
		g.observer.ObserveCascade(CollectionPlants, "delete")
	}

	beds, err := g.beds.GetByGardenID(change.ID)
	if err != nil {
		return g.fail(change, err)
	}
	for _, bed := range beds {
		if err := g.beds.Delete(bed.ID); err != nil {
			return g.fail(change, err)
		}
		g.observer.ObserveCascade(CollectionRaisedBeds, "delete")
	}

	log.Infof("cascade removed %d plants and %d raised beds", len(plants), len(beds))
	return nil
}

func (g *GardenDeleteRule) fail(change Change, err error) error {
	return &Error{Rule: g.Name(), Collection: change.Collection, ID: change.ID, Err: err}
}

// RaisedBedDeleteRule moves the plants of a deleted bed into the ground
type RaisedBedDeleteRule struct {
	plants   PlantStore
	observer Observer
}

// Name returns the rule name
func (b *RaisedBedDeleteRule) Name() string {
	return "raised_bed_delete"
}

// Apply clears raised_bed_id on every plant that referenced change.ID
func (b *RaisedBedDeleteRule) Apply(ctx context.Context, change Change) error {
	if change.Operation != OperationDelete {
		return nil
	}

	plants, err := b.plants.GetByRaisedBedID(change.ID)
	if err != nil {
		return &Error{Rule: b.Name(), Collection: change.Collection, ID: change.ID, Err: err}
	}
	for _, plant := range plants {
		if err := b.plants.ClearRaisedBed(plant.ID); err != nil {
			return &Error{Rule: b.Name(), Collection: change.Collection, ID: change.ID, Err: err}
		}
		b.observer.ObserveCascade(CollectionPlants, "clear_raised_bed")
	}

	if len(plants) > 0 {
		logger.WithContext(ctx).WithField("raised_bed_id", change.ID.String()).
			Infof("cascade moved %d plants into the ground", len(plants))
	}
	return nil
}
