package testutils

import (
	"time"

	"garden-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// GardenFactory provides methods to create test Garden data
type GardenFactory struct{}

// NewGardenFactory creates a new GardenFactory
func NewGardenFactory() *GardenFactory {
	return &GardenFactory{}
}

// Create creates a test Garden with default values
func (f *GardenFactory) Create() *models.Garden {
	return &models.Garden{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Garden",
		Width:       4,
		Height:      3,
		Description: "A test garden for testing purposes",
	}
}

// WithName sets a custom name for the garden
func (f *GardenFactory) WithName(name string) *models.Garden {
	garden := f.Create()
	garden.Name = name
	return garden
}

// WithSize sets custom dimensions for the garden
func (f *GardenFactory) WithSize(width, height float64) *models.Garden {
	garden := f.Create()
	garden.Width = width
	garden.Height = height
	return garden
}

// RaisedBedFactory provides methods to create test RaisedBed data
type RaisedBedFactory struct{}

// NewRaisedBedFactory creates a new RaisedBedFactory
func NewRaisedBedFactory() *RaisedBedFactory {
	return &RaisedBedFactory{}
}

// Create creates a test RaisedBed with default values
func (f *RaisedBedFactory) Create() *models.RaisedBed {
	return &models.RaisedBed{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GardenID:  uuid.New(),
		Name:      "Test Bed",
		Rect:      models.Rect{X: 0, Y: 0, Width: 1.2, Height: 2.4},
		BedHeight: 0.3,
		Material:  models.MaterialWood,
		Color:     models.MaterialWood.Color(),
		SoilType:  "loam",
	}
}

// WithGarden sets the garden the bed belongs to
func (f *RaisedBedFactory) WithGarden(gardenID uuid.UUID) *models.RaisedBed {
	bed := f.Create()
	bed.GardenID = gardenID
	return bed
}

// WithRect places the bed in the given rectangle of its garden
func (f *RaisedBedFactory) WithRect(gardenID uuid.UUID, rect models.Rect) *models.RaisedBed {
	bed := f.WithGarden(gardenID)
	bed.Rect = rect
	return bed
}

// PlantFactory provides methods to create test Plant data
type PlantFactory struct{}

// NewPlantFactory creates a new PlantFactory
func NewPlantFactory() *PlantFactory {
	return &PlantFactory{}
}

// Create creates a test Plant with default values, planted in the ground
func (f *PlantFactory) Create() *models.Plant {
	return &models.Plant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GardenID: uuid.New(),
		Name:     "Tomato",
		Variety:  "Tomato",
		Rect:     models.Rect{X: 0, Y: 0, Width: 0.6, Height: 0.6},
		Color:    "#ff6b6b",
		Status:   models.PlantStatusPlanned,
	}
}

// WithGarden creates an in-ground plant in the given garden
func (f *PlantFactory) WithGarden(gardenID uuid.UUID) *models.Plant {
	plant := f.Create()
	plant.GardenID = gardenID
	return plant
}

// WithRaisedBed creates a plant inside the given bed
func (f *PlantFactory) WithRaisedBed(gardenID, bedID uuid.UUID) *models.Plant {
	plant := f.WithGarden(gardenID)
	plant.RaisedBedID = &bedID
	return plant
}

// PlantTypeFactory provides methods to create test PlantType data
type PlantTypeFactory struct{}

// NewPlantTypeFactory creates a new PlantTypeFactory
func NewPlantTypeFactory() *PlantTypeFactory {
	return &PlantTypeFactory{}
}

// Create creates a test PlantType with default values
func (f *PlantTypeFactory) Create() *models.PlantType {
	return &models.PlantType{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "Tomato",
		Category:        "fruit",
		Spacing:         60,
		DaysToMaturity:  80,
		PlantingSeasons: []string{"spring"},
		Companion:       []string{"Basil"},
		Avoid:           []string{"Fennel"},
		Color:           "#ff6b6b",
	}
}

// WithName sets a custom name and category for the plant type
func (f *PlantTypeFactory) WithName(name, category string) *models.PlantType {
	pt := f.Create()
	pt.Name = name
	pt.Category = category
	return pt
}

// FactorySet provides access to all factories
type FactorySet struct {
	Garden    *GardenFactory
	RaisedBed *RaisedBedFactory
	Plant     *PlantFactory
	PlantType *PlantTypeFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Garden:    NewGardenFactory(),
		RaisedBed: NewRaisedBedFactory(),
		Plant:     NewPlantFactory(),
		PlantType: NewPlantTypeFactory(),
	}
}

// CreateGardenLayout creates a garden holding one bed, with one plant in the bed
// and one in the ground. Nothing is persisted.
func (fs *FactorySet) CreateGardenLayout() (*models.Garden, *models.RaisedBed, *models.Plant, *models.Plant) {
	garden := fs.Garden.Create()
	bed := fs.RaisedBed.WithRect(garden.ID, models.Rect{X: 0, Y: 0, Width: 1.2, Height: 2.4})

	inBed := fs.Plant.WithRaisedBed(garden.ID, bed.ID)
	inBed.Rect = models.Rect{X: 0.25, Y: 0.25, Width: 0.6, Height: 0.6}

	inGround := fs.Plant.WithGarden(garden.ID)
	inGround.Name = "Lettuce"
	inGround.Variety = "Lettuce"
	inGround.Rect = models.Rect{X: 2, Y: 1, Width: 0.3, Height: 0.3}

	return garden, bed, inBed, inGround
}
