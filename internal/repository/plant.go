package repository

import (
	"garden-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ensure PlantRepository implements PlantRepositoryInterface
var _ PlantRepositoryInterface = (*PlantRepository)(nil)

// PlantRepository handles database operations for plants
type PlantRepository struct {
	db *gorm.DB
}

// NewPlantRepository creates a new plant repository
func NewPlantRepository(db *gorm.DB) *PlantRepository {
	return &PlantRepository{db: db}
}

// Create creates a new plant
func (r *PlantRepository) Create(plant *models.Plant) error {
	return r.db.Create(plant).Error
}

// GetByID retrieves a plant by ID
func (r *PlantRepository) GetByID(id uuid.UUID) (*models.Plant, error) {
	var plant models.Plant
	err := r.db.First(&plant, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

// GetAll retrieves every plant regardless of garden
func (r *PlantRepository) GetAll() ([]models.Plant, error) {
	var plants []models.Plant
	err := r.db.Order("created_at ASC").Find(&plants).Error
	if err != nil {
		return nil, err
	}
	return plants, nil
}

// GetByGardenID retrieves the plants of a garden, in beds or in the ground
func (r *PlantRepository) GetByGardenID(gardenID uuid.UUID) ([]models.Plant, error) {
	var plants []models.Plant
	err := r.db.Where("garden_id = ?", gardenID).Order("created_at ASC").Find(&plants).Error
	if err != nil {
		return nil, err
	}
	return plants, nil
}

// GetByRaisedBedID retrieves the plants that reference a raised bed
func (r *PlantRepository) GetByRaisedBedID(raisedBedID uuid.UUID) ([]models.Plant, error) {
	var plants []models.Plant
	err := r.db.Where("raised_bed_id = ?", raisedBedID).Order("created_at ASC").Find(&plants).Error
	if err != nil {
		return nil, err
	}
	return plants, nil
}

// Update patches the given columns of a plant
func (r *PlantRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Plant{}).Where("id = ?", id).Updates(updates).Error
}

// ClearRaisedBed moves a plant into the ground by unsetting raised_bed_id
func (r *PlantRepository) ClearRaisedBed(id uuid.UUID) error {
	return r.db.Model(&models.Plant{}).Where("id = ?", id).Update("raised_bed_id", nil).Error
}

// Delete deletes a plant
func (r *PlantRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Plant{}, "id = ?", id).Error
}
