package repository

import (
	"garden-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ensure RaisedBedRepository implements RaisedBedRepositoryInterface
var _ RaisedBedRepositoryInterface = (*RaisedBedRepository)(nil)

// RaisedBedRepository handles database operations for raised beds
type RaisedBedRepository struct {
	db *gorm.DB
}

// NewRaisedBedRepository creates a new raised bed repository
func NewRaisedBedRepository(db *gorm.DB) *RaisedBedRepository {
	return &RaisedBedRepository{db: db}
}

// Create creates a new raised bed
func (r *RaisedBedRepository) Create(bed *models.RaisedBed) error {
	return r.db.Create(bed).Error
}

// GetByID retrieves a raised bed by ID
func (r *RaisedBedRepository) GetByID(id uuid.UUID) (*models.RaisedBed, error) {
	var bed models.RaisedBed
	err := r.db.First(&bed, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bed, nil
}

// GetAll retrieves every raised bed regardless of garden
func (r *RaisedBedRepository) GetAll() ([]models.RaisedBed, error) {
	var beds []models.RaisedBed
	err := r.db.Order("created_at ASC").Find(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

// ListIDs returns the ids of every raised bed
func (r *RaisedBedRepository) ListIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.RaisedBed{}).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByGardenID retrieves the raised beds of a garden in creation order
func (r *RaisedBedRepository) GetByGardenID(gardenID uuid.UUID) ([]models.RaisedBed, error) {
	var beds []models.RaisedBed
	err := r.db.Where("garden_id = ?", gardenID).Order("created_at ASC").Find(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

// Update patches the given columns of a raised bed
func (r *RaisedBedRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.RaisedBed{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a raised bed
func (r *RaisedBedRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RaisedBed{}, "id = ?", id).Error
}
