package repository

import (
	"garden-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ensure GardenRepository implements GardenRepositoryInterface
var _ GardenRepositoryInterface = (*GardenRepository)(nil)

// GardenRepository handles database operations for gardens
type GardenRepository struct {
	db *gorm.DB
}

// NewGardenRepository creates a new garden repository
func NewGardenRepository(db *gorm.DB) *GardenRepository {
	return &GardenRepository{db: db}
}

// Create creates a new garden
func (r *GardenRepository) Create(garden *models.Garden) error {
	return r.db.Create(garden).Error
}

// GetByID retrieves a garden by ID
func (r *GardenRepository) GetByID(id uuid.UUID) (*models.Garden, error) {
	var garden models.Garden
	err := r.db.First(&garden, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &garden, nil
}

// GetAll retrieves all gardens, newest first
func (r *GardenRepository) GetAll() ([]models.Garden, error) {
	var gardens []models.Garden
	err := r.db.Order("created_at DESC").Find(&gardens).Error
	if err != nil {
		return nil, err
	}
	return gardens, nil
}

// ListIDs returns the ids of every garden
func (r *GardenRepository) ListIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Garden{}).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update patches the given columns of a garden
func (r *GardenRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Garden{}).Where("id = ?", id).Updates(updates).Error
}

// Delete deletes a garden. Children are handled by the cascade rules.
func (r *GardenRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Garden{}, "id = ?", id).Error
}
