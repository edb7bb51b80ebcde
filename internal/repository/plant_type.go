package repository

import (
	"garden-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ensure PlantTypeRepository implements PlantTypeRepositoryInterface
var _ PlantTypeRepositoryInterface = (*PlantTypeRepository)(nil)

// PlantTypeRepository handles database operations for the plant type catalog
type PlantTypeRepository struct {
	db *gorm.DB
}

// NewPlantTypeRepository creates a new plant type repository
func NewPlantTypeRepository(db *gorm.DB) *PlantTypeRepository {
	return &PlantTypeRepository{db: db}
}

// GetAll retrieves all plant types ordered by name
func (r *PlantTypeRepository) GetAll() ([]models.PlantType, error) {
	var types []models.PlantType
	err := r.db.Order("name ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// GetByCategory retrieves the plant types of one category
func (r *PlantTypeRepository) GetByCategory(category string) ([]models.PlantType, error) {
	var types []models.PlantType
	err := r.db.Where("category = ?", category).Order("name ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

// GetByID retrieves a plant type by ID
func (r *PlantTypeRepository) GetByID(id uuid.UUID) (*models.PlantType, error) {
	var pt models.PlantType
	err := r.db.First(&pt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// GetByName retrieves a plant type by its unique name
func (r *PlantTypeRepository) GetByName(name string) (*models.PlantType, error) {
	var pt models.PlantType
	err := r.db.First(&pt, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// Count returns the number of plant types
func (r *PlantTypeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.PlantType{}).Count(&count).Error
	return count, err
}

// CreateBatch inserts plant types in one statement
func (r *PlantTypeRepository) CreateBatch(plantTypes []models.PlantType) error {
	if len(plantTypes) == 0 {
		return nil
	}
	return r.db.Create(&plantTypes).Error
}
