package repositories

import (
	"errors"
	"fmt"

	"eyesonplants/internal/models"

	"gorm.io/gorm"
)

var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository handles database operations for tracked plants
type PlantRepository struct {
	db *gorm.DB
}

// NewPlantRepository creates a new plant repository
func NewPlantRepository(db *gorm.DB) PlantRepositoryInterface {
	return &PlantRepository{
		db: db,
	}
}

// Create creates a new plant in the database
func (r *PlantRepository) Create(plant *models.Plant) error {
	if plant == nil {
		return errors.New("plant cannot be nil")
	}

	if err := r.db.Create(plant).Error; err != nil {
		return fmt.Errorf("failed to create plant: %w", err)
	}

	return nil
}

// GetByID retrieves a plant by its ID
func (r *PlantRepository) GetByID(id int64) (*models.Plant, error) {
	var plant models.Plant
	if err := r.db.First(&plant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlantNotFound
		}
		return nil, fmt.Errorf("failed to get plant by ID: %w", err)
	}

	return &plant, nil
}

// GetByUserID retrieves a user's plants with pagination
func (r *PlantRepository) GetByUserID(userID int64, offset, limit int) ([]*models.Plant, int64, error) {
	var plants []*models.Plant
	var total int64

	query := r.db.Model(&models.Plant{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count plants: %w", err)
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&plants).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list plants: %w", err)
	}

	return plants, total, nil
}

// Search retrieves a user's plants matching the given filters
func (r *PlantRepository) Search(userID int64, filters models.PlantSearchFilters, offset, limit int) ([]*models.Plant, int64, error) {
	var plants []*models.Plant
	var total int64

	query := r.db.Model(&models.Plant{}).Where("user_id = ?", userID)

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where("LOWER(plant_name) LIKE LOWER(?)", pattern)
	}
	if filters.Type != "" {
		query = query.Where("LOWER(type) = LOWER(?)", filters.Type)
	}
	if filters.Stage != "" {
		query = query.Where("plant_stage = ?", filters.Stage)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count plants: %w", err)
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&plants).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search plants: %w", err)
	}

	return plants, total, nil
}

// Update updates a plant in the database
func (r *PlantRepository) Update(plant *models.Plant) error {
	if plant == nil {
		return errors.New("plant cannot be nil")
	}

	if err := r.db.Save(plant).Error; err != nil {
		return fmt.Errorf("failed to update plant: %w", err)
	}

	return nil
}

// UpdateFields updates specific fields of a plant
func (r *PlantRepository) UpdateFields(plantID int64, fields map[string]interface{}) error {
	result := r.db.Model(&models.Plant{ID: plantID}).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update plant fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlantNotFound
	}

	return nil
}

// Delete soft deletes a plant
func (r *PlantRepository) Delete(plantID int64) error {
	result := r.db.Delete(&models.Plant{ID: plantID})
	if result.Error != nil {
		return fmt.Errorf("failed to delete plant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlantNotFound
	}

	return nil
}
