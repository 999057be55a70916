package repositories

import (
	"errors"
	"fmt"

	"eyesonplants/internal/models"

	"gorm.io/gorm"
)

var ErrCareGuideNotFound = errors.New("care guide not found")

// CareGuideRepository handles database operations for care guides
type CareGuideRepository struct {
	db *gorm.DB
}

// NewCareGuideRepository creates a new care guide repository
func NewCareGuideRepository(db *gorm.DB) CareGuideRepositoryInterface {
	return &CareGuideRepository{
		db: db,
	}
}

// Create creates a new care guide in the database
func (r *CareGuideRepository) Create(guide *models.CareGuide) error {
	if guide == nil {
		return errors.New("care guide cannot be nil")
	}

	if err := r.db.Create(guide).Error; err != nil {
		return fmt.Errorf("failed to create care guide: %w", err)
	}

	return nil
}

// GetByID retrieves a care guide by its ID
func (r *CareGuideRepository) GetByID(id int64) (*models.CareGuide, error) {
	var guide models.CareGuide
	if err := r.db.First(&guide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareGuideNotFound
		}
		return nil, fmt.Errorf("failed to get care guide by ID: %w", err)
	}

	return &guide, nil
}

// List retrieves care guides with pagination
func (r *CareGuideRepository) List(offset, limit int) ([]*models.CareGuide, int64, error) {
	var guides []*models.CareGuide
	var total int64

	if err := r.db.Model(&models.CareGuide{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count care guides: %w", err)
	}

	if err := r.db.Order("plant_name ASC").Offset(offset).Limit(limit).Find(&guides).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list care guides: %w", err)
	}

	return guides, total, nil
}

// SearchByPlantName searches care guides by plant name
func (r *CareGuideRepository) SearchByPlantName(query string, offset, limit int) ([]*models.CareGuide, int64, error) {
	var guides []*models.CareGuide
	var total int64

	pattern := "%" + query + "%"
	base := r.db.Model(&models.CareGuide{}).Where("LOWER(plant_name) LIKE LOWER(?)", pattern)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count care guides: %w", err)
	}

	if err := base.Order("plant_name ASC").Offset(offset).Limit(limit).Find(&guides).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search care guides: %w", err)
	}

	return guides, total, nil
}

// Update updates a care guide in the database
func (r *CareGuideRepository) Update(guide *models.CareGuide) error {
	if guide == nil {
		return errors.New("care guide cannot be nil")
	}

	if err := r.db.Save(guide).Error; err != nil {
		return fmt.Errorf("failed to update care guide: %w", err)
	}

	return nil
}

// Delete soft deletes a care guide
func (r *CareGuideRepository) Delete(guideID int64) error {
	result := r.db.Delete(&models.CareGuide{ID: guideID})
	if result.Error != nil {
		return fmt.Errorf("failed to delete care guide: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCareGuideNotFound
	}

	return nil
}
