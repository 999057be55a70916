package repositories

import (
	"errors"
	"fmt"

	"eyesonplants/internal/models"

	"gorm.io/gorm"
)

var ErrDiseaseNotFound = errors.New("disease not found")

// DiseaseRepository handles database operations for disease entries
type DiseaseRepository struct {
	db *gorm.DB
}

// NewDiseaseRepository creates a new disease repository
func NewDiseaseRepository(db *gorm.DB) DiseaseRepositoryInterface {
	return &DiseaseRepository{
		db: db,
	}
}

// Create creates a new disease entry in the database
func (r *DiseaseRepository) Create(disease *models.Disease) error {
	if disease == nil {
		return errors.New("disease cannot be nil")
	}

	if err := r.db.Create(disease).Error; err != nil {
		return fmt.Errorf("failed to create disease: %w", err)
	}

	return nil
}

// GetByID retrieves a disease entry by its ID
func (r *DiseaseRepository) GetByID(id int64) (*models.Disease, error) {
	var disease models.Disease
	if err := r.db.First(&disease, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiseaseNotFound
		}
		return nil, fmt.Errorf("failed to get disease by ID: %w", err)
	}

	return &disease, nil
}

// List retrieves disease entries with pagination
func (r *DiseaseRepository) List(offset, limit int) ([]*models.Disease, int64, error) {
	var diseases []*models.Disease
	var total int64

	if err := r.db.Model(&models.Disease{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count diseases: %w", err)
	}

	if err := r.db.Order("disease_name ASC").Offset(offset).Limit(limit).Find(&diseases).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list diseases: %w", err)
	}

	return diseases, total, nil
}

// SearchByName searches disease entries by name
func (r *DiseaseRepository) SearchByName(query string, offset, limit int) ([]*models.Disease, int64, error) {
	var diseases []*models.Disease
	var total int64

	pattern := "%" + query + "%"
	base := r.db.Model(&models.Disease{}).Where("LOWER(disease_name) LIKE LOWER(?)", pattern)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count diseases: %w", err)
	}

	if err := base.Order("disease_name ASC").Offset(offset).Limit(limit).Find(&diseases).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search diseases: %w", err)
	}

	return diseases, total, nil
}

// Update updates a disease entry in the database
func (r *DiseaseRepository) Update(disease *models.Disease) error {
	if disease == nil {
		return errors.New("disease cannot be nil")
	}

	if err := r.db.Save(disease).Error; err != nil {
		return fmt.Errorf("failed to update disease: %w", err)
	}

	return nil
}

// Delete soft deletes a disease entry
func (r *DiseaseRepository) Delete(diseaseID int64) error {
	result := r.db.Delete(&models.Disease{ID: diseaseID})
	if result.Error != nil {
		return fmt.Errorf("failed to delete disease: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDiseaseNotFound
	}

	return nil
}
