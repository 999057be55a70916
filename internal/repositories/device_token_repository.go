package repositories

import (
	"errors"
	"fmt"

	"eyesonplants/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDeviceTokenNotFound = errors.New("device token not found")

// DeviceTokenRepository handles database operations for push device tokens
type DeviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository creates a new device token repository
func NewDeviceTokenRepository(db *gorm.DB) DeviceTokenRepositoryInterface {
	return &DeviceTokenRepository{
		db: db,
	}
}

// Upsert registers a device token. A token that already exists is reassigned
// to the registering user, which covers app reinstalls and account switches
// on the same device.
func (r *DeviceTokenRepository) Upsert(token *models.DeviceToken) error {
	if token == nil {
		return errors.New("device token cannot be nil")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"user_id", "device_type", "device_model", "app_version", "updated_at",
		}),
	}).Create(token).Error
	if err != nil {
		return fmt.Errorf("failed to upsert device token: %w", err)
	}

	return nil
}

// GetByUserID retrieves all registered devices for a user
func (r *DeviceTokenRepository) GetByUserID(userID int64) ([]*models.DeviceToken, error) {
	var tokens []*models.DeviceToken
	if err := r.db.Where("user_id = ?", userID).Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}

	return tokens, nil
}

// GetByToken retrieves a registration by its token string
func (r *DeviceTokenRepository) GetByToken(token string) (*models.DeviceToken, error) {
	var deviceToken models.DeviceToken
	if err := r.db.Where("token = ?", token).First(&deviceToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceTokenNotFound
		}
		return nil, fmt.Errorf("failed to get device token: %w", err)
	}

	return &deviceToken, nil
}

// DeleteByToken removes a registration, used when the push provider reports
// the token as stale.
func (r *DeviceTokenRepository) DeleteByToken(token string) error {
	result := r.db.Where("token = ?", token).Delete(&models.DeviceToken{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete device token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDeviceTokenNotFound
	}

	return nil
}

// DeleteByUserID removes all registrations for a user
func (r *DeviceTokenRepository) DeleteByUserID(userID int64) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.DeviceToken{}).Error; err != nil {
		return fmt.Errorf("failed to delete device tokens: %w", err)
	}

	return nil
}
