package repositories

import (
	"errors"
	"fmt"
	"time"

	"eyesonplants/internal/models"

	"gorm.io/gorm"
)

var ErrReminderNotFound = errors.New("reminder not found")

// ReminderRepository handles database operations for care reminders
type ReminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) ReminderRepositoryInterface {
	return &ReminderRepository{
		db: db,
	}
}

// Create creates a new reminder in the database
func (r *ReminderRepository) Create(reminder *models.Reminder) error {
	if reminder == nil {
		return errors.New("reminder cannot be nil")
	}

	if err := r.db.Create(reminder).Error; err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return nil
}

// GetByID retrieves a reminder by its ID
func (r *ReminderRepository) GetByID(id int64) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := r.db.Preload("Plant").First(&reminder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder by ID: %w", err)
	}

	return &reminder, nil
}

// GetByUserID retrieves all reminders for a user ordered by next due date
func (r *ReminderRepository) GetByUserID(userID int64) ([]*models.Reminder, error) {
	var reminders []*models.Reminder
	err := r.db.
		Preload("Plant").
		Where("user_id = ?", userID).
		Order("next_reminder_date ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	return reminders, nil
}

// GetByPlantID retrieves a user's reminders for one plant
func (r *ReminderRepository) GetByPlantID(userID, plantID int64) ([]*models.Reminder, error) {
	var reminders []*models.Reminder
	err := r.db.
		Preload("Plant").
		Where("user_id = ? AND plant_id = ?", userID, plantID).
		Order("next_reminder_date ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list plant reminders: %w", err)
	}

	return reminders, nil
}

// GetDue retrieves reminders whose next date has passed
func (r *ReminderRepository) GetDue(now time.Time, limit int) ([]*models.Reminder, error) {
	var reminders []*models.Reminder
	err := r.db.
		Preload("Plant").
		Where("next_reminder_date <= ?", now).
		Order("next_reminder_date ASC").
		Limit(limit).
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get due reminders: %w", err)
	}

	return reminders, nil
}

// Update updates a reminder in the database
func (r *ReminderRepository) Update(reminder *models.Reminder) error {
	if reminder == nil {
		return errors.New("reminder cannot be nil")
	}

	if err := r.db.Save(reminder).Error; err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	return nil
}

// Delete deletes a reminder
func (r *ReminderRepository) Delete(reminderID int64) error {
	result := r.db.Delete(&models.Reminder{ID: reminderID})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}

	return nil
}
