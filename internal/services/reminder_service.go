package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
)

var (
	ErrReminderNotFound    = errors.New("reminder not found")
	ErrReminderNotOwned    = errors.New("reminder belongs to another user")
	ErrInvalidReminderType = errors.New("invalid reminder type")
)

// ReminderService handles care reminder scheduling. Firing happens through
// ProcessDueReminders, driven by the scheduler.
type ReminderService struct {
	reminderRepo repositories.ReminderRepositoryInterface
	plantRepo    repositories.PlantRepositoryInterface
	notification NotificationServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewReminderService creates a new reminder service
func NewReminderService(
	reminderRepo repositories.ReminderRepositoryInterface,
	plantRepo repositories.PlantRepositoryInterface,
	notification NotificationServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReminderServiceInterface {
	return &ReminderService{
		reminderRepo: reminderRepo,
		plantRepo:    plantRepo,
		notification: notification,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateReminder schedules a recurring care reminder for one of the user's
// plants.
func (s *ReminderService) CreateReminder(userID int64, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	reminderType := models.ReminderType(req.ReminderType)
	if !reminderType.Valid() {
		return nil, ErrInvalidReminderType
	}

	plant, err := s.plantRepo.GetByID(req.PlantID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlantNotFound) {
			return nil, ErrPlantNotFound
		}
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}

	if plant.UserID != userID {
		return nil, ErrPlantNotOwned
	}

	reminder := &models.Reminder{
		UserID:           userID,
		PlantID:          req.PlantID,
		ReminderType:     reminderType,
		NextReminderDate: req.NextReminderDate,
		FrequencyDays:    req.FrequencyDays,
	}

	if err := s.reminderRepo.Create(reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	s.logger.Info("reminder scheduled",
		"reminder_id", reminder.ID,
		"plant_id", req.PlantID,
		"type", reminderType,
		"frequency_days", req.FrequencyDays)

	resp := toReminderResponse(reminder, plant.PlantName)
	return &resp, nil
}

// ListReminders returns all of the user's reminders
func (s *ReminderService) ListReminders(userID int64) (*dto.ListRemindersResponse, error) {
	reminders, err := s.reminderRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	responses := make([]dto.ReminderResponse, 0, len(reminders))
	for _, reminder := range reminders {
		responses = append(responses, toReminderResponse(reminder, reminder.Plant.PlantName))
	}

	return &dto.ListRemindersResponse{Reminders: responses}, nil
}

// ListPlantReminders returns the user's reminders for one plant
func (s *ReminderService) ListPlantReminders(userID, plantID int64) (*dto.ListRemindersResponse, error) {
	reminders, err := s.reminderRepo.GetByPlantID(userID, plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plant reminders: %w", err)
	}

	responses := make([]dto.ReminderResponse, 0, len(reminders))
	for _, reminder := range reminders {
		responses = append(responses, toReminderResponse(reminder, reminder.Plant.PlantName))
	}

	return &dto.ListRemindersResponse{Reminders: responses}, nil
}

// UpdateReminder applies the provided changes to one of the user's reminders
func (s *ReminderService) UpdateReminder(userID, reminderID int64, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	reminder, err := s.getOwnedReminder(userID, reminderID)
	if err != nil {
		return nil, err
	}

	if req.ReminderType != nil {
		reminderType := models.ReminderType(*req.ReminderType)
		if !reminderType.Valid() {
			return nil, ErrInvalidReminderType
		}
		reminder.ReminderType = reminderType
	}
	if req.NextReminderDate != nil {
		reminder.NextReminderDate = *req.NextReminderDate
	}
	if req.FrequencyDays != nil {
		reminder.FrequencyDays = *req.FrequencyDays
	}

	if err := reminder.Validate(); err != nil {
		return nil, err
	}

	if err := s.reminderRepo.Update(reminder); err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	resp := toReminderResponse(reminder, reminder.Plant.PlantName)
	return &resp, nil
}

// DeleteReminder removes one of the user's reminders
func (s *ReminderService) DeleteReminder(userID, reminderID int64) error {
	if _, err := s.getOwnedReminder(userID, reminderID); err != nil {
		return err
	}

	if err := s.reminderRepo.Delete(reminderID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	return nil
}

// ProcessDueReminders fires every reminder whose next date has passed:
// deliver the push, then advance the schedule so the reminder fires again
// after its frequency. Returns the number of reminders fired.
func (s *ReminderService) ProcessDueReminders(now time.Time) (int, error) {
	const batchSize = 100

	due, err := s.reminderRepo.GetDue(now, batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to load due reminders: %w", err)
	}

	fired := 0
	for _, reminder := range due {
		s.fireReminder(reminder, now)
		s.metrics.IncrementCounter("reminder_fired", nil)
		fired++
	}

	return fired, nil
}

func (s *ReminderService) fireReminder(reminder *models.Reminder, now time.Time) {
	title := reminderTitle(reminder.ReminderType)
	body := fmt.Sprintf("Time to take care of %s.", reminder.Plant.PlantName)

	if s.notification != nil {
		_, err := s.notification.SendToUser(context.Background(), &dto.SendNotificationRequest{
			UserID: reminder.UserID,
			Title:  title,
			Body:   body,
			Data: map[string]string{
				"reminder_id": fmt.Sprintf("%d", reminder.ID),
				"plant_id":    fmt.Sprintf("%d", reminder.PlantID),
				"type":        string(reminder.ReminderType),
			},
		})
		if err != nil && !errors.Is(err, ErrNoRegisteredDevices) {
			s.logger.Warn("failed to deliver reminder notification",
				"error", err,
				"reminder_id", reminder.ID,
				"user_id", reminder.UserID)
		}
	}

	// Advance regardless of delivery; a reminder never fires twice for the
	// same occurrence.
	reminder.Advance(now)
	if err := s.reminderRepo.Update(reminder); err != nil {
		s.logger.Error("failed to advance reminder",
			"error", err,
			"reminder_id", reminder.ID)
		return
	}

	s.logger.Info("reminder fired",
		"reminder_id", reminder.ID,
		"user_id", reminder.UserID,
		"next", reminder.NextReminderDate)
}

func (s *ReminderService) getOwnedReminder(userID, reminderID int64) (*models.Reminder, error) {
	reminder, err := s.reminderRepo.GetByID(reminderID)
	if err != nil {
		if errors.Is(err, repositories.ErrReminderNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	if reminder.UserID != userID {
		return nil, ErrReminderNotOwned
	}

	return reminder, nil
}

func reminderTitle(t models.ReminderType) string {
	switch t {
	case models.ReminderWatering:
		return "Watering reminder"
	case models.ReminderFertilizing:
		return "Fertilizing reminder"
	case models.ReminderPruning:
		return "Pruning reminder"
	case models.ReminderHarvesting:
		return "Harvesting reminder"
	default:
		return "Plant care reminder"
	}
}

func toReminderResponse(reminder *models.Reminder, plantName string) dto.ReminderResponse {
	return dto.ReminderResponse{
		ID:               reminder.ID,
		PlantID:          reminder.PlantID,
		PlantName:        plantName,
		ReminderType:     string(reminder.ReminderType),
		NextReminderDate: reminder.NextReminderDate,
		FrequencyDays:    reminder.FrequencyDays,
		CreatedAt:        reminder.CreatedAt,
		UpdatedAt:        reminder.UpdatedAt,
	}
}
