package dto

import "time"

// CreateReminderRequest contains data for scheduling a care reminder
type CreateReminderRequest struct {
	PlantID          int64     `json:"plantId" validate:"required,min=1"`
	ReminderType     string    `json:"reminderType" validate:"required,reminder_type"`
	NextReminderDate time.Time `json:"nextReminderDate" validate:"required"`
	FrequencyDays    int       `json:"frequencyDays" validate:"required,min=1,max=365"`
}

// UpdateReminderRequest contains updatable reminder attributes
type UpdateReminderRequest struct {
	ReminderType     *string    `json:"reminderType" validate:"omitempty,reminder_type"`
	NextReminderDate *time.Time `json:"nextReminderDate"`
	FrequencyDays    *int       `json:"frequencyDays" validate:"omitempty,min=1,max=365"`
}

// ReminderResponse represents a scheduled care reminder
type ReminderResponse struct {
	ID               int64     `json:"id"`
	PlantID          int64     `json:"plantId"`
	PlantName        string    `json:"plantName,omitempty"`
	ReminderType     string    `json:"reminderType"`
	NextReminderDate time.Time `json:"nextReminderDate"`
	FrequencyDays    int       `json:"frequencyDays"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ListRemindersResponse represents a reminder listing
type ListRemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}
