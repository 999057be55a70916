package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ReminderType is the kind of care action a reminder schedules.
type ReminderType string

const (
	ReminderWatering    ReminderType = "WATERING"
	ReminderFertilizing ReminderType = "FERTILIZING"
	ReminderPruning     ReminderType = "PRUNING"
	ReminderHarvesting  ReminderType = "HARVESTING"
)

var reminderTypes = map[ReminderType]bool{
	ReminderWatering:    true,
	ReminderFertilizing: true,
	ReminderPruning:     true,
	ReminderHarvesting:  true,
}

func (t ReminderType) Valid() bool {
	return reminderTypes[t]
}

// Reminder schedules a recurring care action for one of a user's plants.
// FrequencyDays is the interval between occurrences; NextReminderDate is
// advanced by the scheduler each time the reminder fires.
type Reminder struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           int64          `gorm:"not null;index" json:"user_id"`
	PlantID          int64          `gorm:"not null;index" json:"plant_id"`
	ReminderType     ReminderType   `gorm:"type:varchar(20);not null" json:"reminder_type"`
	NextReminderDate time.Time      `gorm:"index" json:"next_reminder_date"`
	FrequencyDays    int            `gorm:"not null" json:"frequency_days"`
	CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Plant Plant `gorm:"foreignKey:PlantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	return r.Validate()
}

func (r *Reminder) Validate() error {
	if r.UserID == 0 {
		return errors.New("reminder must belong to a user")
	}

	if r.PlantID == 0 {
		return errors.New("reminder must reference a plant")
	}

	if !r.ReminderType.Valid() {
		return fmt.Errorf("invalid reminder type: %s", r.ReminderType)
	}

	if r.FrequencyDays <= 0 {
		return errors.New("frequency must be a positive number of days")
	}

	return nil
}

// IsDue reports whether the reminder should fire at the given time.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.NextReminderDate.IsZero() && !r.NextReminderDate.After(now)
}

// Advance moves the next occurrence forward by the configured frequency.
func (r *Reminder) Advance(now time.Time) {
	next := r.NextReminderDate
	if next.IsZero() {
		next = now
	}
	for !next.After(now) {
		next = next.AddDate(0, 0, r.FrequencyDays)
	}
	r.NextReminderDate = next
}

func (r *Reminder) TableName() string {
	return "reminders"
}
