package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Disease is reference data describing a plant disease and its treatment.
type Disease struct {
	ID                int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            int64          `gorm:"not null;index" json:"user_id"`
	DiseaseName       string         `gorm:"type:varchar(50);not null" json:"disease_name"`
	AffectedParts     string         `gorm:"type:text" json:"affected_parts,omitempty"`
	Symptoms          string         `gorm:"type:text" json:"symptoms,omitempty"`
	Treatment         string         `gorm:"type:text" json:"treatment,omitempty"`
	RecommendedAction string         `gorm:"type:text" json:"recommended_action,omitempty"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (d *Disease) BeforeCreate(tx *gorm.DB) error {
	return d.Validate()
}

func (d *Disease) Validate() error {
	if d.DiseaseName == "" {
		return errors.New("disease name is required")
	}

	if d.UserID == 0 {
		return errors.New("disease record must belong to a user")
	}

	return nil
}

func (d *Disease) TableName() string {
	return "diseases"
}
