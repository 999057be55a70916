package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// CareLevel grades how demanding a plant is to look after.
type CareLevel string

const (
	CareEasy     CareLevel = "EASY"
	CareModerate CareLevel = "MODERATE"
	CareHard     CareLevel = "HARD"
)

func (l CareLevel) Valid() bool {
	switch l {
	case CareEasy, CareModerate, CareHard:
		return true
	}
	return false
}

// CareGuide is awareness/reference content shown to users: a short story
// about the plant, a care difficulty grade, and a description.
type CareGuide struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	PlantName        string         `gorm:"type:varchar(200);not null;index" json:"plant_name"`
	InterestingStory string         `gorm:"type:text" json:"interesting_story,omitempty"`
	CareLevel        CareLevel      `gorm:"type:varchar(20);not null" json:"care_level"`
	PlantDescription string         `gorm:"type:text" json:"plant_description,omitempty"`
	ImageURL         string         `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (g *CareGuide) BeforeCreate(tx *gorm.DB) error {
	return g.Validate()
}

func (g *CareGuide) Validate() error {
	if g.PlantName == "" {
		return errors.New("plant name is required")
	}

	if !g.CareLevel.Valid() {
		return fmt.Errorf("invalid care level: %s", g.CareLevel)
	}

	if g.InterestingStory == "" && g.PlantDescription == "" {
		return errors.New("care guide needs a story or a description")
	}

	return nil
}

func (g *CareGuide) TableName() string {
	return "care_guides"
}
