package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// PlantStage is the growth stage of a tracked plant.
type PlantStage string

const (
	StageSeed       PlantStage = "SEED"
	StageSeedling   PlantStage = "SEEDLING"
	StageVegetative PlantStage = "VEGETATIVE"
	StageFlowering  PlantStage = "FLOWERING"
	StageHarvest    PlantStage = "HARVEST"
)

var plantStages = map[PlantStage]bool{
	StageSeed:       true,
	StageSeedling:   true,
	StageVegetative: true,
	StageFlowering:  true,
	StageHarvest:    true,
}

func (s PlantStage) Valid() bool {
	return plantStages[s]
}

// Plant is a plant tracked by a user: what it is, how far along it is, and
// the care knowledge attached to it.
type Plant struct {
	ID                int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            int64          `gorm:"not null;index" json:"user_id"`
	PlantName         string         `gorm:"type:varchar(50);not null" json:"plant_name"`
	Type              string         `gorm:"type:varchar(50)" json:"type,omitempty"`
	PlantStage        PlantStage     `gorm:"type:varchar(20);not null" json:"plant_stage"`
	GrowthTime        int            `json:"growth_time,omitempty"`
	OptimalConditions string         `gorm:"type:text" json:"optimal_conditions,omitempty"`
	CommonDiseases    string         `gorm:"type:text" json:"common_diseases,omitempty"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Plant) BeforeCreate(tx *gorm.DB) error {
	return p.Validate()
}

func (p *Plant) Validate() error {
	if p.PlantName == "" {
		return errors.New("plant name is required")
	}

	if !p.PlantStage.Valid() {
		return fmt.Errorf("invalid plant stage: %s", p.PlantStage)
	}

	if p.GrowthTime < 0 {
		return errors.New("growth time must be positive")
	}

	if p.UserID == 0 {
		return errors.New("plant must belong to a user")
	}

	return nil
}

func (p *Plant) TableName() string {
	return "plants"
}

// PlantSearchFilters narrows a user's plant listing. Zero values mean the
// filter is not applied.
type PlantSearchFilters struct {
	Query string
	Type  string
	Stage PlantStage
}
