package dto

import "time"

// CreatePlantRequest contains data for registering a tracked plant
type CreatePlantRequest struct {
	PlantName         string `json:"plantName" validate:"required,min=1,max=100"`
	Type              string `json:"type" validate:"required,min=1,max=100"`
	PlantStage        string `json:"plantStage" validate:"required,plant_stage"`
	GrowthTime        int    `json:"growthTime" validate:"omitempty,min=0"`
	OptimalConditions string `json:"optimalConditions" validate:"omitempty,max=1000"`
	CommonDiseases    string `json:"commonDiseases" validate:"omitempty,max=1000"`
}

// UpdatePlantRequest contains updatable plant attributes
type UpdatePlantRequest struct {
	PlantName         *string `json:"plantName" validate:"omitempty,min=1,max=100"`
	Type              *string `json:"type" validate:"omitempty,min=1,max=100"`
	PlantStage        *string `json:"plantStage" validate:"omitempty,plant_stage"`
	GrowthTime        *int    `json:"growthTime" validate:"omitempty,min=0"`
	OptimalConditions *string `json:"optimalConditions" validate:"omitempty,max=1000"`
	CommonDiseases    *string `json:"commonDiseases" validate:"omitempty,max=1000"`
}

// PlantResponse represents a tracked plant
type PlantResponse struct {
	ID                int64     `json:"id"`
	PlantName         string    `json:"plantName"`
	Type              string    `json:"type"`
	PlantStage        string    `json:"plantStage"`
	GrowthTime        int       `json:"growthTime"`
	OptimalConditions string    `json:"optimalConditions,omitempty"`
	CommonDiseases    string    `json:"commonDiseases,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ListPlantsResponse represents a paginated plant listing
type ListPlantsResponse struct {
	Plants     []PlantResponse `json:"plants"`
	Pagination PaginationInfo  `json:"pagination"`
}
