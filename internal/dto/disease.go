package dto

import "time"

// CreateDiseaseRequest contains data for recording a disease entry
type CreateDiseaseRequest struct {
	DiseaseName       string `json:"diseaseName" validate:"required,min=1,max=200"`
	AffectedParts     string `json:"affectedParts" validate:"omitempty,max=500"`
	Symptoms          string `json:"symptoms" validate:"omitempty,max=2000"`
	Treatment         string `json:"treatment" validate:"omitempty,max=2000"`
	RecommendedAction string `json:"recommendedAction" validate:"omitempty,max=2000"`
}

// UpdateDiseaseRequest contains updatable disease attributes
type UpdateDiseaseRequest struct {
	DiseaseName       *string `json:"diseaseName" validate:"omitempty,min=1,max=200"`
	AffectedParts     *string `json:"affectedParts" validate:"omitempty,max=500"`
	Symptoms          *string `json:"symptoms" validate:"omitempty,max=2000"`
	Treatment         *string `json:"treatment" validate:"omitempty,max=2000"`
	RecommendedAction *string `json:"recommendedAction" validate:"omitempty,max=2000"`
}

// DiseaseResponse represents a recorded disease entry
type DiseaseResponse struct {
	ID                int64     `json:"id"`
	DiseaseName       string    `json:"diseaseName"`
	AffectedParts     string    `json:"affectedParts,omitempty"`
	Symptoms          string    `json:"symptoms,omitempty"`
	Treatment         string    `json:"treatment,omitempty"`
	RecommendedAction string    `json:"recommendedAction,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ListDiseasesResponse represents a paginated disease listing
type ListDiseasesResponse struct {
	Diseases   []DiseaseResponse `json:"diseases"`
	Pagination PaginationInfo    `json:"pagination"`
}
