package dto

import "time"

// CreateCareGuideRequest contains data for publishing a care guide
type CreateCareGuideRequest struct {
	PlantName        string `json:"plantName" validate:"required,min=1,max=200"`
	InterestingStory string `json:"interestingStory" validate:"omitempty,max=5000"`
	CareLevel        string `json:"careLevel" validate:"required,care_level"`
	PlantDescription string `json:"plantDescription" validate:"omitempty,max=5000"`
	ImageURL         string `json:"imageUrl" validate:"omitempty,url"`
}

// UpdateCareGuideRequest contains updatable care guide attributes
type UpdateCareGuideRequest struct {
	PlantName        *string `json:"plantName" validate:"omitempty,min=1,max=200"`
	InterestingStory *string `json:"interestingStory" validate:"omitempty,max=5000"`
	CareLevel        *string `json:"careLevel" validate:"omitempty,care_level"`
	PlantDescription *string `json:"plantDescription" validate:"omitempty,max=5000"`
	ImageURL         *string `json:"imageUrl" validate:"omitempty,url"`
}

// CareGuideResponse represents a published care guide
type CareGuideResponse struct {
	ID               int64     `json:"id"`
	PlantName        string    `json:"plantName"`
	InterestingStory string    `json:"interestingStory,omitempty"`
	CareLevel        string    `json:"careLevel"`
	PlantDescription string    `json:"plantDescription,omitempty"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ListCareGuidesResponse represents a paginated care guide listing
type ListCareGuidesResponse struct {
	CareGuides []CareGuideResponse `json:"careGuides"`
	Pagination PaginationInfo      `json:"pagination"`
}
