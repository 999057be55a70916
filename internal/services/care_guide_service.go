package services

import (
	"errors"
	"fmt"
	"log/slog"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
)

var (
	ErrCareGuideNotFound = errors.New("care guide not found")
	ErrInvalidCareLevel  = errors.New("invalid care level")
)

// CareGuideService handles the public plant-care content library
type CareGuideService struct {
	guideRepo repositories.CareGuideRepositoryInterface
	logger    *slog.Logger
}

// NewCareGuideService creates a new care guide service
func NewCareGuideService(guideRepo repositories.CareGuideRepositoryInterface, logger *slog.Logger) CareGuideServiceInterface {
	return &CareGuideService{
		guideRepo: guideRepo,
		logger:    logger,
	}
}

// CreateCareGuide publishes a new care guide
func (s *CareGuideService) CreateCareGuide(req *dto.CreateCareGuideRequest) (*dto.CareGuideResponse, error) {
	level := models.CareLevel(req.CareLevel)
	if !level.Valid() {
		return nil, ErrInvalidCareLevel
	}

	guide := &models.CareGuide{
		PlantName:        req.PlantName,
		InterestingStory: req.InterestingStory,
		CareLevel:        level,
		PlantDescription: req.PlantDescription,
		ImageURL:         req.ImageURL,
	}

	if err := s.guideRepo.Create(guide); err != nil {
		return nil, fmt.Errorf("failed to create care guide: %w", err)
	}

	s.logger.Info("care guide published",
		"guide_id", guide.ID,
		"plant_name", guide.PlantName,
		"care_level", guide.CareLevel)

	resp := toCareGuideResponse(guide)
	return &resp, nil
}

// GetCareGuide returns a single care guide
func (s *CareGuideService) GetCareGuide(guideID int64) (*dto.CareGuideResponse, error) {
	guide, err := s.guideRepo.GetByID(guideID)
	if err != nil {
		if errors.Is(err, repositories.ErrCareGuideNotFound) {
			return nil, ErrCareGuideNotFound
		}
		return nil, fmt.Errorf("failed to get care guide: %w", err)
	}

	resp := toCareGuideResponse(guide)
	return &resp, nil
}

// ListCareGuides returns a paginated listing, optionally filtered by plant
// name.
func (s *CareGuideService) ListCareGuides(query string, params dto.PaginationParams) (*dto.ListCareGuidesResponse, error) {
	params.Normalize()

	var (
		guides []*models.CareGuide
		total  int64
		err    error
	)

	if query != "" {
		guides, total, err = s.guideRepo.SearchByPlantName(query, params.Offset(), params.Size)
	} else {
		guides, total, err = s.guideRepo.List(params.Offset(), params.Size)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list care guides: %w", err)
	}

	responses := make([]dto.CareGuideResponse, 0, len(guides))
	for _, guide := range guides {
		responses = append(responses, toCareGuideResponse(guide))
	}

	return &dto.ListCareGuidesResponse{
		CareGuides: responses,
		Pagination: dto.NewPaginationInfo(params, total),
	}, nil
}

// UpdateCareGuide applies the provided changes to a care guide
func (s *CareGuideService) UpdateCareGuide(guideID int64, req *dto.UpdateCareGuideRequest) (*dto.CareGuideResponse, error) {
	guide, err := s.guideRepo.GetByID(guideID)
	if err != nil {
		if errors.Is(err, repositories.ErrCareGuideNotFound) {
			return nil, ErrCareGuideNotFound
		}
		return nil, fmt.Errorf("failed to get care guide: %w", err)
	}

	if req.PlantName != nil {
		guide.PlantName = *req.PlantName
	}
	if req.InterestingStory != nil {
		guide.InterestingStory = *req.InterestingStory
	}
	if req.CareLevel != nil {
		level := models.CareLevel(*req.CareLevel)
		if !level.Valid() {
			return nil, ErrInvalidCareLevel
		}
		guide.CareLevel = level
	}
	if req.PlantDescription != nil {
		guide.PlantDescription = *req.PlantDescription
	}
	if req.ImageURL != nil {
		guide.ImageURL = *req.ImageURL
	}

	if err := guide.Validate(); err != nil {
		return nil, err
	}

	if err := s.guideRepo.Update(guide); err != nil {
		return nil, fmt.Errorf("failed to update care guide: %w", err)
	}

	resp := toCareGuideResponse(guide)
	return &resp, nil
}

// DeleteCareGuide removes a care guide from the library
func (s *CareGuideService) DeleteCareGuide(guideID int64) error {
	if _, err := s.guideRepo.GetByID(guideID); err != nil {
		if errors.Is(err, repositories.ErrCareGuideNotFound) {
			return ErrCareGuideNotFound
		}
		return fmt.Errorf("failed to get care guide: %w", err)
	}

	if err := s.guideRepo.Delete(guideID); err != nil {
		return fmt.Errorf("failed to delete care guide: %w", err)
	}

	return nil
}

func toCareGuideResponse(guide *models.CareGuide) dto.CareGuideResponse {
	return dto.CareGuideResponse{
		ID:               guide.ID,
		PlantName:        guide.PlantName,
		InterestingStory: guide.InterestingStory,
		CareLevel:        string(guide.CareLevel),
		PlantDescription: guide.PlantDescription,
		ImageURL:         guide.ImageURL,
		CreatedAt:        guide.CreatedAt,
		UpdatedAt:        guide.UpdatedAt,
	}
}
