package services

import (
	"errors"
	"fmt"
	"log/slog"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
)

var ErrDiseaseNotFound = errors.New("disease not found")

// DiseaseService handles the disease reference library. Entries are created
// by farmers and admins and readable by everyone signed in.
type DiseaseService struct {
	diseaseRepo repositories.DiseaseRepositoryInterface
	logger      *slog.Logger
}

// NewDiseaseService creates a new disease service
func NewDiseaseService(diseaseRepo repositories.DiseaseRepositoryInterface, logger *slog.Logger) DiseaseServiceInterface {
	return &DiseaseService{
		diseaseRepo: diseaseRepo,
		logger:      logger,
	}
}

// CreateDisease records a new disease entry
func (s *DiseaseService) CreateDisease(userID int64, req *dto.CreateDiseaseRequest) (*dto.DiseaseResponse, error) {
	disease := &models.Disease{
		UserID:            userID,
		DiseaseName:       req.DiseaseName,
		AffectedParts:     req.AffectedParts,
		Symptoms:          req.Symptoms,
		Treatment:         req.Treatment,
		RecommendedAction: req.RecommendedAction,
	}

	if err := s.diseaseRepo.Create(disease); err != nil {
		return nil, fmt.Errorf("failed to create disease: %w", err)
	}

	s.logger.Info("disease recorded",
		"disease_id", disease.ID,
		"name", disease.DiseaseName,
		"user_id", userID)

	resp := toDiseaseResponse(disease)
	return &resp, nil
}

// GetDisease returns a single disease entry
func (s *DiseaseService) GetDisease(diseaseID int64) (*dto.DiseaseResponse, error) {
	disease, err := s.diseaseRepo.GetByID(diseaseID)
	if err != nil {
		if errors.Is(err, repositories.ErrDiseaseNotFound) {
			return nil, ErrDiseaseNotFound
		}
		return nil, fmt.Errorf("failed to get disease: %w", err)
	}

	resp := toDiseaseResponse(disease)
	return &resp, nil
}

// ListDiseases returns a paginated listing, optionally filtered by name
func (s *DiseaseService) ListDiseases(query string, params dto.PaginationParams) (*dto.ListDiseasesResponse, error) {
	params.Normalize()

	var (
		diseases []*models.Disease
		total    int64
		err      error
	)

	if query != "" {
		diseases, total, err = s.diseaseRepo.SearchByName(query, params.Offset(), params.Size)
	} else {
		diseases, total, err = s.diseaseRepo.List(params.Offset(), params.Size)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list diseases: %w", err)
	}

	responses := make([]dto.DiseaseResponse, 0, len(diseases))
	for _, disease := range diseases {
		responses = append(responses, toDiseaseResponse(disease))
	}

	return &dto.ListDiseasesResponse{
		Diseases:   responses,
		Pagination: dto.NewPaginationInfo(params, total),
	}, nil
}

// UpdateDisease applies the provided changes to a disease entry
func (s *DiseaseService) UpdateDisease(diseaseID int64, req *dto.UpdateDiseaseRequest) (*dto.DiseaseResponse, error) {
	disease, err := s.diseaseRepo.GetByID(diseaseID)
	if err != nil {
		if errors.Is(err, repositories.ErrDiseaseNotFound) {
			return nil, ErrDiseaseNotFound
		}
		return nil, fmt.Errorf("failed to get disease: %w", err)
	}

	if req.DiseaseName != nil {
		disease.DiseaseName = *req.DiseaseName
	}
	if req.AffectedParts != nil {
		disease.AffectedParts = *req.AffectedParts
	}
	if req.Symptoms != nil {
		disease.Symptoms = *req.Symptoms
	}
	if req.Treatment != nil {
		disease.Treatment = *req.Treatment
	}
	if req.RecommendedAction != nil {
		disease.RecommendedAction = *req.RecommendedAction
	}

	if err := disease.Validate(); err != nil {
		return nil, err
	}

	if err := s.diseaseRepo.Update(disease); err != nil {
		return nil, fmt.Errorf("failed to update disease: %w", err)
	}

	resp := toDiseaseResponse(disease)
	return &resp, nil
}

// DeleteDisease removes a disease entry
func (s *DiseaseService) DeleteDisease(diseaseID int64) error {
	if _, err := s.diseaseRepo.GetByID(diseaseID); err != nil {
		if errors.Is(err, repositories.ErrDiseaseNotFound) {
			return ErrDiseaseNotFound
		}
		return fmt.Errorf("failed to get disease: %w", err)
	}

	if err := s.diseaseRepo.Delete(diseaseID); err != nil {
		return fmt.Errorf("failed to delete disease: %w", err)
	}

	return nil
}

func toDiseaseResponse(disease *models.Disease) dto.DiseaseResponse {
	return dto.DiseaseResponse{
		ID:                disease.ID,
		DiseaseName:       disease.DiseaseName,
		AffectedParts:     disease.AffectedParts,
		Symptoms:          disease.Symptoms,
		Treatment:         disease.Treatment,
		RecommendedAction: disease.RecommendedAction,
		CreatedAt:         disease.CreatedAt,
		UpdatedAt:         disease.UpdatedAt,
	}
}
