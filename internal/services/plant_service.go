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
	ErrPlantNotFound = errors.New("plant not found")
	ErrPlantNotOwned = errors.New("plant belongs to another user")
)

// PlantService handles tracked-plant business logic. Every operation is
// scoped to the owning user; a plant owned by someone else reads as not
// owned, never as missing.
type PlantService struct {
	plantRepo repositories.PlantRepositoryInterface
	logger    *slog.Logger
}

// NewPlantService creates a new plant service
func NewPlantService(plantRepo repositories.PlantRepositoryInterface, logger *slog.Logger) PlantServiceInterface {
	return &PlantService{
		plantRepo: plantRepo,
		logger:    logger,
	}
}

// CreatePlant registers a new tracked plant for the user
func (s *PlantService) CreatePlant(userID int64, req *dto.CreatePlantRequest) (*dto.PlantResponse, error) {
	plant := &models.Plant{
		UserID:            userID,
		PlantName:         req.PlantName,
		Type:              req.Type,
		PlantStage:        models.PlantStage(req.PlantStage),
		GrowthTime:        req.GrowthTime,
		OptimalConditions: req.OptimalConditions,
		CommonDiseases:    req.CommonDiseases,
	}

	if err := s.plantRepo.Create(plant); err != nil {
		return nil, fmt.Errorf("failed to create plant: %w", err)
	}

	s.logger.Info("plant created",
		"plant_id", plant.ID,
		"user_id", userID,
		"stage", plant.PlantStage)

	resp := toPlantResponse(plant)
	return &resp, nil
}

// GetPlant returns one of the user's plants
func (s *PlantService) GetPlant(userID, plantID int64) (*dto.PlantResponse, error) {
	plant, err := s.getOwnedPlant(userID, plantID)
	if err != nil {
		return nil, err
	}

	resp := toPlantResponse(plant)
	return &resp, nil
}

// ListPlants returns a paginated listing of the user's plants
func (s *PlantService) ListPlants(userID int64, params dto.PaginationParams) (*dto.ListPlantsResponse, error) {
	params.Normalize()

	plants, total, err := s.plantRepo.GetByUserID(userID, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	responses := make([]dto.PlantResponse, 0, len(plants))
	for _, plant := range plants {
		responses = append(responses, toPlantResponse(plant))
	}

	return &dto.ListPlantsResponse{
		Plants:     responses,
		Pagination: dto.NewPaginationInfo(params, total),
	}, nil
}

// SearchPlants returns the user's plants matching the given filters
func (s *PlantService) SearchPlants(userID int64, filters models.PlantSearchFilters, params dto.PaginationParams) (*dto.ListPlantsResponse, error) {
	params.Normalize()

	plants, total, err := s.plantRepo.Search(userID, filters, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to search plants: %w", err)
	}

	responses := make([]dto.PlantResponse, 0, len(plants))
	for _, plant := range plants {
		responses = append(responses, toPlantResponse(plant))
	}

	return &dto.ListPlantsResponse{
		Plants:     responses,
		Pagination: dto.NewPaginationInfo(params, total),
	}, nil
}

// UpdatePlant applies the provided changes to one of the user's plants
func (s *PlantService) UpdatePlant(userID, plantID int64, req *dto.UpdatePlantRequest) (*dto.PlantResponse, error) {
	if _, err := s.getOwnedPlant(userID, plantID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.PlantName != nil {
		fields["plant_name"] = *req.PlantName
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.PlantStage != nil {
		stage := models.PlantStage(*req.PlantStage)
		if !stage.Valid() {
			return nil, fmt.Errorf("invalid plant stage: %s", *req.PlantStage)
		}
		fields["plant_stage"] = stage
	}
	if req.GrowthTime != nil {
		fields["growth_time"] = *req.GrowthTime
	}
	if req.OptimalConditions != nil {
		fields["optimal_conditions"] = *req.OptimalConditions
	}
	if req.CommonDiseases != nil {
		fields["common_diseases"] = *req.CommonDiseases
	}

	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	if err := s.plantRepo.UpdateFields(plantID, fields); err != nil {
		return nil, fmt.Errorf("failed to update plant: %w", err)
	}

	plant, err := s.plantRepo.GetByID(plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload plant: %w", err)
	}

	resp := toPlantResponse(plant)
	return &resp, nil
}

// DeletePlant soft deletes one of the user's plants
func (s *PlantService) DeletePlant(userID, plantID int64) error {
	if _, err := s.getOwnedPlant(userID, plantID); err != nil {
		return err
	}

	if err := s.plantRepo.Delete(plantID); err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}

	s.logger.Info("plant deleted", "plant_id", plantID, "user_id", userID)

	return nil
}

func (s *PlantService) getOwnedPlant(userID, plantID int64) (*models.Plant, error) {
	plant, err := s.plantRepo.GetByID(plantID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlantNotFound) {
			return nil, ErrPlantNotFound
		}
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}

	if plant.UserID != userID {
		return nil, ErrPlantNotOwned
	}

	return plant, nil
}

func toPlantResponse(plant *models.Plant) dto.PlantResponse {
	return dto.PlantResponse{
		ID:                plant.ID,
		PlantName:         plant.PlantName,
		Type:              plant.Type,
		PlantStage:        string(plant.PlantStage),
		GrowthTime:        plant.GrowthTime,
		OptimalConditions: plant.OptimalConditions,
		CommonDiseases:    plant.CommonDiseases,
		CreatedAt:         plant.CreatedAt,
		UpdatedAt:         plant.UpdatedAt,
	}
}
