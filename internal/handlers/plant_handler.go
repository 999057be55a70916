package handlers

import (
	"net/http"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/models"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// PlantHandler handles tracked-plant endpoints
type PlantHandler struct {
	plantService services.PlantServiceInterface
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(plantService services.PlantServiceInterface) *PlantHandler {
	return &PlantHandler{plantService: plantService}
}

// CreatePlant registers a new tracked plant for the authenticated user
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreatePlantRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	plant, err := h.plantService.CreatePlant(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, plant)
}

// GetPlant returns one of the user's plants
func (h *PlantHandler) GetPlant(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	plantID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid plant ID"))
	}

	plant, err := h.plantService.GetPlant(userID, plantID)
	if err != nil {
		switch err {
		case services.ErrPlantNotFound:
			return SendError(c, errors.PlantNotFound)
		case services.ErrPlantNotOwned:
			return SendError(c, errors.PlantNotOwned)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, plant)
}

// ListPlants returns the user's plants, paginated
func (h *PlantHandler) ListPlants(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	filters := models.PlantSearchFilters{
		Query: c.QueryParam("q"),
		Type:  c.QueryParam("type"),
		Stage: models.PlantStage(c.QueryParam("stage")),
	}
	if filters.Stage != "" && !filters.Stage.Valid() {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid plant stage filter"))
	}

	var plants *dto.ListPlantsResponse
	if filters.Query != "" || filters.Type != "" || filters.Stage != "" {
		plants, err = h.plantService.SearchPlants(userID, filters, params)
	} else {
		plants, err = h.plantService.ListPlants(userID, params)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, plants)
}

// UpdatePlant updates one of the user's plants
func (h *PlantHandler) UpdatePlant(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	plantID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid plant ID"))
	}

	var req dto.UpdatePlantRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	plant, err := h.plantService.UpdatePlant(userID, plantID, &req)
	if err != nil {
		switch err {
		case services.ErrPlantNotFound:
			return SendError(c, errors.PlantNotFound)
		case services.ErrPlantNotOwned:
			return SendError(c, errors.PlantNotOwned)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, plant)
}

// DeletePlant removes one of the user's plants
func (h *PlantHandler) DeletePlant(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	plantID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid plant ID"))
	}

	if err := h.plantService.DeletePlant(userID, plantID); err != nil {
		switch err {
		case services.ErrPlantNotFound:
			return SendError(c, errors.PlantNotFound)
		case services.ErrPlantNotOwned:
			return SendError(c, errors.PlantNotOwned)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Plant deleted successfully",
	})
}
