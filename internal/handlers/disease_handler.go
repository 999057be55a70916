package handlers

import (
	"net/http"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// DiseaseHandler handles disease reference data endpoints
type DiseaseHandler struct {
	diseaseService services.DiseaseServiceInterface
}

// NewDiseaseHandler creates a new disease handler
func NewDiseaseHandler(diseaseService services.DiseaseServiceInterface) *DiseaseHandler {
	return &DiseaseHandler{diseaseService: diseaseService}
}

// CreateDisease records a new disease entry
func (h *DiseaseHandler) CreateDisease(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateDiseaseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	disease, err := h.diseaseService.CreateDisease(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, disease)
}

// GetDisease returns a single disease entry
func (h *DiseaseHandler) GetDisease(c echo.Context) error {
	diseaseID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid disease ID"))
	}

	disease, err := h.diseaseService.GetDisease(diseaseID)
	if err != nil {
		if err == services.ErrDiseaseNotFound {
			return SendError(c, errors.DiseaseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, disease)
}

// ListDiseases returns disease entries, optionally filtered by name or symptom
func (h *DiseaseHandler) ListDiseases(c echo.Context) error {
	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	diseases, err := h.diseaseService.ListDiseases(c.QueryParam("q"), params)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, diseases)
}

// UpdateDisease updates a disease entry
func (h *DiseaseHandler) UpdateDisease(c echo.Context) error {
	diseaseID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid disease ID"))
	}

	var req dto.UpdateDiseaseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	disease, err := h.diseaseService.UpdateDisease(diseaseID, &req)
	if err != nil {
		if err == services.ErrDiseaseNotFound {
			return SendError(c, errors.DiseaseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, disease)
}

// DeleteDisease removes a disease entry
func (h *DiseaseHandler) DeleteDisease(c echo.Context) error {
	diseaseID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid disease ID"))
	}

	if err := h.diseaseService.DeleteDisease(diseaseID); err != nil {
		if err == services.ErrDiseaseNotFound {
			return SendError(c, errors.DiseaseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Disease deleted successfully",
	})
}
