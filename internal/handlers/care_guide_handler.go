package handlers

import (
	"net/http"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// CareGuideHandler handles care guide content endpoints. Reads are public;
// writes are admin-only.
type CareGuideHandler struct {
	careGuideService services.CareGuideServiceInterface
}

// NewCareGuideHandler creates a new care guide handler
func NewCareGuideHandler(careGuideService services.CareGuideServiceInterface) *CareGuideHandler {
	return &CareGuideHandler{careGuideService: careGuideService}
}

// ListCareGuides returns published guides, optionally filtered by plant name
func (h *CareGuideHandler) ListCareGuides(c echo.Context) error {
	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	guides, err := h.careGuideService.ListCareGuides(c.QueryParam("q"), params)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, guides)
}

// GetCareGuide returns a single guide
func (h *CareGuideHandler) GetCareGuide(c echo.Context) error {
	guideID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid care guide ID"))
	}

	guide, err := h.careGuideService.GetCareGuide(guideID)
	if err != nil {
		if err == services.ErrCareGuideNotFound {
			return SendError(c, errors.CareGuideNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, guide)
}

// CreateCareGuide publishes a new guide
func (h *CareGuideHandler) CreateCareGuide(c echo.Context) error {
	var req dto.CreateCareGuideRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	guide, err := h.careGuideService.CreateCareGuide(&req)
	if err != nil {
		if err == services.ErrInvalidCareLevel {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid care level"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, guide)
}

// UpdateCareGuide updates a published guide
func (h *CareGuideHandler) UpdateCareGuide(c echo.Context) error {
	guideID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid care guide ID"))
	}

	var req dto.UpdateCareGuideRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	guide, err := h.careGuideService.UpdateCareGuide(guideID, &req)
	if err != nil {
		switch err {
		case services.ErrCareGuideNotFound:
			return SendError(c, errors.CareGuideNotFound)
		case services.ErrInvalidCareLevel:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid care level"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, guide)
}

// DeleteCareGuide removes a published guide
func (h *CareGuideHandler) DeleteCareGuide(c echo.Context) error {
	guideID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid care guide ID"))
	}

	if err := h.careGuideService.DeleteCareGuide(guideID); err != nil {
		if err == services.ErrCareGuideNotFound {
			return SendError(c, errors.CareGuideNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Care guide deleted successfully",
	})
}
