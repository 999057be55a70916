package handlers

import (
	"net/http"

	"eyesonplants/internal/errors"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// maxScanImageSize caps uploads forwarded to the prediction service.
const maxScanImageSize = 10 << 20 // 10 MiB

// AIHandler handles plant disease scan endpoints
type AIHandler struct {
	scanService services.AIScanServiceInterface
}

// NewAIHandler creates a new AI scan handler
func NewAIHandler(scanService services.AIScanServiceInterface) *AIHandler {
	return &AIHandler{scanService: scanService}
}

// ScanImage forwards an uploaded plant image to the disease prediction
// service and returns its verdict
// @Summary Scan plant image
// @Tags AI
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Plant image"
// @Success 200 {object} dto.ScanResponse
// @Failure 400 {object} errors.ErrorResponse "Invalid image - AI_003"
// @Failure 502 {object} errors.ErrorResponse "Scan failed - AI_001"
// @Failure 503 {object} errors.ErrorResponse "Scan service unavailable - AI_002"
// @Router /ai/scan [post]
func (h *AIHandler) ScanImage(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return SendError(c, errors.AIInvalidImage)
	}

	if fileHeader.Size > maxScanImageSize {
		return SendError(c, errors.AIInvalidImage, errors.WithDetails("Image exceeds the 10MB limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	result, err := h.scanService.ScanImage(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		switch err {
		case services.ErrInvalidImage:
			return SendError(c, errors.AIInvalidImage)
		case services.ErrScanUnavailable:
			return SendError(c, errors.AIScanUnavailable)
		case services.ErrScanFailed:
			return SendError(c, errors.AIScanFailed)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
