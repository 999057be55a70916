package handlers

import (
	"net/http"

	"eyesonplants/internal/errors"
	"eyesonplants/internal/repositories"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints that seed the catalog with
// generated data. These routes must not be registered in production.
type DevHandler struct {
	productRepo   repositories.ProductRepositoryInterface
	careGuideRepo repositories.CareGuideRepositoryInterface
	diseaseRepo   repositories.DiseaseRepositoryInterface
	generator     services.CatalogGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	productRepo repositories.ProductRepositoryInterface,
	careGuideRepo repositories.CareGuideRepositoryInterface,
	diseaseRepo repositories.DiseaseRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		productRepo:   productRepo,
		careGuideRepo: careGuideRepo,
		diseaseRepo:   diseaseRepo,
		generator:     services.NewCatalogGenerator(),
	}
}

// SeedProducts generates marketplace listings owned by the caller
//
// Method: POST /api/v1/dev/seed/products
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of products to generate (default: 20, max: 200)
func (h *DevHandler) SeedProducts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := clampCount(getIntParam(c, "count", 20), 200)

	created := 0
	for _, product := range h.generator.GenerateProducts(userID, count) {
		if err := h.productRepo.Create(product); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "catalog seeded",
		Data:    map[string]interface{}{"products_created": created},
	})
}

// SeedCareGuides generates care guide entries for common houseplants
//
// Method: POST /api/v1/dev/seed/care-guides
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of guides to generate (default: 10, max: 50)
func (h *DevHandler) SeedCareGuides(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := clampCount(getIntParam(c, "count", 10), 50)

	created := 0
	for _, guide := range h.generator.GenerateCareGuides(count) {
		if err := h.careGuideRepo.Create(guide); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "care guides seeded",
		Data:    map[string]interface{}{"care_guides_created": created},
	})
}

// SeedDiseases generates disease reference entries owned by the caller
//
// Method: POST /api/v1/dev/seed/diseases
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - count: Number of diseases to generate (default: 10, max: 12)
func (h *DevHandler) SeedDiseases(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := clampCount(getIntParam(c, "count", 10), 12)

	created := 0
	for _, disease := range h.generator.GenerateDiseases(userID, count) {
		if err := h.diseaseRepo.Create(disease); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "diseases seeded",
		Data:    map[string]interface{}{"diseases_created": created},
	})
}

func clampCount(count, max int) int {
	if count < 1 {
		return 1
	}
	if count > max {
		return max
	}
	return count
}
