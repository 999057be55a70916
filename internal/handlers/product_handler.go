package handlers

import (
	"net/http"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandler handles marketplace catalog endpoints
type ProductHandler struct {
	productService services.ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService services.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct lists a new product for sale. Restricted to sellers.
// @Summary Create product listing
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or PRODUCT_002"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	sellerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	product, err := h.productService.CreateProduct(sellerID, &req)
	if err != nil {
		switch err {
		case services.ErrInvalidCategory:
			return SendError(c, errors.ProductInvalidCategory)
		case services.ErrInvalidPrice:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid price"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}

// GetProduct returns a single catalog product. Public.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid product ID"))
	}

	product, err := h.productService.GetProduct(productID)
	if err != nil {
		if err == services.ErrProductNotFound {
			return SendError(c, errors.ProductNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

// SearchProducts searches the catalog by name, category, keyword, price
// range, and stock. Public.
// @Summary Search products
// @Tags Products
// @Produce json
// @Param q query string false "Keyword"
// @Param category query string false "Category filter"
// @Param minPrice query string false "Minimum price"
// @Param maxPrice query string false "Maximum price"
// @Param inStock query bool false "Only in-stock products"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.ListProductsResponse
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	var filters dto.ProductFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid filter parameters"))
	}

	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	products, err := h.productService.SearchProducts(filters, params)
	if err != nil {
		if err == services.ErrInvalidCategory {
			return SendError(c, errors.ProductInvalidCategory)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// ListMyProducts returns the authenticated seller's own listings
func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	sellerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	products, err := h.productService.ListSellerProducts(sellerID, params)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// UpdateProduct updates a listing. Sellers may only touch their own
// products; admins may touch any.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	sellerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	productID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid product ID"))
	}

	var req dto.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	product, err := h.productService.UpdateProduct(sellerID, productID, getIsAdminFromContext(c), &req)
	if err != nil {
		switch err {
		case services.ErrProductNotFound:
			return SendError(c, errors.ProductNotFound)
		case services.ErrProductNotOwned:
			return SendError(c, errors.ProductNotOwned)
		case services.ErrInvalidCategory:
			return SendError(c, errors.ProductInvalidCategory)
		case services.ErrInvalidPrice:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid price"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a listing. Same ownership rules as UpdateProduct.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	sellerID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	productID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid product ID"))
	}

	if err := h.productService.DeleteProduct(sellerID, productID, getIsAdminFromContext(c)); err != nil {
		switch err {
		case services.ErrProductNotFound:
			return SendError(c, errors.ProductNotFound)
		case services.ErrProductNotOwned:
			return SendError(c, errors.ProductNotOwned)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Product deleted successfully",
	})
}
