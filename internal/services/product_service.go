package services

import (
	"errors"
	"fmt"
	"log/slog"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductNotOwned = errors.New("product belongs to another seller")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidCategory = errors.New("invalid product category")
)

// ProductService handles marketplace catalog business logic. Sellers manage
// their own listings; admins may manage any.
type ProductService struct {
	productRepo repositories.ProductRepositoryInterface
	logger      *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo repositories.ProductRepositoryInterface, logger *slog.Logger) ProductServiceInterface {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateProduct lists a new product for the seller
func (s *ProductService) CreateProduct(sellerID int64, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	category := models.ProductCategory(req.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	product := &models.Product{
		UserID:        sellerID,
		ProductName:   req.Name,
		Description:   req.Description,
		Category:      category,
		Price:         price,
		Stock:         req.Stock,
		ImageURL:      req.ImageURL,
		SellerAddress: req.SellerAddress,
		SellerPhone:   req.SellerPhone,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product listed",
		"product_id", product.ID,
		"seller_id", sellerID,
		"category", product.Category,
		"price", product.Price.String())

	resp := toProductResponse(product)
	return &resp, nil
}

// GetProduct returns a single catalog product
func (s *ProductService) GetProduct(productID int64) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// SearchProducts queries the catalog with the given filters
func (s *ProductService) SearchProducts(filters dto.ProductFilters, params dto.PaginationParams) (*dto.ListProductsResponse, error) {
	params.Normalize()

	searchFilters := models.ProductSearchFilters{
		Query:   filters.Query,
		InStock: filters.InStock,
	}

	if filters.Category != "" {
		category := models.ProductCategory(filters.Category)
		if !category.Valid() {
			return nil, ErrInvalidCategory
		}
		searchFilters.Category = category
	}

	if filters.MinPrice != "" {
		min, err := parsePrice(filters.MinPrice)
		if err != nil {
			return nil, err
		}
		searchFilters.MinPrice = &min
	}

	if filters.MaxPrice != "" {
		max, err := parsePrice(filters.MaxPrice)
		if err != nil {
			return nil, err
		}
		searchFilters.MaxPrice = &max
	}

	products, total, err := s.productRepo.Search(searchFilters, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return s.buildListing(products, params, total), nil
}

// ListSellerProducts returns a paginated listing of the seller's own products
func (s *ProductService) ListSellerProducts(sellerID int64, params dto.PaginationParams) (*dto.ListProductsResponse, error) {
	params.Normalize()

	products, total, err := s.productRepo.GetBySellerID(sellerID, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller products: %w", err)
	}

	return s.buildListing(products, params, total), nil
}

// UpdateProduct applies the provided changes to a listing
func (s *ProductService) UpdateProduct(sellerID, productID int64, isAdmin bool, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if _, err := s.getManagedProduct(sellerID, productID, isAdmin); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Name != nil {
		fields["product_name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		category := models.ProductCategory(*req.Category)
		if !category.Valid() {
			return nil, ErrInvalidCategory
		}
		fields["category"] = category
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		fields["price"] = price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errors.New("stock cannot be negative")
		}
		fields["stock"] = *req.Stock
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.SellerAddress != nil {
		fields["seller_address"] = *req.SellerAddress
	}
	if req.SellerPhone != nil {
		fields["seller_phone"] = *req.SellerPhone
	}
	if req.OnSale != nil {
		fields["on_sale"] = *req.OnSale
	}

	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	if err := s.productRepo.UpdateFields(productID, fields); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// DeleteProduct removes a listing from the catalog
func (s *ProductService) DeleteProduct(sellerID, productID int64, isAdmin bool) error {
	if _, err := s.getManagedProduct(sellerID, productID, isAdmin); err != nil {
		return err
	}

	if err := s.productRepo.Delete(productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("product delisted", "product_id", productID, "seller_id", sellerID)

	return nil
}

func (s *ProductService) getManagedProduct(sellerID, productID int64, isAdmin bool) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if !isAdmin && product.UserID != sellerID {
		return nil, ErrProductNotOwned
	}

	return product, nil
}

func (s *ProductService) buildListing(products []*models.Product, params dto.PaginationParams, total int64) *dto.ListProductsResponse {
	responses := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}

	return &dto.ListProductsResponse{
		Products:   responses,
		Pagination: dto.NewPaginationInfo(params, total),
	}
}

func parsePrice(value string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidPrice
	}
	return price, nil
}

func toProductResponse(product *models.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            product.ID,
		Name:          product.ProductName,
		Description:   product.Description,
		Category:      string(product.Category),
		Price:         product.Price.StringFixed(2),
		Stock:         product.Stock,
		ImageURL:      product.ImageURL,
		SellerID:      product.UserID,
		SellerAddress: product.SellerAddress,
		SellerPhone:   product.SellerPhone,
		OnSale:        product.OnSale,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}
