package dto

import "time"

// CreateProductRequest contains data for listing a product for sale
type CreateProductRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=50"`
	Description   string `json:"description" validate:"omitempty,max=2000"`
	Category      string `json:"category" validate:"required,product_category"`
	Price         string `json:"price" validate:"required"`
	Stock         int    `json:"stock" validate:"required,min=0"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,url"`
	SellerAddress string `json:"sellerAddress" validate:"required,max=500"`
	SellerPhone   string `json:"sellerPhone" validate:"required,phone"`
}

// UpdateProductRequest contains updatable product attributes
type UpdateProductRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=50"`
	Description   *string `json:"description" validate:"omitempty,max=2000"`
	Category      *string `json:"category" validate:"omitempty,product_category"`
	Price         *string `json:"price"`
	Stock         *int    `json:"stock" validate:"omitempty,min=0"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,url"`
	SellerAddress *string `json:"sellerAddress" validate:"omitempty,max=500"`
	SellerPhone   *string `json:"sellerPhone" validate:"omitempty,phone"`
	OnSale        *bool   `json:"onSale"`
}

// ProductFilters contains filtering options for catalog queries
type ProductFilters struct {
	Category string `query:"category"`
	Query    string `query:"q"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
	InStock  bool   `query:"inStock"`
}

// ProductResponse represents a catalog product
type ProductResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Price         string    `json:"price"`
	Stock         int       `json:"stock"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	SellerID      int64     `json:"sellerId"`
	SellerAddress string    `json:"sellerAddress,omitempty"`
	SellerPhone   string    `json:"sellerPhone,omitempty"`
	OnSale        bool      `json:"onSale"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ListProductsResponse represents a paginated catalog listing
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination PaginationInfo    `json:"pagination"`
}
