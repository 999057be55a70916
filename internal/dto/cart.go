package dto

import "time"

// AddCartItemRequest contains data for adding a product to the cart
type AddCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,min=1"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest contains a quantity change for a cart item
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartItemResponse represents a single cart line
type CartItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal string          `json:"lineTotal"`
	AddedAt   time.Time       `json:"addedAt"`
}

// CartResponse represents the user's cart with its computed total
type CartResponse struct {
	ID    int64              `json:"id"`
	Items []CartItemResponse `json:"items"`
	Total string             `json:"total"`
}
