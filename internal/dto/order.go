package dto

import "time"

// PlaceOrderRequest contains checkout data
type PlaceOrderRequest struct {
	ShippingAddress string `json:"shippingAddress" validate:"required,min=1,max=500"`
	BillingAddress  string `json:"billingAddress" validate:"omitempty,max=500"`
	PaymentMethod   string `json:"paymentMethod" validate:"required,min=1,max=50"`
}

// UpdateOrderStatusRequest contains an order status transition
type UpdateOrderStatusRequest struct {
	Status         string `json:"status" validate:"required,order_status"`
	TrackingNumber string `json:"trackingNumber" validate:"omitempty,max=100"`
}

// OrderFilters contains filtering options for order queries
type OrderFilters struct {
	Status string `query:"status"`
}

// OrderItemResponse represents a single order line with snapshot pricing
type OrderItemResponse struct {
	ID           int64  `json:"id"`
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	PricePerUnit string `json:"pricePerUnit"`
	TotalPrice   string `json:"totalPrice"`
}

// OrderResponse represents a placed order
type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"userId"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"paymentStatus"`
	TotalAmount     string              `json:"totalAmount"`
	ShippingAddress string              `json:"shippingAddress"`
	BillingAddress  string              `json:"billingAddress,omitempty"`
	PaymentMethod   string              `json:"paymentMethod"`
	TrackingNumber  string              `json:"trackingNumber,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// ListOrdersResponse represents a paginated order listing
type ListOrdersResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Pagination PaginationInfo  `json:"pagination"`
}
