package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
	OrderCompleted  OrderStatus = "COMPLETED"
)

// orderTransitions defines the allowed status moves. Terminal states have
// no entry.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {OrderCompleted},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus is the payment state of an order. Payment capture itself is
// out of scope; this is a plain recorded state.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Order is a checked-out cart with snapshot pricing.
type Order struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64           `gorm:"not null;index" json:"user_id"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	ShippingAddress string          `gorm:"type:text;not null" json:"shipping_address"`
	BillingAddress  string          `gorm:"type:text" json:"billing_address,omitempty"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentMethod   string          `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null" json:"payment_status"`
	TrackingNumber  string          `gorm:"type:varchar(100)" json:"tracking_number,omitempty"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	User  User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = OrderPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentPending
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	return o.Validate()
}

func (o *Order) Validate() error {
	if o.UserID == 0 {
		return errors.New("order must belong to a user")
	}

	if o.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return errors.New("total amount must be positive")
	}

	if o.ShippingAddress == "" {
		return errors.New("shipping address is required")
	}

	if !o.Status.Valid() {
		return fmt.Errorf("invalid order status: %s", o.Status)
	}

	if !o.PaymentStatus.Valid() {
		return fmt.Errorf("invalid payment status: %s", o.PaymentStatus)
	}

	return nil
}

// IsTerminal reports whether the order can no longer change status.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderCancelled || o.Status == OrderCompleted
}

func (o *Order) TableName() string {
	return "orders"
}

// OrderItem is one product line of an order. PricePerUnit is a snapshot of
// the product price at checkout time.
type OrderItem struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      int64           `gorm:"not null;index" json:"order_id"`
	ProductID    int64           `gorm:"not null;index" json:"product_id"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	return oi.Validate()
}

func (oi *OrderItem) Validate() error {
	if oi.OrderID == 0 {
		return errors.New("order item must belong to an order")
	}

	if oi.ProductID == 0 {
		return errors.New("order item must reference a product")
	}

	if oi.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	if oi.PricePerUnit.LessThanOrEqual(decimal.Zero) {
		return errors.New("price per unit must be positive")
	}

	if oi.TotalPrice.LessThanOrEqual(decimal.Zero) {
		return errors.New("total price must be positive")
	}

	return nil
}

func (oi *OrderItem) TableName() string {
	return "order_items"
}
