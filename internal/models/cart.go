package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is the single active shopping cart of a user.
type Cart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	User  User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
}

// Total sums price*quantity over the loaded items.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (c *Cart) TableName() string {
	return "carts"
}

// CartItem is one product line in a cart.
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"not null;index" json:"cart_id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `gorm:"not null" json:"added_at"`

	Cart    Cart    `gorm:"foreignKey:CartID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.AddedAt.IsZero() {
		ci.AddedAt = time.Now()
	}
	return ci.Validate()
}

func (ci *CartItem) Validate() error {
	if ci.CartID == 0 {
		return errors.New("cart item must belong to a cart")
	}

	if ci.ProductID == 0 {
		return errors.New("cart item must reference a product")
	}

	if ci.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	return nil
}

func (ci *CartItem) TableName() string {
	return "cart_items"
}
