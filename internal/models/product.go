package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductCategory classifies a marketplace listing.
type ProductCategory string

const (
	CategoryIndoorPlant  ProductCategory = "INDOOR_PLANT"
	CategoryOutdoorPlant ProductCategory = "OUTDOOR_PLANT"
	CategorySeed         ProductCategory = "SEED"
	CategoryFertilizer   ProductCategory = "FERTILIZER"
	CategoryTool         ProductCategory = "TOOL"
	CategoryPot          ProductCategory = "POT"
)

var productCategories = map[ProductCategory]bool{
	CategoryIndoorPlant:  true,
	CategoryOutdoorPlant: true,
	CategorySeed:         true,
	CategoryFertilizer:   true,
	CategoryTool:         true,
	CategoryPot:          true,
}

func (c ProductCategory) Valid() bool {
	return productCategories[c]
}

// Product is a marketplace listing owned by a seller account.
type Product struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int64           `gorm:"not null;index" json:"user_id"`
	ProductName   string          `gorm:"type:varchar(50);not null" json:"product_name"`
	Category      ProductCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock         int             `gorm:"not null;default:0" json:"stock"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	ImageURL      string          `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	SellerAddress string          `gorm:"type:text;not null" json:"seller_address"`
	SellerPhone   string          `gorm:"type:varchar(50);not null" json:"seller_phone"`
	OnSale        bool            `gorm:"not null;default:false" json:"on_sale"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	return p.Validate()
}

func (p *Product) Validate() error {
	if p.ProductName == "" {
		return errors.New("product name is required")
	}

	if len(p.ProductName) > 50 {
		return errors.New("product name cannot exceed 50 characters")
	}

	if !p.Category.Valid() {
		return fmt.Errorf("invalid product category: %s", p.Category)
	}

	if p.Price.LessThanOrEqual(decimal.Zero) {
		return errors.New("price must be greater than zero")
	}

	if p.Stock < 0 {
		return errors.New("stock cannot be negative")
	}

	if p.SellerAddress == "" {
		return errors.New("seller address is required")
	}

	if p.SellerPhone == "" {
		return errors.New("seller phone number is required")
	}

	if !phoneRegex.MatchString(p.SellerPhone) {
		return errors.New("invalid seller phone number")
	}

	if p.UserID == 0 {
		return errors.New("product must belong to a seller")
	}

	return nil
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ProductSearchFilters contains catalog search criteria.
type ProductSearchFilters struct {
	Category ProductCategory
	Query    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	InStock  bool
}

func (p *Product) TableName() string {
	return "products"
}
