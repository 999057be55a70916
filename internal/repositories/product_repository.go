package repositories

import (
	"errors"
	"fmt"

	"eyesonplants/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository handles database operations for marketplace products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepositoryInterface {
	return &ProductRepository{
		db: db,
	}
}

// Create creates a new product in the database
func (r *ProductRepository) Create(product *models.Product) error {
	if product == nil {
		return errors.New("product cannot be nil")
	}

	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its ID
func (r *ProductRepository) GetByID(id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return &product, nil
}

// GetBySellerID retrieves a seller's products with pagination
func (r *ProductRepository) GetBySellerID(sellerID int64, offset, limit int) ([]*models.Product, int64, error) {
	var products []*models.Product
	var total int64

	query := r.db.Model(&models.Product{}).Where("user_id = ?", sellerID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

// Search queries the catalog with the given filters and pagination
func (r *ProductRepository) Search(filters models.ProductSearchFilters, offset, limit int) ([]*models.Product, int64, error) {
	var products []*models.Product
	var total int64

	query := r.db.Model(&models.Product{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where("LOWER(product_name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", filters.MaxPrice)
	}
	if filters.InStock {
		query = query.Where("stock > 0")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}

	return products, total, nil
}

// Update updates a product in the database
func (r *ProductRepository) Update(product *models.Product) error {
	if product == nil {
		return errors.New("product cannot be nil")
	}

	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// UpdateFields updates specific fields of a product
func (r *ProductRepository) UpdateFields(productID int64, fields map[string]interface{}) error {
	result := r.db.Model(&models.Product{ID: productID}).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update product fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DecrementStock reduces a product's stock by quantity. The guard in the
// WHERE clause makes the check-and-decrement a single atomic statement.
func (r *ProductRepository) DecrementStock(productID int64, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	result := r.db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))

	if result.Error != nil {
		return fmt.Errorf("failed to decrement stock: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Either the product is gone or the stock is too low.
		if _, err := r.GetByID(productID); err != nil {
			return err
		}
		return ErrInsufficientStock
	}

	return nil
}

// IncrementStock restores stock, used when an order is cancelled
func (r *ProductRepository) IncrementStock(productID int64, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	result := r.db.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity))

	if result.Error != nil {
		return fmt.Errorf("failed to increment stock: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete soft deletes a product
func (r *ProductRepository) Delete(productID int64) error {
	result := r.db.Delete(&models.Product{ID: productID})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
