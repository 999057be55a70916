package repositories

import (
	"errors"
	"fmt"

	"eyesonplants/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository handles database operations for shopping carts
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) CartRepositoryInterface {
	return &CartRepository{
		db: db,
	}
}

// GetOrCreateByUserID returns the user's cart, creating an empty one on
// first use.
func (r *CartRepository) GetOrCreateByUserID(userID int64) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.added_at ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error

	if err == nil {
		return &cart, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	cart = models.Cart{UserID: userID}
	if err := r.db.Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return &cart, nil
}

// GetByUserID retrieves the user's cart with items and products preloaded
func (r *CartRepository) GetByUserID(userID int64) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.added_at ASC")
		}).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

// AddItem adds a product line to the cart, merging quantities when the
// product is already present.
func (r *CartRepository) AddItem(cartID int64, item *models.CartItem) error {
	if item == nil {
		return errors.New("cart item cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("cart_id = ? AND product_id = ?", cartID, item.ProductID).
			First(&existing).Error

		if err == nil {
			return tx.Model(&existing).
				Update("quantity", existing.Quantity+item.Quantity).Error
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up cart item: %w", err)
		}

		item.CartID = cartID
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to add cart item: %w", err)
		}

		return nil
	})
}

// UpdateItemQuantity sets the quantity of an existing cart line
func (r *CartRepository) UpdateItemQuantity(cartID, itemID int64, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	result := r.db.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)

	if result.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// RemoveItem deletes a cart line
func (r *CartRepository) RemoveItem(cartID, itemID int64) error {
	result := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{})

	if result.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// Clear removes every line from the cart
func (r *CartRepository) Clear(cartID int64) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
