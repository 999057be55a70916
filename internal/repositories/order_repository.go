package repositories

import (
	"errors"
	"fmt"

	"eyesonplants/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository handles database operations for orders
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepositoryInterface {
	return &OrderRepository{
		db: db,
	}
}

// CreateFromCart creates the order with its items and decrements product
// stock in one transaction. Any stock shortfall rolls the whole order back.
func (r *OrderRepository) CreateFromCart(order *models.Order) error {
	if order == nil {
		return errors.New("order cannot be nil")
	}
	if len(order.Items) == 0 {
		return errors.New("order must have at least one item")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))

			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				var count int64
				if err := tx.Model(&models.Product{}).
					Where("id = ?", item.ProductID).
					Count(&count).Error; err != nil {
					return fmt.Errorf("failed to check product: %w", err)
				}
				if count == 0 {
					return ErrProductNotFound
				}
				return ErrInsufficientStock
			}
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return nil
	})
}

// GetByID retrieves an order with its items and products preloaded
func (r *OrderRepository) GetByID(id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items").
		Preload("Items.Product").
		First(&order, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID: %w", err)
	}

	return &order, nil
}

// GetByUserID retrieves a user's orders, optionally filtered by status
func (r *OrderRepository) GetByUserID(userID int64, status models.OrderStatus, offset, limit int) ([]*models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	return r.paginate(query, offset, limit)
}

// GetAll retrieves all orders for administrative views, optionally filtered
// by status
func (r *OrderRepository) GetAll(status models.OrderStatus, offset, limit int) ([]*models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	return r.paginate(query, offset, limit)
}

func (r *OrderRepository) paginate(query *gorm.DB, offset, limit int) ([]*models.Order, int64, error) {
	var orders []*models.Order
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	err := query.
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, total, nil
}

// UpdateStatus sets the order status and, when provided, the tracking number
func (r *OrderRepository) UpdateStatus(orderID int64, status models.OrderStatus, trackingNumber string) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if trackingNumber != "" {
		updates["tracking_number"] = trackingNumber
	}

	result := r.db.Model(&models.Order{ID: orderID}).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update order status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// UpdatePaymentStatus sets the order's payment state
func (r *OrderRepository) UpdatePaymentStatus(orderID int64, status models.PaymentStatus) error {
	result := r.db.Model(&models.Order{ID: orderID}).Update("payment_status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
