package repositories

import (
	"context"
	"time"

	"eyesonplants/internal/models"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	// ExistsWithCredentials reports whether an active account with the given
	// id still carries the given email. Called on every authenticated request.
	ExistsWithCredentials(ctx context.Context, id int64, email string) (bool, error)
	Update(user *models.User) error
	UpdateFields(userID int64, fields map[string]interface{}) error
	UpdatePasswordHash(userID int64, passwordHash string) error
	UpdateRole(userID int64, role models.Role) error
	Delete(userID int64) error
	ListUsers(offset, limit int) ([]*models.User, int64, error)
	SearchUsers(query string, offset, limit int) ([]*models.User, int64, error)
}

// PlantRepositoryInterface defines the contract for plant repository operations
type PlantRepositoryInterface interface {
	Create(plant *models.Plant) error
	GetByID(id int64) (*models.Plant, error)
	GetByUserID(userID int64, offset, limit int) ([]*models.Plant, int64, error)
	Search(userID int64, filters models.PlantSearchFilters, offset, limit int) ([]*models.Plant, int64, error)
	Update(plant *models.Plant) error
	UpdateFields(plantID int64, fields map[string]interface{}) error
	Delete(plantID int64) error
}

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByID(id int64) (*models.Product, error)
	GetBySellerID(sellerID int64, offset, limit int) ([]*models.Product, int64, error)
	Search(filters models.ProductSearchFilters, offset, limit int) ([]*models.Product, int64, error)
	Update(product *models.Product) error
	UpdateFields(productID int64, fields map[string]interface{}) error
	// DecrementStock reduces stock atomically and fails when the remaining
	// stock is insufficient.
	DecrementStock(productID int64, quantity int) error
	IncrementStock(productID int64, quantity int) error
	Delete(productID int64) error
}

// CareGuideRepositoryInterface defines the contract for care guide repository operations
type CareGuideRepositoryInterface interface {
	Create(guide *models.CareGuide) error
	GetByID(id int64) (*models.CareGuide, error)
	List(offset, limit int) ([]*models.CareGuide, int64, error)
	SearchByPlantName(query string, offset, limit int) ([]*models.CareGuide, int64, error)
	Update(guide *models.CareGuide) error
	Delete(guideID int64) error
}

// CartRepositoryInterface defines the contract for cart repository operations
type CartRepositoryInterface interface {
	GetOrCreateByUserID(userID int64) (*models.Cart, error)
	GetByUserID(userID int64) (*models.Cart, error)
	AddItem(cartID int64, item *models.CartItem) error
	UpdateItemQuantity(cartID, itemID int64, quantity int) error
	RemoveItem(cartID, itemID int64) error
	Clear(cartID int64) error
}

// OrderRepositoryInterface defines the contract for order repository operations
type OrderRepositoryInterface interface {
	// CreateFromCart atomically creates the order with its items and
	// decrements product stock, rolling everything back on any failure.
	CreateFromCart(order *models.Order) error
	GetByID(id int64) (*models.Order, error)
	GetByUserID(userID int64, status models.OrderStatus, offset, limit int) ([]*models.Order, int64, error)
	GetAll(status models.OrderStatus, offset, limit int) ([]*models.Order, int64, error)
	UpdateStatus(orderID int64, status models.OrderStatus, trackingNumber string) error
	UpdatePaymentStatus(orderID int64, status models.PaymentStatus) error
}

// DiseaseRepositoryInterface defines the contract for disease repository operations
type DiseaseRepositoryInterface interface {
	Create(disease *models.Disease) error
	GetByID(id int64) (*models.Disease, error)
	List(offset, limit int) ([]*models.Disease, int64, error)
	SearchByName(query string, offset, limit int) ([]*models.Disease, int64, error)
	Update(disease *models.Disease) error
	Delete(diseaseID int64) error
}

// ReminderRepositoryInterface defines the contract for reminder repository operations
type ReminderRepositoryInterface interface {
	Create(reminder *models.Reminder) error
	GetByID(id int64) (*models.Reminder, error)
	GetByUserID(userID int64) ([]*models.Reminder, error)
	GetByPlantID(userID, plantID int64) ([]*models.Reminder, error)
	// GetDue returns reminders whose next date has passed, with the plant
	// preloaded for notification text.
	GetDue(now time.Time, limit int) ([]*models.Reminder, error)
	Update(reminder *models.Reminder) error
	Delete(reminderID int64) error
}

// DeviceTokenRepositoryInterface defines the contract for device token repository operations
type DeviceTokenRepositoryInterface interface {
	Upsert(token *models.DeviceToken) error
	GetByUserID(userID int64) ([]*models.DeviceToken, error)
	GetByToken(token string) (*models.DeviceToken, error)
	DeleteByToken(token string) error
	DeleteByUserID(userID int64) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID int64, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
