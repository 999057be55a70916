package services

import (
	"context"
	"io"
	"time"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	GenerateSecurePassword() (string, error)
	PasswordStrength(password string) int
	ChangePassword(userID int64, currentPassword, newPassword string) error
}

// UserServiceInterface defines the contract for profile and account operations
type UserServiceInterface interface {
	GetProfile(userID int64) (*dto.UserResponse, error)
	UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	DeleteAccount(userID int64, ipAddress, userAgent string) error
	ListUsers(params dto.PaginationParams) (*dto.ListUsersResponse, error)
	SearchUsers(query string, params dto.PaginationParams) (*dto.ListUsersResponse, error)
	UpdateUserRole(userID int64, req *dto.UpdateUserRoleRequest, performedBy int64, ipAddress, userAgent string) (*dto.UserResponse, error)
}

// PlantServiceInterface defines the contract for tracked-plant operations
type PlantServiceInterface interface {
	CreatePlant(userID int64, req *dto.CreatePlantRequest) (*dto.PlantResponse, error)
	GetPlant(userID, plantID int64) (*dto.PlantResponse, error)
	ListPlants(userID int64, params dto.PaginationParams) (*dto.ListPlantsResponse, error)
	SearchPlants(userID int64, filters models.PlantSearchFilters, params dto.PaginationParams) (*dto.ListPlantsResponse, error)
	UpdatePlant(userID, plantID int64, req *dto.UpdatePlantRequest) (*dto.PlantResponse, error)
	DeletePlant(userID, plantID int64) error
}

// ProductServiceInterface defines the contract for marketplace catalog operations
type ProductServiceInterface interface {
	CreateProduct(sellerID int64, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(productID int64) (*dto.ProductResponse, error)
	SearchProducts(filters dto.ProductFilters, params dto.PaginationParams) (*dto.ListProductsResponse, error)
	ListSellerProducts(sellerID int64, params dto.PaginationParams) (*dto.ListProductsResponse, error)
	UpdateProduct(sellerID, productID int64, isAdmin bool, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(sellerID, productID int64, isAdmin bool) error
}

// CareGuideServiceInterface defines the contract for care guide content operations
type CareGuideServiceInterface interface {
	CreateCareGuide(req *dto.CreateCareGuideRequest) (*dto.CareGuideResponse, error)
	GetCareGuide(guideID int64) (*dto.CareGuideResponse, error)
	ListCareGuides(query string, params dto.PaginationParams) (*dto.ListCareGuidesResponse, error)
	UpdateCareGuide(guideID int64, req *dto.UpdateCareGuideRequest) (*dto.CareGuideResponse, error)
	DeleteCareGuide(guideID int64) error
}

// CartServiceInterface defines the contract for shopping cart operations
type CartServiceInterface interface {
	GetCart(userID int64) (*dto.CartResponse, error)
	AddItem(userID int64, req *dto.AddCartItemRequest) (*dto.CartResponse, error)
	UpdateItemQuantity(userID, itemID int64, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	RemoveItem(userID, itemID int64) (*dto.CartResponse, error)
	ClearCart(userID int64) error
}

// OrderServiceInterface defines the contract for checkout and order lifecycle operations
type OrderServiceInterface interface {
	PlaceOrder(userID int64, req *dto.PlaceOrderRequest, ipAddress, userAgent string) (*dto.OrderResponse, error)
	GetOrder(userID, orderID int64, isAdmin bool) (*dto.OrderResponse, error)
	ListOrders(userID int64, filters dto.OrderFilters, params dto.PaginationParams) (*dto.ListOrdersResponse, error)
	ListAllOrders(filters dto.OrderFilters, params dto.PaginationParams) (*dto.ListOrdersResponse, error)
	UpdateOrderStatus(orderID int64, req *dto.UpdateOrderStatusRequest, performedBy int64, ipAddress, userAgent string) (*dto.OrderResponse, error)
	CancelOrder(userID, orderID int64, ipAddress, userAgent string) (*dto.OrderResponse, error)
}

// DiseaseServiceInterface defines the contract for disease reference data operations
type DiseaseServiceInterface interface {
	CreateDisease(userID int64, req *dto.CreateDiseaseRequest) (*dto.DiseaseResponse, error)
	GetDisease(diseaseID int64) (*dto.DiseaseResponse, error)
	ListDiseases(query string, params dto.PaginationParams) (*dto.ListDiseasesResponse, error)
	UpdateDisease(diseaseID int64, req *dto.UpdateDiseaseRequest) (*dto.DiseaseResponse, error)
	DeleteDisease(diseaseID int64) error
}

// ReminderServiceInterface defines the contract for care reminder operations
type ReminderServiceInterface interface {
	CreateReminder(userID int64, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	ListReminders(userID int64) (*dto.ListRemindersResponse, error)
	ListPlantReminders(userID, plantID int64) (*dto.ListRemindersResponse, error)
	UpdateReminder(userID, reminderID int64, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	DeleteReminder(userID, reminderID int64) error
	// ProcessDueReminders fires every due reminder once: deliver the push,
	// then advance the schedule.
	ProcessDueReminders(now time.Time) (int, error)
}

// NotificationServiceInterface defines the contract for push notification operations
type NotificationServiceInterface interface {
	RegisterDevice(userID int64, req *dto.RegisterDeviceRequest) (*dto.DeviceTokenResponse, error)
	UnregisterDevice(userID int64, token string) error
	ListDevices(userID int64) ([]dto.DeviceTokenResponse, error)
	SendToUser(ctx context.Context, req *dto.SendNotificationRequest) (*dto.NotificationResult, error)
	SendToTopic(ctx context.Context, req *dto.TopicNotificationRequest) error
	SubscribeToTopic(ctx context.Context, req *dto.TopicSubscriptionRequest) error
	UnsubscribeFromTopic(ctx context.Context, req *dto.TopicSubscriptionRequest) error
}

// PushSenderInterface is the transport-level push delivery contract.
type PushSenderInterface interface {
	Send(ctx context.Context, message *PushMessage) error
	SendToTopic(ctx context.Context, topic string, notification PushNotification, data map[string]string) error
	Subscribe(ctx context.Context, token, topic string) error
	Unsubscribe(ctx context.Context, token, topic string) error
}

// AIScanServiceInterface defines the contract for plant disease scan operations
type AIScanServiceInterface interface {
	ScanImage(ctx context.Context, filename string, image io.Reader) (*dto.ScanResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}
