package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotOwned     = errors.New("order belongs to another user")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrNotCancellable    = errors.New("order can no longer be cancelled")
	ErrInvalidStatus     = errors.New("invalid order status")
)

// OrderService handles checkout and order lifecycle. Checkout converts the
// cart into an order with snapshot pricing and atomically reserves stock.
type OrderService struct {
	orderRepo    repositories.OrderRepositoryInterface
	cartRepo     repositories.CartRepositoryInterface
	productRepo  repositories.ProductRepositoryInterface
	auditRepo    repositories.AuditLogRepositoryInterface
	notification NotificationServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	cartRepo repositories.CartRepositoryInterface,
	productRepo repositories.ProductRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	notification NotificationServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
		auditRepo:    auditRepo,
		notification: notification,
		metrics:      metrics,
		logger:       logger,
	}
}

// PlaceOrder checks out the user's cart
func (s *OrderService) PlaceOrder(userID int64, req *dto.PlaceOrderRequest, ipAddress, userAgent string) (*dto.OrderResponse, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return nil, ErrCartEmpty
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		UserID:          userID,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderPending,
		PaymentStatus:   models.PaymentPending,
	}

	total := decimal.Zero
	for _, item := range cart.Items {
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		order.Items = append(order.Items, models.OrderItem{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PricePerUnit: item.Product.Price,
			TotalPrice:   lineTotal,
		})
		total = total.Add(lineTotal)
	}
	order.TotalAmount = total

	if err := s.orderRepo.CreateFromCart(order); err != nil {
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, repositories.ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err := s.cartRepo.Clear(cart.ID); err != nil {
		// The order exists; a stale cart is an annoyance, not a failure.
		s.logger.Warn("failed to clear cart after checkout",
			"error", err,
			"user_id", userID,
			"order_id", order.ID)
	}

	s.auditOrderEvent(userID, models.AuditActionOrderPlaced, order.ID, ipAddress, userAgent, map[string]interface{}{
		"total_amount": order.TotalAmount.StringFixed(2),
		"item_count":   len(order.Items),
	})

	s.metrics.IncrementCounter("order_placed", nil)
	s.metrics.RecordGauge("order_amount", order.TotalAmount.InexactFloat64(), nil)

	s.logger.Info("order placed",
		"order_id", order.ID,
		"user_id", userID,
		"total", order.TotalAmount.String())

	s.notifyUser(userID, "Order placed",
		fmt.Sprintf("Your order #%d for %s has been received.", order.ID, order.TotalAmount.StringFixed(2)))

	return s.GetOrder(userID, order.ID, false)
}

// GetOrder returns a single order, visible to its owner or an admin
func (s *OrderService) GetOrder(userID, orderID int64, isAdmin bool) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !isAdmin && order.UserID != userID {
		return nil, ErrOrderNotOwned
	}

	resp := toOrderResponse(order)
	return &resp, nil
}

// ListOrders returns a paginated listing of the user's own orders
func (s *OrderService) ListOrders(userID int64, filters dto.OrderFilters, params dto.PaginationParams) (*dto.ListOrdersResponse, error) {
	params.Normalize()

	status, err := parseOrderStatus(filters.Status)
	if err != nil {
		return nil, err
	}

	orders, total, err := s.orderRepo.GetByUserID(userID, status, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return buildOrderListing(orders, params, total), nil
}

// ListAllOrders returns a paginated listing of every order (admin operation)
func (s *OrderService) ListAllOrders(filters dto.OrderFilters, params dto.PaginationParams) (*dto.ListOrdersResponse, error) {
	params.Normalize()

	status, err := parseOrderStatus(filters.Status)
	if err != nil {
		return nil, err
	}

	orders, total, err := s.orderRepo.GetAll(status, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return buildOrderListing(orders, params, total), nil
}

// UpdateOrderStatus moves an order along its lifecycle (admin operation).
// Cancelling this way restores the reserved stock.
func (s *OrderService) UpdateOrderStatus(orderID int64, req *dto.UpdateOrderStatusRequest, performedBy int64, ipAddress, userAgent string) (*dto.OrderResponse, error) {
	newStatus := models.OrderStatus(req.Status)
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(orderID, newStatus, req.TrackingNumber); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if newStatus == models.OrderCancelled {
		s.restoreStock(order)
	}

	s.auditOrderEvent(order.UserID, models.AuditActionOrderStatus, orderID, ipAddress, userAgent, map[string]interface{}{
		"old_status":   string(order.Status),
		"new_status":   string(newStatus),
		"performed_by": performedBy,
	})

	s.metrics.IncrementCounter("order_status_changed", map[string]string{"status": string(newStatus)})

	s.notifyUser(order.UserID, "Order update",
		fmt.Sprintf("Your order #%d is now %s.", orderID, newStatus))

	return s.GetOrder(order.UserID, orderID, true)
}

// CancelOrder cancels one of the user's own orders while it is still
// pending or processing, restoring the reserved stock.
func (s *OrderService) CancelOrder(userID, orderID int64, ipAddress, userAgent string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order.UserID != userID {
		return nil, ErrOrderNotOwned
	}

	if !order.Status.CanTransitionTo(models.OrderCancelled) {
		return nil, ErrNotCancellable
	}

	if err := s.orderRepo.UpdateStatus(orderID, models.OrderCancelled, ""); err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	s.restoreStock(order)

	s.auditOrderEvent(userID, models.AuditActionOrderStatus, orderID, ipAddress, userAgent, map[string]interface{}{
		"old_status": string(order.Status),
		"new_status": string(models.OrderCancelled),
	})

	s.metrics.IncrementCounter("order_status_changed", map[string]string{"status": string(models.OrderCancelled)})

	return s.GetOrder(userID, orderID, false)
}

func (s *OrderService) restoreStock(order *models.Order) {
	for _, item := range order.Items {
		if err := s.productRepo.IncrementStock(item.ProductID, item.Quantity); err != nil {
			// Stock drift is recoverable by hand; the cancellation stands.
			s.logger.Error("failed to restore stock for cancelled order",
				"error", err,
				"order_id", order.ID,
				"product_id", item.ProductID,
				"quantity", item.Quantity)
		}
	}
}

func (s *OrderService) notifyUser(userID int64, title, body string) {
	if s.notification == nil {
		return
	}

	_, err := s.notification.SendToUser(context.Background(), &dto.SendNotificationRequest{
		UserID: userID,
		Title:  title,
		Body:   body,
	})
	if err != nil {
		s.logger.Warn("failed to send order notification",
			"error", err,
			"user_id", userID)
	}
}

func (s *OrderService) auditOrderEvent(userID int64, action string, orderID int64, ipAddress, userAgent string, metadata map[string]interface{}) {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   "order",
		ResourceID: strconv.FormatInt(orderID, 10),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"order_id", orderID)
	}
}

func parseOrderStatus(value string) (models.OrderStatus, error) {
	if value == "" {
		return "", nil
	}
	status := models.OrderStatus(value)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func buildOrderListing(orders []*models.Order, params dto.PaginationParams, total int64) *dto.ListOrdersResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}

	return &dto.ListOrdersResponse{
		Orders:     responses,
		Pagination: dto.NewPaginationInfo(params, total),
	}
}

func toOrderResponse(order *models.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.Product.ProductName,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit.StringFixed(2),
			TotalPrice:   item.TotalPrice.StringFixed(2),
		})
	}

	return dto.OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Status:          string(order.Status),
		PaymentStatus:   string(order.PaymentStatus),
		TotalAmount:     order.TotalAmount.StringFixed(2),
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		PaymentMethod:   order.PaymentMethod,
		TrackingNumber:  order.TrackingNumber,
		Items:           items,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
