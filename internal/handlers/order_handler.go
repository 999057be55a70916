package handlers

import (
	"net/http"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// OrderHandler handles checkout and order lifecycle endpoints
type OrderHandler struct {
	orderService services.OrderServiceInterface
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder checks out the user's cart into a new order
// @Summary Place order
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PlaceOrderRequest true "Checkout details"
// @Success 201 {object} dto.OrderResponse
// @Failure 422 {object} errors.ErrorResponse "Empty cart - CART_004 or out of stock - PRODUCT_003"
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	order, err := h.orderService.PlaceOrder(userID, &req, ipAddress, userAgent)
	if err != nil {
		switch err {
		case services.ErrCartEmpty:
			return SendError(c, errors.CartEmpty)
		case services.ErrNotEnoughStock:
			return SendError(c, errors.ProductOutOfStock)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, order)
}

// GetOrder returns one order. Owners see their own; admins see any.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	orderID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid order ID"))
	}

	order, err := h.orderService.GetOrder(userID, orderID, getIsAdminFromContext(c))
	if err != nil {
		switch err {
		case services.ErrOrderNotFound:
			return SendError(c, errors.OrderNotFound)
		case services.ErrOrderNotOwned:
			return SendError(c, errors.OrderNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// ListOrders returns the user's orders, optionally filtered by status
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var filters dto.OrderFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid filter parameters"))
	}

	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	orders, err := h.orderService.ListOrders(userID, filters, params)
	if err != nil {
		if err == services.ErrInvalidStatus {
			return SendError(c, errors.OrderInvalidStatus)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// ListAllOrders returns every order. Admin only.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	var filters dto.OrderFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid filter parameters"))
	}

	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	orders, err := h.orderService.ListAllOrders(filters, params)
	if err != nil {
		if err == services.ErrInvalidStatus {
			return SendError(c, errors.OrderInvalidStatus)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus transitions an order's fulfilment state. Admin only.
// Cancelling restores stock; status changes notify the buyer.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	orderID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid order ID"))
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	order, err := h.orderService.UpdateOrderStatus(orderID, &req, adminID, ipAddress, userAgent)
	if err != nil {
		switch err {
		case services.ErrOrderNotFound:
			return SendError(c, errors.OrderNotFound)
		case services.ErrInvalidStatus:
			return SendError(c, errors.OrderInvalidStatus)
		case services.ErrInvalidTransition:
			return SendError(c, errors.OrderInvalidTransition)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// CancelOrder cancels one of the user's own orders while still cancellable
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	orderID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid order ID"))
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	order, err := h.orderService.CancelOrder(userID, orderID, ipAddress, userAgent)
	if err != nil {
		switch err {
		case services.ErrOrderNotFound:
			return SendError(c, errors.OrderNotFound)
		case services.ErrOrderNotOwned:
			return SendError(c, errors.OrderNotFound)
		case services.ErrNotCancellable:
			return SendError(c, errors.OrderNotCancellable)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}
