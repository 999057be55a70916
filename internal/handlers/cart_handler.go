package handlers

import (
	"net/http"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	cartService services.CartServiceInterface
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService services.CartServiceInterface) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart returns the user's cart with computed totals
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

// AddItem adds a product to the cart, merging with an existing line
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	cart, err := h.cartService.AddItem(userID, &req)
	if err != nil {
		switch err {
		case services.ErrProductNotFound:
			return SendError(c, errors.ProductNotFound)
		case services.ErrInvalidQuantity:
			return SendError(c, errors.CartInvalidQuantity)
		case services.ErrNotEnoughStock:
			return SendError(c, errors.ProductOutOfStock)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

// UpdateItem changes the quantity of a cart line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	itemID, err := getIDParam(c, "itemId")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid cart item ID"))
	}

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	cart, err := h.cartService.UpdateItemQuantity(userID, itemID, &req)
	if err != nil {
		switch err {
		case services.ErrCartItemNotFound:
			return SendError(c, errors.CartItemNotFound)
		case services.ErrInvalidQuantity:
			return SendError(c, errors.CartInvalidQuantity)
		case services.ErrNotEnoughStock:
			return SendError(c, errors.ProductOutOfStock)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

// RemoveItem deletes a cart line
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	itemID, err := getIDParam(c, "itemId")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid cart item ID"))
	}

	cart, err := h.cartService.RemoveItem(userID, itemID)
	if err != nil {
		if err == services.ErrCartItemNotFound {
			return SendError(c, errors.CartItemNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

// ClearCart removes every line from the cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.cartService.ClearCart(userID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Cart cleared",
	})
}
