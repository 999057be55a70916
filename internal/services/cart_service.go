package services

import (
	"errors"
	"fmt"
	"log/slog"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrNotEnoughStock   = errors.New("not enough stock available")
)

// CartService handles shopping cart business logic. Stock is checked when
// items are added but only reserved at checkout.
type CartService struct {
	cartRepo    repositories.CartRepositoryInterface
	productRepo repositories.ProductRepositoryInterface
	logger      *slog.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo repositories.CartRepositoryInterface,
	productRepo repositories.ProductRepositoryInterface,
	logger *slog.Logger,
) CartServiceInterface {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart returns the user's cart, creating an empty one on first use
func (s *CartService) GetCart(userID int64) (*dto.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	resp := toCartResponse(cart)
	return &resp, nil
}

// AddItem adds a product to the user's cart, merging with an existing line
// for the same product.
func (s *CartService) AddItem(userID int64, req *dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	requested := req.Quantity
	for _, item := range cart.Items {
		if item.ProductID == req.ProductID {
			requested += item.Quantity
		}
	}
	if requested > product.Stock {
		return nil, ErrNotEnoughStock
	}

	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	if err := s.cartRepo.AddItem(cart.ID, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.logger.Info("cart item added",
		"user_id", userID,
		"product_id", req.ProductID,
		"quantity", req.Quantity)

	return s.GetCart(userID)
}

// UpdateItemQuantity sets the quantity of one cart line
func (s *CartService) UpdateItemQuantity(userID, itemID int64, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	cart, item, err := s.findItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Quantity > item.Product.Stock {
		return nil, ErrNotEnoughStock
	}

	if err := s.cartRepo.UpdateItemQuantity(cart.ID, itemID, req.Quantity); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return s.GetCart(userID)
}

// RemoveItem deletes one line from the user's cart
func (s *CartService) RemoveItem(userID, itemID int64) (*dto.CartResponse, error) {
	cart, _, err := s.findItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.RemoveItem(cart.ID, itemID); err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return s.GetCart(userID)
}

// ClearCart empties the user's cart
func (s *CartService) ClearCart(userID int64) error {
	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to get cart: %w", err)
	}

	if err := s.cartRepo.Clear(cart.ID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func (s *CartService) findItem(userID, itemID int64) (*models.Cart, *models.CartItem, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get cart: %w", err)
	}

	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			return cart, &cart.Items[i], nil
		}
	}

	return nil, nil, ErrCartItemNotFound
}

func toCartResponse(cart *models.Cart) dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, dto.CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Product:   toProductResponse(&item.Product),
			Quantity:  item.Quantity,
			LineTotal: lineTotal.StringFixed(2),
			AddedAt:   item.AddedAt,
		})
	}

	return dto.CartResponse{
		ID:    cart.ID,
		Items: items,
		Total: cart.Total().StringFixed(2),
	}
}
