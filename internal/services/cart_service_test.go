package services

import (
	"log/slog"
	"testing"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
	"eyesonplants/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CartServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	cartRepo    *repository_mocks.MockCartRepositoryInterface
	productRepo *repository_mocks.MockProductRepositoryInterface
	cartService CartServiceInterface
}

func (s *CartServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.cartRepo = repository_mocks.NewMockCartRepositoryInterface(s.ctrl)
	s.productRepo = repository_mocks.NewMockProductRepositoryInterface(s.ctrl)
	s.cartService = NewCartService(s.cartRepo, s.productRepo, slog.Default())
}

func (s *CartServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}

func monstera() models.Product {
	return models.Product{
		ID:          5,
		UserID:      3,
		ProductName: "Monstera Deliciosa",
		Category:    models.CategoryIndoorPlant,
		Price:       decimal.RequireFromString("19.99"),
		Stock:       10,
	}
}

func (s *CartServiceTestSuite) TestGetCart_Empty() {
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(&models.Cart{ID: 11, UserID: 101}, nil).Times(1)

	resp, err := s.cartService.GetCart(101)
	s.NoError(err)
	s.Empty(resp.Items)
	s.Equal("0.00", resp.Total)
}

func (s *CartServiceTestSuite) TestGetCart_WithItems() {
	product := monstera()
	cart := &models.Cart{
		ID:     11,
		UserID: 101,
		Items: []models.CartItem{
			{ID: 1, CartID: 11, ProductID: product.ID, Quantity: 3, Product: product},
		},
	}

	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(cart, nil).Times(1)

	resp, err := s.cartService.GetCart(101)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("59.97", resp.Items[0].LineTotal)
	s.Equal("59.97", resp.Total)
}

func (s *CartServiceTestSuite) TestAddItem_Success() {
	product := monstera()
	cart := &models.Cart{ID: 11, UserID: 101}

	s.productRepo.EXPECT().GetByID(product.ID).Return(&product, nil).Times(1)
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(cart, nil).Times(1)
	s.cartRepo.EXPECT().AddItem(cart.ID, gomock.Any()).Return(nil).Times(1)
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(&models.Cart{
		ID:     11,
		UserID: 101,
		Items: []models.CartItem{
			{ID: 1, CartID: 11, ProductID: product.ID, Quantity: 2, Product: product},
		},
	}, nil).Times(1)

	resp, err := s.cartService.AddItem(101, &dto.AddCartItemRequest{ProductID: product.ID, Quantity: 2})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal("39.98", resp.Total)
}

func (s *CartServiceTestSuite) TestAddItem_ProductNotFound() {
	s.productRepo.EXPECT().GetByID(int64(404)).Return(nil, repositories.ErrProductNotFound).Times(1)

	resp, err := s.cartService.AddItem(101, &dto.AddCartItemRequest{ProductID: 404, Quantity: 1})
	s.ErrorIs(err, ErrProductNotFound)
	s.Nil(resp)
}

func (s *CartServiceTestSuite) TestAddItem_InvalidQuantity() {
	resp, err := s.cartService.AddItem(101, &dto.AddCartItemRequest{ProductID: 5, Quantity: 0})
	s.ErrorIs(err, ErrInvalidQuantity)
	s.Nil(resp)
}

func (s *CartServiceTestSuite) TestAddItem_ExceedsStock() {
	product := monstera()

	s.productRepo.EXPECT().GetByID(product.ID).Return(&product, nil).Times(1)
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(&models.Cart{ID: 11, UserID: 101}, nil).Times(1)

	resp, err := s.cartService.AddItem(101, &dto.AddCartItemRequest{ProductID: product.ID, Quantity: 11})
	s.ErrorIs(err, ErrNotEnoughStock)
	s.Nil(resp)
}

func (s *CartServiceTestSuite) TestAddItem_ExceedsStockWithExistingLine() {
	product := monstera()
	cart := &models.Cart{
		ID:     11,
		UserID: 101,
		Items: []models.CartItem{
			{ID: 1, CartID: 11, ProductID: product.ID, Quantity: 8, Product: product},
		},
	}

	s.productRepo.EXPECT().GetByID(product.ID).Return(&product, nil).Times(1)
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(cart, nil).Times(1)

	// 8 already in the cart plus 3 exceeds a stock of 10
	resp, err := s.cartService.AddItem(101, &dto.AddCartItemRequest{ProductID: product.ID, Quantity: 3})
	s.ErrorIs(err, ErrNotEnoughStock)
	s.Nil(resp)
}

func (s *CartServiceTestSuite) TestUpdateItemQuantity_Success() {
	product := monstera()
	cart := &models.Cart{
		ID:     11,
		UserID: 101,
		Items: []models.CartItem{
			{ID: 1, CartID: 11, ProductID: product.ID, Quantity: 2, Product: product},
		},
	}

	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(cart, nil).Times(1)
	s.cartRepo.EXPECT().UpdateItemQuantity(cart.ID, int64(1), 5).Return(nil).Times(1)
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(&models.Cart{
		ID:     11,
		UserID: 101,
		Items: []models.CartItem{
			{ID: 1, CartID: 11, ProductID: product.ID, Quantity: 5, Product: product},
		},
	}, nil).Times(1)

	resp, err := s.cartService.UpdateItemQuantity(101, 1, &dto.UpdateCartItemRequest{Quantity: 5})
	s.NoError(err)
	s.Equal(5, resp.Items[0].Quantity)
}

func (s *CartServiceTestSuite) TestUpdateItemQuantity_ItemNotFound() {
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(&models.Cart{ID: 11, UserID: 101}, nil).Times(1)

	resp, err := s.cartService.UpdateItemQuantity(101, 99, &dto.UpdateCartItemRequest{Quantity: 2})
	s.ErrorIs(err, ErrCartItemNotFound)
	s.Nil(resp)
}

func (s *CartServiceTestSuite) TestUpdateItemQuantity_ExceedsStock() {
	product := monstera()
	cart := &models.Cart{
		ID:     11,
		UserID: 101,
		Items: []models.CartItem{
			{ID: 1, CartID: 11, ProductID: product.ID, Quantity: 2, Product: product},
		},
	}

	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(cart, nil).Times(1)

	resp, err := s.cartService.UpdateItemQuantity(101, 1, &dto.UpdateCartItemRequest{Quantity: 11})
	s.ErrorIs(err, ErrNotEnoughStock)
	s.Nil(resp)
}

func (s *CartServiceTestSuite) TestRemoveItem_Success() {
	product := monstera()
	cart := &models.Cart{
		ID:     11,
		UserID: 101,
		Items: []models.CartItem{
			{ID: 1, CartID: 11, ProductID: product.ID, Quantity: 2, Product: product},
		},
	}

	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(cart, nil).Times(1)
	s.cartRepo.EXPECT().RemoveItem(cart.ID, int64(1)).Return(nil).Times(1)
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(&models.Cart{ID: 11, UserID: 101}, nil).Times(1)

	resp, err := s.cartService.RemoveItem(101, 1)
	s.NoError(err)
	s.Empty(resp.Items)
}

func (s *CartServiceTestSuite) TestRemoveItem_NotFound() {
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(&models.Cart{ID: 11, UserID: 101}, nil).Times(1)

	resp, err := s.cartService.RemoveItem(101, 99)
	s.ErrorIs(err, ErrCartItemNotFound)
	s.Nil(resp)
}

func (s *CartServiceTestSuite) TestClearCart() {
	s.cartRepo.EXPECT().GetOrCreateByUserID(int64(101)).Return(&models.Cart{ID: 11, UserID: 101}, nil).Times(1)
	s.cartRepo.EXPECT().Clear(int64(11)).Return(nil).Times(1)

	s.NoError(s.cartService.ClearCart(101))
}
