package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/services"
	"eyesonplants/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestOrderHandler(t *testing.T) {
	suite.Run(t, new(OrderHandlerSuite))
}

type OrderHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	orderService *service_mocks.MockOrderServiceInterface
	handler      *OrderHandler
	e            *echo.Echo
}

func (s *OrderHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orderService = service_mocks.NewMockOrderServiceInterface(s.ctrl)
	s.handler = NewOrderHandler(s.orderService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *OrderHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrderHandlerSuite) authedContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", int64(42))
	return c, rec
}

func (s *OrderHandlerSuite) TestPlaceOrder() {
	checkoutBody := `{"shippingAddress":"1 Garden Lane","paymentMethod":"card"}`

	s.Run("checks out the cart", func() {
		order := &dto.OrderResponse{
			ID:          100,
			UserID:      42,
			Status:      "PENDING",
			TotalAmount: "59.97",
			Items: []dto.OrderItemResponse{
				{ID: 1, ProductID: 9, ProductName: "Monstera Deliciosa", Quantity: 3, PricePerUnit: "19.99", TotalPrice: "59.97"},
			},
		}

		s.orderService.EXPECT().
			PlaceOrder(int64(42), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(order, nil).
			Times(1)

		c, rec := s.authedContext(http.MethodPost, "/api/v1/orders", checkoutBody)

		s.NoError(s.handler.PlaceOrder(c))
		s.Equal(http.StatusCreated, rec.Code)

		var response dto.OrderResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("PENDING", response.Status)
		s.Equal("59.97", response.TotalAmount)
	})

	s.Run("empty cart", func() {
		s.orderService.EXPECT().
			PlaceOrder(int64(42), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrCartEmpty).
			Times(1)

		c, rec := s.authedContext(http.MethodPost, "/api/v1/orders", checkoutBody)

		s.NoError(s.handler.PlaceOrder(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "CART_004")
	})

	s.Run("stock ran out between cart and checkout", func() {
		s.orderService.EXPECT().
			PlaceOrder(int64(42), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrNotEnoughStock).
			Times(1)

		c, rec := s.authedContext(http.MethodPost, "/api/v1/orders", checkoutBody)

		s.NoError(s.handler.PlaceOrder(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "PRODUCT_003")
	})

	s.Run("missing shipping address fails validation", func() {
		c, _ := s.authedContext(http.MethodPost, "/api/v1/orders", `{"paymentMethod":"card"}`)

		s.Error(s.handler.PlaceOrder(c))
	})
}

func (s *OrderHandlerSuite) TestGetOrder() {
	s.Run("owner reads own order", func() {
		order := &dto.OrderResponse{ID: 100, UserID: 42, Status: "SHIPPED"}

		s.orderService.EXPECT().
			GetOrder(int64(42), int64(100), false).
			Return(order, nil).
			Times(1)

		c, rec := s.authedContext(http.MethodGet, "/api/v1/orders/100", "")
		c.SetParamNames("id")
		c.SetParamValues("100")

		s.NoError(s.handler.GetOrder(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("admin flag is forwarded", func() {
		order := &dto.OrderResponse{ID: 100, UserID: 7, Status: "SHIPPED"}

		s.orderService.EXPECT().
			GetOrder(int64(42), int64(100), true).
			Return(order, nil).
			Times(1)

		c, rec := s.authedContext(http.MethodGet, "/api/v1/orders/100", "")
		c.Set("is_admin", true)
		c.SetParamNames("id")
		c.SetParamValues("100")

		s.NoError(s.handler.GetOrder(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("someone else's order reads as not found", func() {
		s.orderService.EXPECT().
			GetOrder(int64(42), int64(100), false).
			Return(nil, services.ErrOrderNotOwned).
			Times(1)

		c, rec := s.authedContext(http.MethodGet, "/api/v1/orders/100", "")
		c.SetParamNames("id")
		c.SetParamValues("100")

		s.NoError(s.handler.GetOrder(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "ORDER_001")
	})
}

func (s *OrderHandlerSuite) TestListOrders() {
	s.Run("lists the caller's orders", func() {
		listing := &dto.ListOrdersResponse{
			Orders: []dto.OrderResponse{
				{ID: 100, UserID: 42, Status: "DELIVERED"},
			},
			Pagination: dto.PaginationInfo{Page: 1, Size: 20, Total: 1, TotalPages: 1},
		}

		s.orderService.EXPECT().
			ListOrders(int64(42), gomock.Any(), gomock.Any()).
			Return(listing, nil).
			Times(1)

		c, rec := s.authedContext(http.MethodGet, "/api/v1/orders?status=DELIVERED", "")

		s.NoError(s.handler.ListOrders(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.ListOrdersResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Len(response.Orders, 1)
	})

	s.Run("bad status filter", func() {
		s.orderService.EXPECT().
			ListOrders(int64(42), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidStatus).
			Times(1)

		c, rec := s.authedContext(http.MethodGet, "/api/v1/orders?status=TELEPORTED", "")

		s.NoError(s.handler.ListOrders(c))
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *OrderHandlerSuite) TestUpdateOrderStatus() {
	s.Run("ships an order with tracking number", func() {
		order := &dto.OrderResponse{ID: 100, Status: "SHIPPED", TrackingNumber: "TRK-1"}

		s.orderService.EXPECT().
			UpdateOrderStatus(int64(100), gomock.Any(), int64(42), gomock.Any(), gomock.Any()).
			Return(order, nil).
			Times(1)

		body := `{"status":"SHIPPED","trackingNumber":"TRK-1"}`
		c, rec := s.authedContext(http.MethodPut, "/api/v1/admin/orders/100/status", body)
		c.SetParamNames("id")
		c.SetParamValues("100")

		s.NoError(s.handler.UpdateOrderStatus(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "TRK-1")
	})

	s.Run("illegal transition", func() {
		s.orderService.EXPECT().
			UpdateOrderStatus(int64(100), gomock.Any(), int64(42), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidTransition).
			Times(1)

		body := `{"status":"PENDING"}`
		c, rec := s.authedContext(http.MethodPut, "/api/v1/admin/orders/100/status", body)
		c.SetParamNames("id")
		c.SetParamValues("100")

		s.NoError(s.handler.UpdateOrderStatus(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "ORDER_003")
	})

	s.Run("unknown status fails validation", func() {
		body := `{"status":"TELEPORTED"}`
		c, _ := s.authedContext(http.MethodPut, "/api/v1/admin/orders/100/status", body)
		c.SetParamNames("id")
		c.SetParamValues("100")

		s.Error(s.handler.UpdateOrderStatus(c))
	})
}

func (s *OrderHandlerSuite) TestCancelOrder() {
	s.Run("cancels a pending order", func() {
		order := &dto.OrderResponse{ID: 100, UserID: 42, Status: "CANCELLED"}

		s.orderService.EXPECT().
			CancelOrder(int64(42), int64(100), gomock.Any(), gomock.Any()).
			Return(order, nil).
			Times(1)

		c, rec := s.authedContext(http.MethodPost, "/api/v1/orders/100/cancel", "")
		c.SetParamNames("id")
		c.SetParamValues("100")

		s.NoError(s.handler.CancelOrder(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "CANCELLED")
	})

	s.Run("shipped orders cannot be cancelled", func() {
		s.orderService.EXPECT().
			CancelOrder(int64(42), int64(100), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrNotCancellable).
			Times(1)

		c, rec := s.authedContext(http.MethodPost, "/api/v1/orders/100/cancel", "")
		c.SetParamNames("id")
		c.SetParamValues("100")

		s.NoError(s.handler.CancelOrder(c))
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "ORDER_004")
	})
}
