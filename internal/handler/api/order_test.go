//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"voltbite/internal/domain/order"
	"voltbite/internal/handler/api"
	resdto "voltbite/internal/handler/dto/response"
	"voltbite/internal/usecase"
	"voltbite/internal/usecase/readmodel"
	"voltbite/tests/common/httptest"
	usecasemock "voltbite/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func testOrderRM() *readmodel.OrderRM {
	return &readmodel.OrderRM{
		ID:           201,
		CustomerID:   testUserID,
		RestaurantID: 9,
		TotalPrice:   25,
		CustomerEta:  testStart.Add(30 * time.Minute),
		FoodStatus:   order.StatusPending.String(),
		CreatedAt:    testStart,
	}
}

func validCreateOrderBody() map[string]any {
	return map[string]any{
		"restaurant_id": 9,
		"charger_id":    7,
		"items": []map[string]any{
			{"name": "ramen", "price": 12.5, "quantity": 2},
		},
	}
}

type OrderHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockOrder *usecasemock.MockOrderUseCase
	mockEta   *usecasemock.MockEtaUseCase
	handler   *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrder = usecasemock.NewMockOrderUseCase(s.mockCtrl)
	s.mockEta = usecasemock.NewMockEtaUseCase(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockOrder, s.mockEta)

	auth := stubAuth(testUserID, "driver")
	s.router.POST("/orders", auth, s.handler.Create)
	s.router.GET("/orders/:id", auth, s.handler.Get)
	s.router.PATCH("/orders/:id/food-status", auth, s.handler.UpdateFoodStatus)
	s.router.POST("/orders/:id/my-eta", auth, s.handler.ReportLateness)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestCreate() {
	idemKey := uuid.New()
	headers := map[string]string{"Idempotency-Key": idemKey.String()}

	s.Run("success: returns 201 with order and reservation", func() {
		var captured usecase.NewOrder
		s.mockOrder.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, o usecase.NewOrder) (*readmodel.OrderRM, *readmodel.ReservationRM, error) {
				captured = o
				return testOrderRM(), testReservationRM(), nil
			})

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders",
			validCreateOrderBody(), "token", headers)

		var resp resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(int64(201), resp.Order.ID)
		s.Equal(int64(101), resp.Reservation.ID)
		s.Equal(testUserID, captured.CustomerID)
		s.Equal(idemKey, captured.IdempotencyKey)
	})

	s.Run("missing Idempotency-Key returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders",
			validCreateOrderBody(), "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("empty items returns 400", func() {
		body := validCreateOrderBody()
		body["items"] = []map[string]any{}

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders",
			body, "token", headers)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("occupied charger returns 409", func() {
		s.mockOrder.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, nil, usecase.ErrReservationConflict)

		w := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/orders",
			validCreateOrderBody(), "token", headers)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already reserved")
	})
}

func (s *OrderHandlerTestSuite) TestUpdateFoodStatus() {
	s.Run("success: returns the advanced order", func() {
		rm := testOrderRM()
		rm.FoodStatus = order.StatusCooking.String()
		s.mockOrder.EXPECT().UpdateFoodStatus(gomock.Any(), int64(201), "cooking").Return(rm, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/orders/201/food-status",
			map[string]any{"status": "cooking"}, "token")

		var resp resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("cooking", resp.FoodStatus)
	})

	s.Run("regression returns 422", func() {
		s.mockOrder.EXPECT().UpdateFoodStatus(gomock.Any(), int64(201), "cooking").
			Return(nil, order.ErrInvalidStatusTransition)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/orders/201/food-status",
			map[string]any{"status": "cooking"}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "may only advance")
	})

	s.Run("unknown status value returns 400 at binding", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/orders/201/food-status",
			map[string]any{"status": "burnt"}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *OrderHandlerTestSuite) TestReportLateness() {
	s.Run("late driver gets the shifted reservation back", func() {
		shifted := testReservationRM()
		shifted.ReservationEnd = shifted.ReservationEnd.Add(5 * time.Minute)
		outcome := &usecase.EtaOutcome{
			CustomerEta: testStart.Add(50 * time.Minute),
			Shifted:     true,
			Reservation: shifted,
		}
		s.mockEta.EXPECT().
			ReportLateness(gomock.Any(), int64(201), testUserID, 31*time.Minute).
			Return(outcome, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/201/my-eta",
			map[string]any{"lateness_minutes": 31}, "token")

		var resp resdto.EtaResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Shifted)
		s.False(resp.OnSchedule)
		s.Equal(shifted.ReservationEnd, resp.Reservation.ReservationEnd)
	})

	s.Run("blocked shift surfaces as 409", func() {
		s.mockEta.EXPECT().
			ReportLateness(gomock.Any(), int64(201), testUserID, gomock.Any()).
			Return(nil, usecase.ErrReservationConflict)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/201/my-eta",
			map[string]any{"lateness_minutes": 31}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Conflicting reservation")
	})

	s.Run("unknown order returns 404", func() {
		s.mockEta.EXPECT().
			ReportLateness(gomock.Any(), int64(999), testUserID, gomock.Any()).
			Return(nil, usecase.ErrReservationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/999/my-eta",
			map[string]any{"lateness_minutes": 5}, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Order not found")
	})
}
