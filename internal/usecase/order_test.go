//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"voltbite/internal/domain/order"
	"voltbite/internal/infra"
	"voltbite/internal/notify"
	"voltbite/internal/pkg/clock"
	"voltbite/internal/usecase"
	"voltbite/internal/usecase/readmodel"
	usecasemock "voltbite/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *usecasemock.MockOrderRepository
	hub      *notify.Hub
	clock    *clock.MockClock
	uc       usecase.OrderUseCase
}

func (s *OrderUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = usecasemock.NewMockOrderRepository(s.mockCtrl)
	s.hub = notify.NewHub()
	s.clock = clock.NewMockClock(baseTime)
	s.uc = usecase.NewOrderUseCase(s.repo, s.hub, s.clock)
}

func (s *OrderUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderUseCaseSuite(t *testing.T) {
	suite.Run(t, new(OrderUseCaseTestSuite))
}

func fixedOrder() *readmodel.OrderRM {
	return &readmodel.OrderRM{
		ID:           201,
		CustomerID:   55,
		RestaurantID: 9,
		TotalPrice:   24.5,
		CustomerEta:  baseTime.Add(30 * time.Minute),
		FoodStatus:   order.StatusPending.String(),
		CreatedAt:    baseTime,
	}
}

func (s *OrderUseCaseTestSuite) TestCreateOrder() {
	s.Run("missing times fall back to 30-minute defaults", func() {
		var captured usecase.NewOrder
		s.repo.EXPECT().
			CreateWithReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o usecase.NewOrder) (*readmodel.OrderRM, *readmodel.ReservationRM, error) {
				captured = o
				return fixedOrder(), fixedReservation(), nil
			})

		_, _, err := s.uc.CreateOrder(context.Background(), usecase.NewOrder{
			CustomerID:   55,
			RestaurantID: 9,
			ChargerID:    7,
			Items:        []usecase.NewOrderItem{{Name: "ramen", Price: 12.5, Quantity: 2}},
		})
		s.NoError(err)
		s.Equal(baseTime, *captured.ReservationStart)
		s.Equal(baseTime.Add(30*time.Minute), *captured.ReservationEnd)
		s.Equal(baseTime.Add(30*time.Minute), *captured.CustomerEta)
	})

	s.Run("explicit times pass through normalized to UTC", func() {
		jst := time.FixedZone("JST", 9*3600)
		start := time.Date(2025, 6, 1, 20, 0, 0, 0, jst)
		end := start.Add(45 * time.Minute)

		var captured usecase.NewOrder
		s.repo.EXPECT().
			CreateWithReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o usecase.NewOrder) (*readmodel.OrderRM, *readmodel.ReservationRM, error) {
				captured = o
				return fixedOrder(), fixedReservation(), nil
			})

		_, _, err := s.uc.CreateOrder(context.Background(), usecase.NewOrder{
			CustomerID:       55,
			ChargerID:        7,
			ReservationStart: &start,
			ReservationEnd:   &end,
		})
		s.NoError(err)
		s.Equal(time.UTC, captured.ReservationStart.Location())
		s.True(captured.ReservationStart.Equal(start))
	})

	s.Run("inverted window is rejected before touching storage", func() {
		start := baseTime.Add(time.Hour)
		end := baseTime

		_, _, err := s.uc.CreateOrder(context.Background(), usecase.NewOrder{
			CustomerID:       55,
			ChargerID:        7,
			ReservationStart: &start,
			ReservationEnd:   &end,
		})
		s.ErrorIs(err, usecase.ErrInvalidWindow)
	})

	s.Run("overlapping reservation surfaces as a conflict", func() {
		s.repo.EXPECT().
			CreateWithReservation(gomock.Any(), gomock.Any()).
			Return(nil, nil, infra.WrapRepoErr(infra.KindConflict, "charger already reserved", nil))

		_, _, err := s.uc.CreateOrder(context.Background(), usecase.NewOrder{CustomerID: 55, ChargerID: 7})
		s.ErrorIs(err, usecase.ErrReservationConflict)
	})
}

func (s *OrderUseCaseTestSuite) TestUpdateFoodStatus() {
	s.Run("advancing persists and notifies the customer", func() {
		rm := fixedOrder()
		mb := s.hub.Attach(rm.CustomerID)
		defer s.hub.Detach(rm.CustomerID, mb)

		s.repo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		s.repo.EXPECT().UpdateFoodStatus(gomock.Any(), rm.ID, "cooking").Return(nil)

		got, err := s.uc.UpdateFoodStatus(context.Background(), rm.ID, "cooking")
		s.NoError(err)
		s.Equal("cooking", got.FoodStatus)

		events := mb.Drain()
		s.Require().Len(events, 1)
		changed, ok := events[0].(notify.FoodStatusChanged)
		s.Require().True(ok)
		s.Equal(rm.ID, changed.OrderID)
		s.Equal("cooking", changed.Status)
		s.Equal("Your meal is now being cooked.", changed.Message)
	})

	s.Run("regression is rejected without persisting or notifying", func() {
		rm := fixedOrder()
		rm.FoodStatus = order.StatusReady.String()
		mb := s.hub.Attach(rm.CustomerID)
		defer s.hub.Detach(rm.CustomerID, mb)

		s.repo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		_, err := s.uc.UpdateFoodStatus(context.Background(), rm.ID, "cooking")
		s.ErrorIs(err, order.ErrInvalidStatusTransition)
		s.Empty(mb.Drain())
	})

	s.Run("unknown order surfaces as not found", func() {
		s.repo.EXPECT().FindByID(gomock.Any(), int64(999)).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", nil))

		_, err := s.uc.UpdateFoodStatus(context.Background(), 999, "cooking")
		s.ErrorIs(err, usecase.ErrOrderNotFound)
	})
}
