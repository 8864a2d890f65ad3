package usecase

import (
	"context"
	"time"

	"voltbite/internal/domain/order"
	"voltbite/internal/domain/reservation"
	"voltbite/internal/infra"
	"voltbite/internal/notify"
	"voltbite/internal/pkg/clock"
	"voltbite/internal/pkg/errs"
	"voltbite/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const defaultLeadTime = 30 * time.Minute

type NewOrderItem struct {
	Name     string
	Price    float64
	Quantity int
}

// NewOrder is the validated input for order creation. Nil times fall back to
// the standard 30-minute lead defaults before the repository sees them.
type NewOrder struct {
	IdempotencyKey   uuid.UUID
	CustomerID       int64
	RestaurantID     int64
	ChargerID        int64
	Items            []NewOrderItem
	CustomerEta      *time.Time
	ReservationStart *time.Time
	ReservationEnd   *time.Time
}

type OrderRepository interface {
	// CreateWithReservation inserts the order, its items and the charger
	// reservation in one transaction. An overlapping reservation on the
	// charger surfaces as KindConflict and nothing is written.
	CreateWithReservation(ctx context.Context, o NewOrder) (*readmodel.OrderRM, *readmodel.ReservationRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.OrderRM, error)
	UpdateCustomerEta(ctx context.Context, orderID int64, eta time.Time) error
	UpdateFoodStatus(ctx context.Context, orderID int64, status string) error
}

type OrderUseCase interface {
	CreateOrder(ctx context.Context, o NewOrder) (*readmodel.OrderRM, *readmodel.ReservationRM, error)
	GetOrder(ctx context.Context, id int64) (*readmodel.OrderRM, error)
	// UpdateFoodStatus advances the order's food status and notifies the
	// customer. Regressions are rejected with order.ErrInvalidStatusTransition.
	UpdateFoodStatus(ctx context.Context, orderID int64, next string) (*readmodel.OrderRM, error)
}

type orderUseCaseImpl struct {
	orders OrderRepository
	hub    notify.Publisher
	clock  clock.Clock
}

func NewOrderUseCase(orders OrderRepository, hub notify.Publisher, clock clock.Clock) OrderUseCase {
	return &orderUseCaseImpl{orders: orders, hub: hub, clock: clock}
}

func (o *orderUseCaseImpl) CreateOrder(ctx context.Context, in NewOrder) (*readmodel.OrderRM, *readmodel.ReservationRM, error) {
	now := o.clock.Now()

	start := now
	if in.ReservationStart != nil {
		start = in.ReservationStart.UTC()
	}
	end := start.Add(defaultLeadTime)
	if in.ReservationEnd != nil {
		end = in.ReservationEnd.UTC()
	}
	if _, err := reservation.NewWindow(start, end); err != nil {
		return nil, nil, ErrInvalidWindow
	}
	eta := now.Add(defaultLeadTime)
	if in.CustomerEta != nil {
		eta = in.CustomerEta.UTC()
	}

	in.ReservationStart = &start
	in.ReservationEnd = &end
	in.CustomerEta = &eta

	orderRM, reservationRM, err := o.orders.CreateWithReservation(ctx, in)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, nil, ErrReservationConflict
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return orderRM, reservationRM, nil
}

func (o *orderUseCaseImpl) GetOrder(ctx context.Context, id int64) (*readmodel.OrderRM, error) {
	rm, err := o.orders.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return rm, nil
}

func (o *orderUseCaseImpl) UpdateFoodStatus(ctx context.Context, orderID int64, next string) (*readmodel.OrderRM, error) {
	rm, err := o.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}

	advanced, err := order.FoodStatus(rm.FoodStatus).Advance(order.FoodStatus(next))
	if err != nil {
		return nil, err
	}

	if err := o.orders.UpdateFoodStatus(ctx, orderID, advanced.String()); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	rm.FoodStatus = advanced.String()

	o.hub.Publish(rm.CustomerID, notify.FoodStatusChanged{
		OrderID: rm.ID,
		Status:  advanced.String(),
		Message: advanced.Message(),
		Time:    o.clock.Now(),
	})

	return rm, nil
}
