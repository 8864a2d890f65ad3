package usecase

import (
	"context"
	"time"

	"voltbite/internal/infra"
	"voltbite/internal/notify"
	"voltbite/internal/pkg/clock"
	"voltbite/internal/pkg/config"
	"voltbite/internal/pkg/errs"
	"voltbite/internal/usecase/readmodel"
)

// EtaOutcome reports what a lateness report did to the reservation.
type EtaOutcome struct {
	CustomerEta time.Time
	OnSchedule  bool
	Shifted     bool
	Reservation *readmodel.ReservationRM
}

type EtaUseCase interface {
	// ReportLateness recomputes the customer's ETA from the reported lateness
	// and shifts the reservation end when the driver can no longer make the
	// window. The ETA is persisted on the order regardless of the verdict, so
	// retrying the same lateness is idempotent.
	ReportLateness(ctx context.Context, orderID int64, userID int64, lateness time.Duration) (*EtaOutcome, error)
}

type etaUseCaseImpl struct {
	reservations ReservationRepository
	orders       OrderRepository
	hub          notify.Publisher
	clock        clock.Clock
	policy       config.CoordinationConfig
}

func NewEtaUseCase(
	reservations ReservationRepository,
	orders OrderRepository,
	hub notify.Publisher,
	clock clock.Clock,
	cfg config.Config,
) EtaUseCase {
	return &etaUseCaseImpl{
		reservations: reservations,
		orders:       orders,
		hub:          hub,
		clock:        clock,
		policy:       cfg.Coordination,
	}
}

func (e *etaUseCaseImpl) ReportLateness(ctx context.Context, orderID int64, userID int64, lateness time.Duration) (*EtaOutcome, error) {
	rm, err := e.reservations.FindByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation for lateness report")
	}

	newEta := rm.ReservationStart.Add(e.policy.EtaBaseOffset).Add(lateness)

	// The recomputed ETA is persisted even when no shift happens; the kitchen
	// schedules cooking off this column.
	if err := e.orders.UpdateCustomerEta(ctx, orderID, newEta); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if newEta.Sub(rm.ReservationStart) <= e.policy.OnScheduleWindow {
		return &EtaOutcome{
			CustomerEta: newEta,
			OnSchedule:  true,
			Reservation: rm,
		}, nil
	}

	conflicted, err := e.reservations.HasConflict(ctx, rm.ChargerID, rm.ReservationEnd, e.policy.ShiftStep, rm.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if conflicted {
		e.hub.Publish(userID, notify.ReservationShiftNotAllowed{
			ReservationID: rm.ID,
			Time:          e.clock.Now(),
		})
		return &EtaOutcome{
			CustomerEta: newEta,
			Reservation: rm,
		}, nil
	}

	shifted, err := e.reservations.Shift(ctx, rm.ID, e.policy.ShiftStep)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	e.hub.Publish(userID, notify.ReservationShiftSuccess{
		ReservationID: shifted.ID,
		NewEnd:        shifted.ReservationEnd,
		Time:          e.clock.Now(),
	})

	return &EtaOutcome{
		CustomerEta: newEta,
		Shifted:     true,
		Reservation: shifted,
	}, nil
}
