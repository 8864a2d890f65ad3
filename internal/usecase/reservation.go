package usecase

import (
	"context"
	"errors"
	"time"

	"voltbite/internal/infra"
	"voltbite/internal/notify"
	"voltbite/internal/pkg/clock"
	"voltbite/internal/pkg/config"
	"voltbite/internal/pkg/errs"
	"voltbite/internal/usecase/readmodel"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrReservationConflict = errors.New("conflicting reservation exists")
	ErrNoActiveReservation = errors.New("no reservation currently covers this charger")
	ErrSessionNotFound     = errors.New("charging session not found")
	ErrInvalidWindow       = errors.New("invalid reservation window")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ReservationRepository interface {
	FindByID(ctx context.Context, id int64) (*readmodel.ReservationRM, error)
	FindByOrderID(ctx context.Context, orderID int64) (*readmodel.ReservationRM, error)
	// HasConflict reports whether any reservation on the charger, other than
	// excludeID, overlaps [anchor, anchor+extension).
	HasConflict(ctx context.Context, chargerID int64, anchor time.Time, extension time.Duration, excludeID int64) (bool, error)
	// Shift pushes reservation_end forward by delta. The implementation must
	// re-check conflicts and commit atomically; a lost race surfaces as a
	// KindConflict repository error, never as a truncated shift.
	Shift(ctx context.Context, id int64, delta time.Duration) (*readmodel.ReservationRM, error)
	FindAvailableChargers(ctx context.Context, stationID int64, start, end time.Time) ([]int64, error)
}

type ReservationUseCase interface {
	GetReservation(ctx context.Context, id int64) (*readmodel.ReservationRM, error)
	GetReservationByOrder(ctx context.Context, orderID int64) (*readmodel.ReservationRM, error)
	// CanExtend reports extension eligibility within the configured
	// look-ahead window. An unknown reservation is a lookup failure, not a
	// verdict.
	CanExtend(ctx context.Context, id int64) (bool, error)
	// Extend pushes the reservation end forward by the configured extension
	// step after re-running the eligibility check. The bool result reports
	// whether the extension was allowed.
	Extend(ctx context.Context, id int64, userID int64) (*readmodel.ReservationRM, bool, error)
	AvailableChargers(ctx context.Context, stationID int64, start, end time.Time) ([]int64, error)
}

type reservationUseCaseImpl struct {
	reservations ReservationRepository
	hub          notify.Publisher
	clock        clock.Clock
	policy       config.CoordinationConfig
}

func NewReservationUseCase(
	reservations ReservationRepository,
	hub notify.Publisher,
	clock clock.Clock,
	cfg config.Config,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservations: reservations,
		hub:          hub,
		clock:        clock,
		policy:       cfg.Coordination,
	}
}

func (r *reservationUseCaseImpl) GetReservation(ctx context.Context, id int64) (*readmodel.ReservationRM, error) {
	rm, err := r.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return rm, nil
}

func (r *reservationUseCaseImpl) GetReservationByOrder(ctx context.Context, orderID int64) (*readmodel.ReservationRM, error) {
	rm, err := r.reservations.FindByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation by order")
	}
	return rm, nil
}

func (r *reservationUseCaseImpl) CanExtend(ctx context.Context, id int64) (bool, error) {
	rm, err := r.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrReservationNotFound
		}
		return false, errs.Wrap(err, "failed to find reservation")
	}

	conflicted, err := r.reservations.HasConflict(ctx, rm.ChargerID, rm.ReservationEnd, r.policy.ExtendLookahead, rm.ID)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return !conflicted, nil
}

func (r *reservationUseCaseImpl) Extend(ctx context.Context, id int64, userID int64) (*readmodel.ReservationRM, bool, error) {
	rm, err := r.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, ErrReservationNotFound
		}
		return nil, false, errs.Wrap(err, "failed to find reservation")
	}

	conflicted, err := r.reservations.HasConflict(ctx, rm.ChargerID, rm.ReservationEnd, r.policy.ExtendLookahead, rm.ID)
	if err != nil {
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if conflicted {
		r.hub.Publish(userID, notify.ReservationShiftNotAllowed{
			ReservationID: rm.ID,
			Time:          r.clock.Now(),
		})
		return rm, false, nil
	}

	shifted, err := r.reservations.Shift(ctx, id, r.policy.ExtendStep)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Eligibility raced with a new reservation; surface, don't retry.
			return nil, false, ErrReservationConflict
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.hub.Publish(userID, notify.ReservationShiftSuccess{
		ReservationID: shifted.ID,
		NewEnd:        shifted.ReservationEnd,
		Time:          r.clock.Now(),
	})

	return shifted, true, nil
}

func (r *reservationUseCaseImpl) AvailableChargers(ctx context.Context, stationID int64, start, end time.Time) ([]int64, error) {
	if !start.Before(end) {
		return nil, ErrInvalidWindow
	}

	chargers, err := r.reservations.FindAvailableChargers(ctx, stationID, start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return chargers, nil
}
