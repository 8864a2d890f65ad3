package usecase

import (
	"context"
	"sync"
	"time"

	"voltbite/internal/infra"
	"voltbite/internal/notify"
	"voltbite/internal/pkg/clock"
	"voltbite/internal/pkg/config"
	"voltbite/internal/pkg/errs"
	"voltbite/internal/usecase/readmodel"
)

type ChargingRepository interface {
	// UpdateCharging persists telemetry onto the reservation whose window
	// covers now on the given charger, returning who that reservation belongs
	// to. KindNotFound when no window covers now.
	UpdateCharging(ctx context.Context, chargerID int64, upd readmodel.ChargingUpdate, now time.Time) (*readmodel.ChargingTargetRM, error)
	SetTimeOfPayment(ctx context.Context, reservationID int64, paidAt time.Time) error
}

type ChargingUseCase interface {
	// RecordChargeUpdate ingests one telemetry sample from a charger. The
	// first accepted sample opens a session and notifies the driver; each
	// accepted sample re-arms the idle timer.
	RecordChargeUpdate(ctx context.Context, chargerID int64, upd readmodel.ChargingUpdate) error
	// EndCharging closes the session explicitly, stamping time_of_payment.
	EndCharging(ctx context.Context, chargerID int64, driverID int64) (time.Time, error)
	// SessionActive reports whether a charging session is open on the charger.
	SessionActive(chargerID int64) bool
}

// session tracks one live charging slot. generation is bumped every time the
// idle timer is re-armed so a timer callback that lost the race to a newer
// update (or a new session on the same charger) recognizes itself as stale.
type session struct {
	driverID      int64
	reservationID int64
	generation    uint64
	timer         *time.Timer
}

type chargingUseCaseImpl struct {
	charging ChargingRepository
	hub      notify.Publisher
	clock    clock.Clock
	policy   config.CoordinationConfig

	mu       sync.Mutex
	sessions map[int64]*session
}

func NewChargingUseCase(
	charging ChargingRepository,
	hub notify.Publisher,
	clock clock.Clock,
	cfg config.Config,
) ChargingUseCase {
	return &chargingUseCaseImpl{
		charging: charging,
		hub:      hub,
		clock:    clock,
		policy:   cfg.Coordination,
		sessions: make(map[int64]*session),
	}
}

func (c *chargingUseCaseImpl) RecordChargeUpdate(ctx context.Context, chargerID int64, upd readmodel.ChargingUpdate) error {
	target, err := c.charging.UpdateCharging(ctx, chargerID, upd, c.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNoActiveReservation
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.mu.Lock()
	s, started := c.sessions[chargerID], false
	if s == nil || s.reservationID != target.ReservationID {
		if s != nil {
			s.timer.Stop()
		}
		s = &session{driverID: target.CustomerID, reservationID: target.ReservationID}
		c.sessions[chargerID] = s
		started = true
	}
	c.armIdleTimerLocked(chargerID, s)
	c.mu.Unlock()

	if started {
		c.hub.Publish(target.CustomerID, notify.Notification{
			Message: "Charging has started.",
			Time:    c.clock.Now(),
		})
	}
	return nil
}

// armIdleTimerLocked cancels any pending timer and schedules a fresh one.
// Callers hold c.mu.
func (c *chargingUseCaseImpl) armIdleTimerLocked(chargerID int64, s *session) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.generation++
	gen := s.generation
	s.timer = time.AfterFunc(c.policy.ChargingIdleTimeout, func() {
		c.finishIdle(chargerID, gen)
	})
}

// finishIdle auto-completes a session that went quiet. A stale generation
// means a newer update re-armed the timer after this callback was scheduled,
// so it does nothing.
func (c *chargingUseCaseImpl) finishIdle(chargerID int64, gen uint64) {
	c.mu.Lock()
	s := c.sessions[chargerID]
	if s == nil || s.generation != gen {
		c.mu.Unlock()
		return
	}
	delete(c.sessions, chargerID)
	driverID := s.driverID
	c.mu.Unlock()

	c.hub.Publish(driverID, notify.Notification{
		Message: "Charging has stopped.",
		Time:    c.clock.Now(),
	})
}

func (c *chargingUseCaseImpl) EndCharging(ctx context.Context, chargerID int64, driverID int64) (time.Time, error) {
	c.mu.Lock()
	s := c.sessions[chargerID]
	if s == nil || s.driverID != driverID {
		c.mu.Unlock()
		return time.Time{}, ErrSessionNotFound
	}
	reservationID := s.reservationID
	c.mu.Unlock()

	paidAt := c.clock.Now()
	if err := c.charging.SetTimeOfPayment(ctx, reservationID, paidAt); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return time.Time{}, ErrReservationNotFound
		}
		return time.Time{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.mu.Lock()
	// The idle timer may have fired while we were writing; only drop the
	// session if it is still the one we stamped.
	if cur := c.sessions[chargerID]; cur != nil && cur.reservationID == reservationID {
		cur.timer.Stop()
		delete(c.sessions, chargerID)
	}
	c.mu.Unlock()

	c.hub.Publish(driverID, notify.ChargingPaid{
		ChargerID: chargerID,
		Time:      paidAt,
	})
	return paidAt, nil
}

func (c *chargingUseCaseImpl) SessionActive(chargerID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessions[chargerID] != nil
}
