package repository

import (
	"context"
	"errors"
	"time"

	"voltbite/internal/infra"
	"voltbite/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

type ChargingRepository struct {
	db DBTX
}

func NewChargingRepository(db DBTX) *ChargingRepository {
	return &ChargingRepository{db: db}
}

// UpdateCharging lands telemetry on the reservation whose window covers now.
// The covering-window predicate doubles as the authorization check: a charger
// with no active reservation has nowhere to write and the update is rejected.
func (r *ChargingRepository) UpdateCharging(ctx context.Context, chargerID int64, upd readmodel.ChargingUpdate, now time.Time) (*readmodel.ChargingTargetRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE reservations res
		SET current_soc = $2,
		    cumulative_price_of_charge = $3,
		    cumulative_power = $4
		FROM orders o
		WHERE res.order_id = o.id
		  AND res.charger_id = $1
		  AND res.reservation_start <= $5
		  AND $5 < res.reservation_end
		RETURNING res.id, res.order_id, o.customer_id`,
		chargerID, upd.CurrentSoc, upd.CumulativePriceOfCharge, upd.CumulativePower, now,
	)

	var target readmodel.ChargingTargetRM
	if err := row.Scan(&target.ReservationID, &target.OrderID, &target.CustomerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no reservation covers this charger now", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to record charge update", err)
	}
	return &target, nil
}

func (r *ChargingRepository) SetTimeOfPayment(ctx context.Context, reservationID int64, paidAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET time_of_payment = $2 WHERE id = $1`,
		reservationID, paidAt,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to set time of payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return nil
}
