package repository

import (
	"context"
	"errors"
	"time"

	"voltbite/internal/infra"
	"voltbite/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the slice of pgxpool.Pool the repositories need. Transactions open
// through Begin; everything else runs on the pool directly.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

const reservationColumns = `
	id, order_id, charger_id, reservation_start, reservation_end,
	time_of_payment, current_soc, cumulative_price_of_charge, cumulative_power,
	created_at`

type ReservationRepository struct {
	db DBTX
}

func NewReservationRepository(db DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func scanReservation(row pgx.Row) (*readmodel.ReservationRM, error) {
	var rm readmodel.ReservationRM
	err := row.Scan(
		&rm.ID, &rm.OrderID, &rm.ChargerID, &rm.ReservationStart, &rm.ReservationEnd,
		&rm.TimeOfPayment, &rm.CurrentSoc, &rm.CumulativePriceOfCharge, &rm.CumulativePower,
		&rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.ReservationStart = rm.ReservationStart.UTC()
	rm.ReservationEnd = rm.ReservationEnd.UTC()
	return &rm, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*readmodel.ReservationRM, error) {
	row := r.db.QueryRow(ctx, `SELECT`+reservationColumns+` FROM reservations WHERE id = $1`, id)
	rm, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query reservation", err)
	}
	return rm, nil
}

func (r *ReservationRepository) FindByOrderID(ctx context.Context, orderID int64) (*readmodel.ReservationRM, error) {
	row := r.db.QueryRow(ctx, `SELECT`+reservationColumns+` FROM reservations WHERE order_id = $1`, orderID)
	rm, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found for order", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query reservation by order", err)
	}
	return rm, nil
}

// Windows are half-open [start, end): back-to-back reservations share a
// boundary instant without conflicting, hence strict < on both sides.
const conflictQuery = `
	SELECT EXISTS (
		SELECT 1 FROM reservations
		WHERE charger_id = $1
		  AND id <> $2
		  AND reservation_start < $4
		  AND $3 < reservation_end
	)`

func (r *ReservationRepository) HasConflict(ctx context.Context, chargerID int64, anchor time.Time, extension time.Duration, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, conflictQuery, chargerID, excludeID, anchor, anchor.Add(extension)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check reservation conflict", err)
	}
	return exists, nil
}

func (r *ReservationRepository) Shift(ctx context.Context, id int64, delta time.Duration) (*readmodel.ReservationRM, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to begin shift transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	row := tx.QueryRow(ctx, `SELECT`+reservationColumns+` FROM reservations WHERE id = $1 FOR UPDATE`, id)
	rm, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to lock reservation", err)
	}

	// Re-check under the row lock; a reservation created between the caller's
	// eligibility check and now must block the shift, not truncate it.
	var conflicted bool
	err = tx.QueryRow(ctx, conflictQuery, rm.ChargerID, rm.ID, rm.ReservationEnd, rm.ReservationEnd.Add(delta)).Scan(&conflicted)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to re-check conflict", err)
	}
	if conflicted {
		return nil, infra.WrapRepoErr(infra.KindConflict, "conflicting reservation occupies the shift window", nil)
	}

	row = tx.QueryRow(ctx,
		`UPDATE reservations SET reservation_end = reservation_end + $2 WHERE id = $1 RETURNING`+reservationColumns,
		id, delta,
	)
	shifted, err := scanReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to shift reservation end", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to commit shift", err)
	}
	return shifted, nil
}

func (r *ReservationRepository) FindAvailableChargers(ctx context.Context, stationID int64, start, end time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id FROM chargers c
		WHERE c.station_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.charger_id = c.id
			  AND r.reservation_start < $3
			  AND $2 < r.reservation_end
		  )
		ORDER BY c.id`,
		stationID, start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query available chargers", err)
	}
	defer rows.Close()

	var chargers []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan charger id", err)
		}
		chargers = append(chargers, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read charger rows", err)
	}
	return chargers, nil
}
