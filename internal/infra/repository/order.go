package repository

import (
	"context"
	"errors"
	"time"

	"voltbite/internal/infra"
	"voltbite/internal/usecase"
	"voltbite/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `
	id, customer_id, restaurant_id, total_price, customer_eta, food_status, created_at`

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*readmodel.OrderRM, error) {
	var rm readmodel.OrderRM
	err := row.Scan(
		&rm.ID, &rm.CustomerID, &rm.RestaurantID, &rm.TotalPrice,
		&rm.CustomerEta, &rm.FoodStatus, &rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.CustomerEta = rm.CustomerEta.UTC()
	return &rm, nil
}

// CreateWithReservation inserts the order, its items and the charger
// reservation in one transaction. The idempotency key is claimed first: a
// replayed request finds its key already taken and gets the original order
// back instead of a duplicate.
func (r *OrderRepository) CreateWithReservation(ctx context.Context, o usecase.NewOrder) (*readmodel.OrderRM, *readmodel.ReservationRM, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to begin order transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx,
		`INSERT INTO idempotency_keys (key, customer_id) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
		o.IdempotencyKey, o.CustomerID,
	)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to claim idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return r.findByIdempotencyKey(ctx, o)
	}

	var conflicted bool
	err = tx.QueryRow(ctx, conflictQuery, o.ChargerID, int64(0), *o.ReservationStart, *o.ReservationEnd).Scan(&conflicted)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to check reservation conflict", err)
	}
	if conflicted {
		return nil, nil, infra.WrapRepoErr(infra.KindConflict, "charger already reserved in this window", nil)
	}

	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}

	orderRow := tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, restaurant_id, total_price, customer_eta, food_status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING`+orderColumns,
		o.CustomerID, o.RestaurantID, total, *o.CustomerEta,
	)
	orderRM, err := scanOrder(orderRow)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to insert order", err)
	}

	for _, item := range o.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, name, price, quantity) VALUES ($1, $2, $3, $4)`,
			orderRM.ID, item.Name, item.Price, item.Quantity,
		)
		if err != nil {
			return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to insert order item", err)
		}
	}

	reservationRow := tx.QueryRow(ctx, `
		INSERT INTO reservations (order_id, charger_id, reservation_start, reservation_end)
		VALUES ($1, $2, $3, $4)
		RETURNING`+reservationColumns,
		orderRM.ID, o.ChargerID, *o.ReservationStart, *o.ReservationEnd,
	)
	reservationRM, err := scanReservation(reservationRow)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to insert reservation", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE idempotency_keys SET order_id = $2 WHERE key = $1`,
		o.IdempotencyKey, orderRM.ID,
	)
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to complete idempotency key", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to commit order", err)
	}
	return orderRM, reservationRM, nil
}

func (r *OrderRepository) findByIdempotencyKey(ctx context.Context, o usecase.NewOrder) (*readmodel.OrderRM, *readmodel.ReservationRM, error) {
	var orderID *int64
	err := r.db.QueryRow(ctx,
		`SELECT order_id FROM idempotency_keys WHERE key = $1 AND customer_id = $2`,
		o.IdempotencyKey, o.CustomerID,
	).Scan(&orderID)
	if err != nil || orderID == nil {
		// Key claimed by someone else, or the original request never
		// completed. Either way the replay cannot be satisfied.
		return nil, nil, infra.WrapRepoErr(infra.KindConflict, "idempotency key already in use", err)
	}

	orderRM, err := scanOrder(r.db.QueryRow(ctx, `SELECT`+orderColumns+` FROM orders WHERE id = $1`, *orderID))
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load original order", err)
	}
	reservationRM, err := scanReservation(r.db.QueryRow(ctx, `SELECT`+reservationColumns+` FROM reservations WHERE order_id = $1`, *orderID))
	if err != nil {
		return nil, nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load original reservation", err)
	}
	return orderRM, reservationRM, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*readmodel.OrderRM, error) {
	rm, err := scanOrder(r.db.QueryRow(ctx, `SELECT`+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query order", err)
	}
	return rm, nil
}

func (r *OrderRepository) UpdateCustomerEta(ctx context.Context, orderID int64, eta time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET customer_eta = $2 WHERE id = $1`, orderID, eta)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update customer eta", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}

func (r *OrderRepository) UpdateFoodStatus(ctx context.Context, orderID int64, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET food_status = $2 WHERE id = $1`, orderID, status)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update food status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "order not found", nil)
	}
	return nil
}
