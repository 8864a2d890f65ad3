package readmodel

import "time"

// ReservationRM mirrors a reservations row. Charging telemetry columns are
// nil until the first charge update lands on the reservation.
type ReservationRM struct {
	ID                      int64      `json:"reservation_id"`
	OrderID                 int64      `json:"order_id"`
	ChargerID               int64      `json:"charger_id"`
	ReservationStart        time.Time  `json:"reservation_start"`
	ReservationEnd          time.Time  `json:"reservation_end"`
	TimeOfPayment           *time.Time `json:"time_of_payment,omitempty"`
	CurrentSoc              *float64   `json:"current_soc,omitempty"`
	CumulativePriceOfCharge *float64   `json:"cumulative_price_of_charge,omitempty"`
	CumulativePower         *float64   `json:"cumulative_power,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
}

type OrderRM struct {
	ID           int64     `json:"order_id"`
	CustomerID   int64     `json:"customer_id"`
	RestaurantID int64     `json:"restaurant_id"`
	TotalPrice   float64   `json:"total_price"`
	CustomerEta  time.Time `json:"customer_eta"`
	FoodStatus   string    `json:"food_status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChargingTargetRM identifies the reservation a charge update landed on and
// the customer it belongs to.
type ChargingTargetRM struct {
	ReservationID int64 `json:"reservation_id"`
	OrderID       int64 `json:"order_id"`
	CustomerID    int64 `json:"customer_id"`
}

// ChargingUpdate is the telemetry delta a charger reports per tick.
type ChargingUpdate struct {
	CurrentSoc              float64 `json:"current_soc"`
	CumulativePriceOfCharge float64 `json:"cumulative_price_of_charge"`
	CumulativePower         float64 `json:"cumulative_power"`
}
