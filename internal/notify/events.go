package notify

import "time"

// Event is the closed set of payloads pushed over a notification stream.
// One variant exists per wire event name so consumers can switch on the
// concrete type instead of sniffing loosely-typed maps.
type Event interface {
	EventName() string
}

// Connected is sent once when a stream attaches.
type Connected struct {
	Time time.Time `json:"time"`
}

func (Connected) EventName() string { return "connected" }

// Ping is the heartbeat emitted on idle streams.
type Ping struct {
	Time time.Time `json:"time"`
}

func (Ping) EventName() string { return "ping" }

// Notification is the generic message variant, used for charging
// start/stop announcements among others.
type Notification struct {
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func (Notification) EventName() string { return "notification" }

// FoodStatusChanged reports a food_status advance on the customer's order.
type FoodStatusChanged struct {
	OrderID int64     `json:"order_id"`
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func (FoodStatusChanged) EventName() string { return "food_status" }

// ReservationShiftSuccess reports that a lateness-driven shift committed.
type ReservationShiftSuccess struct {
	ReservationID int64     `json:"reservation_id"`
	NewEnd        time.Time `json:"new_end"`
	Time          time.Time `json:"time"`
}

func (ReservationShiftSuccess) EventName() string { return "reservation_shift_success" }

// ReservationShiftNotAllowed reports that a shift was blocked by a
// conflicting reservation.
type ReservationShiftNotAllowed struct {
	ReservationID int64     `json:"reservation_id"`
	Time          time.Time `json:"time"`
}

func (ReservationShiftNotAllowed) EventName() string { return "reservation_shift_not_allowed" }

// ChargingPaid reports that the driver settled a finished charging session.
type ChargingPaid struct {
	ChargerID int64     `json:"charger_id"`
	Time      time.Time `json:"time"`
}

func (ChargingPaid) EventName() string { return "charging_paid" }
