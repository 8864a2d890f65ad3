package response

import (
	"time"

	"voltbite/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID                      int64      `json:"id"`
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

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	var resp ReservationResponse
	// Field names line up one to one with the read model.
	_ = copier.Copy(&resp, rm)
	return &resp
}

type CanExtendResponse struct {
	CanExtend bool `json:"can_extend"`
}

type ExtendResponse struct {
	Extended    bool                 `json:"extended"`
	Reservation *ReservationResponse `json:"reservation"`
}

type AvailableChargersResponse struct {
	ChargerIDs []int64 `json:"charger_ids"`
}

type EtaResponse struct {
	CustomerEta time.Time            `json:"customer_eta"`
	OnSchedule  bool                 `json:"on_schedule"`
	Shifted     bool                 `json:"shifted"`
	Reservation *ReservationResponse `json:"reservation"`
}
