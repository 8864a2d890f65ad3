package response

import (
	"time"

	"voltbite/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	RestaurantID int64     `json:"restaurant_id"`
	TotalPrice   float64   `json:"total_price"`
	CustomerEta  time.Time `json:"customer_eta"`
	FoodStatus   string    `json:"food_status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromOrderRM(rm *readmodel.OrderRM) *OrderResponse {
	var resp OrderResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

type CreateOrderResponse struct {
	Order       *OrderResponse       `json:"order"`
	Reservation *ReservationResponse `json:"reservation"`
}

type FinishChargingResponse struct {
	ChargerID     int64     `json:"charger_id"`
	TimeOfPayment time.Time `json:"time_of_payment"`
}
