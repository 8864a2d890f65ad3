package request

import (
	"time"

	"voltbite/internal/usecase"
)

type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	RestaurantID     int64              `json:"restaurant_id" binding:"required"`
	ChargerID        int64              `json:"charger_id" binding:"required"`
	Items            []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerEta      *time.Time         `json:"customer_eta,omitempty"`
	ReservationStart *time.Time         `json:"reservation_start,omitempty"`
	ReservationEnd   *time.Time         `json:"reservation_end,omitempty"`
}

func (r CreateOrderRequest) ToInput(customerID int64) usecase.NewOrder {
	items := make([]usecase.NewOrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = usecase.NewOrderItem{Name: item.Name, Price: item.Price, Quantity: item.Quantity}
	}
	return usecase.NewOrder{
		CustomerID:       customerID,
		RestaurantID:     r.RestaurantID,
		ChargerID:        r.ChargerID,
		Items:            items,
		CustomerEta:      r.CustomerEta,
		ReservationStart: r.ReservationStart,
		ReservationEnd:   r.ReservationEnd,
	}
}

type UpdateFoodStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending cooking ready picked_up"`
}

type ReportLatenessRequest struct {
	// Zero and negative values are meaningful (on time / early), so no
	// required binding here.
	LatenessMinutes int `json:"lateness_minutes"`
}
