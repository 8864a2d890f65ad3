package api

import (
	"errors"
	"net/http"
	"time"

	"voltbite/internal/domain/order"
	reqdto "voltbite/internal/handler/dto/request"
	resdto "voltbite/internal/handler/dto/response"
	"voltbite/internal/handler/httperr"
	"voltbite/internal/handler/middleware"
	"voltbite/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
	etaUseCase   usecase.EtaUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase, etaUseCase usecase.EtaUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
		etaUseCase:   etaUseCase,
	}
}

// @Summary Create order
// @Description Create an order with its charger reservation in one shot
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	key, err := uuid.Parse(c.GetHeader("Idempotency-Key"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key header must be a UUID", nil)
		return
	}

	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input := req.ToInput(userID)
	input.IdempotencyKey = key

	orderRM, reservationRM, err := h.orderUseCase.CreateOrder(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservation start must precede end", nil)
		case errors.Is(err, usecase.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Charger already reserved in this window", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{
		Order:       resdto.FromOrderRM(orderRM),
		Reservation: resdto.FromReservationRM(reservationRM),
	})
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rm, err := h.orderUseCase.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRM(rm))
}

// @Summary Update food status
// @Description Advance the order's food status; regressions are rejected
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body reqdto.UpdateFoodStatusRequest true "Next status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders/{id}/food-status [patch]
func (h *OrderHandler) UpdateFoodStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateFoodStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rm, err := h.orderUseCase.UpdateFoodStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, order.ErrInvalidStatusTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Food status may only advance", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRM(rm))
}

// @Summary Report lateness
// @Description Recompute the customer's ETA and shift the reservation when the driver is running late
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body reqdto.ReportLatenessRequest true "Lateness report"
// @Success 200 {object} resdto.EtaResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/my-eta [post]
func (h *OrderHandler) ReportLateness(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	var req reqdto.ReportLatenessRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	outcome, err := h.etaUseCase.ReportLateness(c.Request.Context(), id, userID, time.Duration(req.LatenessMinutes)*time.Minute)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound), errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, usecase.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Conflicting reservation exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.EtaResponse{
		CustomerEta: outcome.CustomerEta,
		OnSchedule:  outcome.OnSchedule,
		Shifted:     outcome.Shifted,
		Reservation: resdto.FromReservationRM(outcome.Reservation),
	})
}
