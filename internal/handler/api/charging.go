package api

import (
	"errors"
	"net/http"

	reqdto "voltbite/internal/handler/dto/request"
	resdto "voltbite/internal/handler/dto/response"
	"voltbite/internal/handler/httperr"
	"voltbite/internal/handler/middleware"
	"voltbite/internal/usecase"
	"voltbite/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

type ChargingHandler struct {
	chargingUseCase usecase.ChargingUseCase
}

func NewChargingHandler(chargingUseCase usecase.ChargingUseCase) *ChargingHandler {
	return &ChargingHandler{
		chargingUseCase: chargingUseCase,
	}
}

// @Summary Record charge update
// @Description Ingest one telemetry sample from a charger; rejected when no reservation covers now
// @Tags charging
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ChargeUpdateRequest true "Telemetry sample"
// @Success 204
// @Failure 422 {object} httperr.Response
// @Router /charging [patch]
func (h *ChargingHandler) Update(c *gin.Context) {
	var req reqdto.ChargeUpdateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	err := h.chargingUseCase.RecordChargeUpdate(c.Request.Context(), req.ChargerID, readmodel.ChargingUpdate{
		CurrentSoc:              req.CurrentSoc,
		CumulativePriceOfCharge: req.CumulativePriceOfCharge,
		CumulativePower:         req.CumulativePower,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNoActiveReservation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No reservation covers this charger now", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Finish charging
// @Description Explicitly close the driver's charging session and stamp time of payment
// @Tags charging
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FinishChargingRequest true "Charger to release"
// @Success 200 {object} resdto.FinishChargingResponse
// @Failure 404 {object} httperr.Response
// @Router /charging/finish [post]
func (h *ChargingHandler) Finish(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	var req reqdto.FinishChargingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	paidAt, err := h.chargingUseCase.EndCharging(c.Request.Context(), req.ChargerID, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSessionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Charging session not found", nil)
		case errors.Is(err, usecase.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FinishChargingResponse{
		ChargerID:     req.ChargerID,
		TimeOfPayment: paidAt,
	})
}
