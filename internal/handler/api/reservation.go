package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "voltbite/internal/handler/dto/response"
	"voltbite/internal/handler/httperr"
	"voltbite/internal/handler/middleware"
	"voltbite/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid path id"), "Invalid id format", nil)
		return 0, false
	}
	return id, true
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rm, err := h.reservationUseCase.GetReservation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationRM(rm))
}

// @Summary Check extension eligibility
// @Description Report whether the reservation can be extended without colliding with the next one
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.CanExtendResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/can-extend [get]
func (h *ReservationHandler) CanExtend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	canExtend, err := h.reservationUseCase.CanExtend(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CanExtendResponse{CanExtend: canExtend})
}

// @Summary Extend reservation
// @Description Push the reservation end forward by one extension step if the slot behind it is free
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ExtendResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/extend [patch]
func (h *ReservationHandler) Extend(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing user context"), "Internal server error", nil)
		return
	}

	rm, extended, err := h.reservationUseCase.Extend(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, usecase.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Conflicting reservation exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ExtendResponse{
		Extended:    extended,
		Reservation: resdto.FromReservationRM(rm),
	})
}

// @Summary List available chargers
// @Description Chargers at the station with no reservation overlapping the requested window
// @Tags chargers
// @Produce json
// @Security BearerAuth
// @Param station_id query int true "Station ID"
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Success 200 {object} resdto.AvailableChargersResponse
// @Failure 400 {object} httperr.Response
// @Router /chargers/available [get]
func (h *ReservationHandler) AvailableChargers(c *gin.Context) {
	stationID, err := strconv.ParseInt(c.Query("station_id"), 10, 64)
	if err != nil || stationID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("invalid station_id"), "Invalid station_id", nil)
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start time format", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end time format", nil)
		return
	}

	chargers, err := h.reservationUseCase.AvailableChargers(c.Request.Context(), stationID, start, end)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidWindow) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Window start must precede end", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if chargers == nil {
		chargers = []int64{}
	}

	c.JSON(http.StatusOK, resdto.AvailableChargersResponse{ChargerIDs: chargers})
}
