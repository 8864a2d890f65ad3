//go:build e2e

package coordination_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"voltbite/internal/handler/dto/request"
	"voltbite/internal/handler/middleware"
	"voltbite/internal/handler/dto/response"
	"voltbite/tests/common/dbtest"
	ht "voltbite/tests/common/httptest"
	"voltbite/tests/e2e"
	jwtHelper "voltbite/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL            = "/api/orders"
	availableChargersURL = "/api/chargers/available"
	chargingURL          = "/api/charging"
	finishChargingURL    = "/api/charging/finish"
)

const (
	driverID     = int64(1001)
	otherDriver  = int64(1002)
	restaurantID = int64(2001)
	chargerUser  = int64(3001)
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func orderPath(id int64) string {
	return ordersURL + "/" + formatID(id)
}

func reservationPath(id int64) string {
	return "/api/reservations/" + formatID(id)
}

type coordinationSuite struct {
	e2e.SharedSuite
	jwt *jwtHelper.JWTTestHelper
}

func TestCoordinationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(coordinationSuite))
}

func (s *coordinationSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = jwtHelper.NewJWTTestHelper(s.Config.JWT)
}

func (s *coordinationSuite) chargerIDs() []int64 {
	stationID := dbtest.DefaultStationID(s.T(), s.DB)
	return dbtest.StationChargerIDs(s.T(), s.DB, stationID)
}

func (s *coordinationSuite) createOrder(t *testing.T, token string, chargerID int64, start, end *time.Time) (*response.CreateOrderResponse, uuid.UUID) {
	t.Helper()

	key := uuid.New()
	req := request.CreateOrderRequest{
		RestaurantID: restaurantID,
		ChargerID:    chargerID,
		Items: []request.OrderItemRequest{
			{Name: "Katsu Curry", Price: 12.5, Quantity: 1},
			{Name: "Green Tea", Price: 2.0, Quantity: 2},
		},
		ReservationStart: start,
		ReservationEnd:   end,
	}

	w := ht.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, req, token,
		map[string]string{"Idempotency-Key": key.String()})

	var created response.CreateOrderResponse
	ht.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.NotNil(t, created.Order)
	require.NotNil(t, created.Reservation)
	return &created, key
}

func (s *coordinationSuite) TestOrderLifecycle() {
	s.Run("order and reservation are created together", func() {
		t := s.T()
		token := s.jwt.DriverToken(t, driverID)
		chargers := s.chargerIDs()

		created, key := s.createOrder(t, token, chargers[0], nil, nil)

		require.Equal(t, driverID, created.Order.CustomerID)
		require.Equal(t, restaurantID, created.Order.RestaurantID)
		require.InDelta(t, 16.5, created.Order.TotalPrice, 0.001)
		require.Equal(t, "pending", created.Order.FoodStatus)
		require.Equal(t, chargers[0], created.Reservation.ChargerID)
		require.Equal(t, 30*time.Minute,
			created.Reservation.ReservationEnd.Sub(created.Reservation.ReservationStart))

		// Replaying the same idempotency key must return the original order.
		replay := request.CreateOrderRequest{
			RestaurantID: restaurantID,
			ChargerID:    chargers[0],
			Items:        []request.OrderItemRequest{{Name: "Katsu Curry", Price: 12.5, Quantity: 1}},
		}
		w := ht.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, replay, token,
			map[string]string{"Idempotency-Key": key.String()})
		var replayed response.CreateOrderResponse
		ht.AssertSuccessResponse(t, w, http.StatusCreated, &replayed)
		require.Equal(t, created.Order.ID, replayed.Order.ID)
		require.Equal(t, created.Reservation.ID, replayed.Reservation.ID)

		// The order and reservation are retrievable individually.
		w = ht.PerformRequest(t, s.Router, http.MethodGet, orderPath(created.Order.ID), nil, token)
		var fetched response.OrderResponse
		ht.AssertSuccessResponse(t, w, http.StatusOK, &fetched)

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.OrderResponse{}, "CustomerEta", "CreatedAt"),
		}
		if diff := cmp.Diff(created.Order, &fetched, opts...); diff != "" {
			t.Errorf("Order response mismatch (-want +got):\n%s", diff)
		}
		require.True(t, created.Order.CustomerEta.Equal(fetched.CustomerEta))

		w = ht.PerformRequest(t, s.Router, http.MethodGet, reservationPath(created.Reservation.ID), nil, token)
		var res response.ReservationResponse
		ht.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, created.Reservation.ID, res.ID)
	})

	s.Run("overlapping reservation on the same charger is rejected", func() {
		t := s.T()
		chargers := s.chargerIDs()
		start := time.Now().UTC().Truncate(time.Second)
		end := start.Add(30 * time.Minute)

		s.createOrder(t, s.jwt.DriverToken(t, driverID), chargers[0], &start, &end)

		overlapStart := start.Add(15 * time.Minute)
		overlapEnd := overlapStart.Add(30 * time.Minute)
		req := request.CreateOrderRequest{
			RestaurantID:     restaurantID,
			ChargerID:        chargers[0],
			Items:            []request.OrderItemRequest{{Name: "Ramen", Price: 9.0, Quantity: 1}},
			ReservationStart: &overlapStart,
			ReservationEnd:   &overlapEnd,
		}
		w := ht.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, req,
			s.jwt.DriverToken(t, otherDriver),
			map[string]string{"Idempotency-Key": uuid.New().String()})
		ht.AssertErrorResponse(t, w, http.StatusConflict, "already reserved")
	})

	s.Run("back to back reservations share a boundary", func() {
		t := s.T()
		chargers := s.chargerIDs()
		start := time.Now().UTC().Truncate(time.Second)
		mid := start.Add(30 * time.Minute)
		end := mid.Add(30 * time.Minute)

		s.createOrder(t, s.jwt.DriverToken(t, driverID), chargers[0], &start, &mid)
		s.createOrder(t, s.jwt.DriverToken(t, otherDriver), chargers[0], &mid, &end)
	})

	s.Run("available chargers excludes the reserved one", func() {
		t := s.T()
		token := s.jwt.DriverToken(t, driverID)
		stationID := dbtest.DefaultStationID(t, s.DB)
		chargers := dbtest.StationChargerIDs(t, s.DB, stationID)
		start := time.Now().UTC().Truncate(time.Second)
		end := start.Add(30 * time.Minute)

		s.createOrder(t, token, chargers[0], &start, &end)

		w := ht.PerformRequest(t, s.Router, http.MethodGet,
			availableChargersURL+"?station_id="+formatID(stationID)+
				"&start="+start.Format(time.RFC3339)+"&end="+end.Format(time.RFC3339),
			nil, token)
		var available response.AvailableChargersResponse
		ht.AssertSuccessResponse(t, w, http.StatusOK, &available)
		require.NotContains(t, available.ChargerIDs, chargers[0])
		require.ElementsMatch(t, chargers[1:], available.ChargerIDs)
	})
}

func (s *coordinationSuite) TestChargingFlow() {
	s.Run("telemetry lands on the covering reservation and finish stamps payment", func() {
		t := s.T()
		driverToken := s.jwt.DriverToken(t, driverID)
		chargers := s.chargerIDs()
		start := time.Now().UTC().Add(-time.Minute).Truncate(time.Second)
		end := start.Add(30 * time.Minute)

		created, _ := s.createOrder(t, driverToken, chargers[0], &start, &end)

		update := request.ChargeUpdateRequest{
			ChargerID:               chargers[0],
			CurrentSoc:              42.0,
			CumulativePriceOfCharge: 3.0,
			CumulativePower:         20.0,
		}
		w := ht.PerformRequest(t, s.Router, http.MethodPatch, chargingURL, update,
			s.jwt.ChargerToken(t, chargerUser))
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		var soc *float64
		err := s.DB.QueryRow(context.Background(),
			"SELECT current_soc FROM reservations WHERE id = $1", created.Reservation.ID).Scan(&soc)
		require.NoError(t, err)
		require.NotNil(t, soc)
		require.InDelta(t, 42.0, *soc, 0.001)

		w = ht.PerformRequest(t, s.Router, http.MethodPost, finishChargingURL,
			request.FinishChargingRequest{ChargerID: chargers[0]}, driverToken)
		var finished response.FinishChargingResponse
		ht.AssertSuccessResponse(t, w, http.StatusOK, &finished)
		require.Equal(t, chargers[0], finished.ChargerID)
		require.False(t, finished.TimeOfPayment.IsZero())

		var paidAt *time.Time
		err = s.DB.QueryRow(context.Background(),
			"SELECT time_of_payment FROM reservations WHERE id = $1", created.Reservation.ID).Scan(&paidAt)
		require.NoError(t, err)
		require.NotNil(t, paidAt)

		// The session is gone, a second finish has nothing to close.
		w = ht.PerformRequest(t, s.Router, http.MethodPost, finishChargingURL,
			request.FinishChargingRequest{ChargerID: chargers[0]}, driverToken)
		ht.AssertErrorResponse(t, w, http.StatusNotFound, "session not found")
	})

	s.Run("telemetry with no covering reservation is rejected", func() {
		t := s.T()
		chargers := s.chargerIDs()

		update := request.ChargeUpdateRequest{
			ChargerID:  chargers[1],
			CurrentSoc: 10.0,
		}
		w := ht.PerformRequest(t, s.Router, http.MethodPatch, chargingURL, update,
			s.jwt.ChargerToken(t, chargerUser))
		ht.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "No reservation covers")
	})

	s.Run("only the reservation owner can finish charging", func() {
		t := s.T()
		chargers := s.chargerIDs()
		start := time.Now().UTC().Add(-time.Minute).Truncate(time.Second)
		end := start.Add(30 * time.Minute)

		s.createOrder(t, s.jwt.DriverToken(t, driverID), chargers[0], &start, &end)

		w := ht.PerformRequest(t, s.Router, http.MethodPatch, chargingURL,
			request.ChargeUpdateRequest{ChargerID: chargers[0], CurrentSoc: 50.0},
			s.jwt.ChargerToken(t, chargerUser))
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = ht.PerformRequest(t, s.Router, http.MethodPost, finishChargingURL,
			request.FinishChargingRequest{ChargerID: chargers[0]},
			s.jwt.DriverToken(t, otherDriver))
		ht.AssertErrorResponse(t, w, http.StatusNotFound, "session not found")
	})
}

func (s *coordinationSuite) TestFoodStatus() {
	s.Run("restaurant advances the status and regressions are rejected", func() {
		t := s.T()
		created, _ := s.createOrder(t, s.jwt.DriverToken(t, driverID), s.chargerIDs()[0], nil, nil)
		restaurantToken := s.jwt.RestaurantToken(t, restaurantID)

		w := ht.PerformRequest(t, s.Router, http.MethodPatch, orderPath(created.Order.ID)+"/food-status",
			request.UpdateFoodStatusRequest{Status: "cooking"}, restaurantToken)
		var updated response.OrderResponse
		ht.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "cooking", updated.FoodStatus)

		w = ht.PerformRequest(t, s.Router, http.MethodPatch, orderPath(created.Order.ID)+"/food-status",
			request.UpdateFoodStatusRequest{Status: "pending"}, restaurantToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("drivers may not change the food status", func() {
		t := s.T()
		created, _ := s.createOrder(t, s.jwt.DriverToken(t, driverID), s.chargerIDs()[0], nil, nil)

		w := ht.PerformRequest(t, s.Router, http.MethodPatch, orderPath(created.Order.ID)+"/food-status",
			request.UpdateFoodStatusRequest{Status: "cooking"}, s.jwt.DriverToken(t, driverID))
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *coordinationSuite) TestEtaCoordination() {
	s.Run("late arrival shifts the reservation end", func() {
		t := s.T()
		token := s.jwt.DriverToken(t, driverID)
		chargers := s.chargerIDs()
		start := time.Now().UTC().Truncate(time.Second)
		end := start.Add(30 * time.Minute)

		created, _ := s.createOrder(t, token, chargers[0], &start, &end)

		w := ht.PerformRequest(t, s.Router, http.MethodPost, orderPath(created.Order.ID)+"/my-eta",
			request.ReportLatenessRequest{LatenessMinutes: 10}, token)
		var eta response.EtaResponse
		ht.AssertSuccessResponse(t, w, http.StatusOK, &eta)
		require.False(t, eta.OnSchedule)
		require.True(t, eta.Shifted)
		require.Equal(t, start.Add(s.Config.Coordination.EtaBaseOffset).Add(10*time.Minute), eta.CustomerEta.UTC())
		require.Equal(t, end.Add(s.Config.Coordination.ShiftStep), eta.Reservation.ReservationEnd.UTC())
	})

	s.Run("early arrival stays on schedule and shifts nothing", func() {
		t := s.T()
		token := s.jwt.DriverToken(t, driverID)
		chargers := s.chargerIDs()
		start := time.Now().UTC().Truncate(time.Second)
		end := start.Add(30 * time.Minute)

		created, _ := s.createOrder(t, token, chargers[0], &start, &end)

		w := ht.PerformRequest(t, s.Router, http.MethodPost, orderPath(created.Order.ID)+"/my-eta",
			request.ReportLatenessRequest{LatenessMinutes: -10}, token)
		var eta response.EtaResponse
		ht.AssertSuccessResponse(t, w, http.StatusOK, &eta)
		require.True(t, eta.OnSchedule)
		require.False(t, eta.Shifted)
		require.Equal(t, end, eta.Reservation.ReservationEnd.UTC())
	})

	s.Run("an adjacent reservation blocks the shift", func() {
		t := s.T()
		token := s.jwt.DriverToken(t, driverID)
		chargers := s.chargerIDs()
		start := time.Now().UTC().Truncate(time.Second)
		mid := start.Add(30 * time.Minute)
		end := mid.Add(30 * time.Minute)

		created, _ := s.createOrder(t, token, chargers[0], &start, &mid)
		s.createOrder(t, s.jwt.DriverToken(t, otherDriver), chargers[0], &mid, &end)

		w := ht.PerformRequest(t, s.Router, http.MethodPost, orderPath(created.Order.ID)+"/my-eta",
			request.ReportLatenessRequest{LatenessMinutes: 10}, token)
		var eta response.EtaResponse
		ht.AssertSuccessResponse(t, w, http.StatusOK, &eta)
		require.False(t, eta.OnSchedule)
		require.False(t, eta.Shifted)
		require.Equal(t, mid, eta.Reservation.ReservationEnd.UTC())
	})
}

func (s *coordinationSuite) TestAuthentication() {
	s.Run("requests without a token are rejected", func() {
		t := s.T()
		w := ht.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/1", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("expired tokens are rejected", func() {
		t := s.T()
		token := s.jwt.ExpiredToken(t, driverID, middleware.RoleDriver)
		w := ht.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/1", nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
