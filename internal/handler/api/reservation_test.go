//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"voltbite/internal/handler/api"
	resdto "voltbite/internal/handler/dto/response"
	"voltbite/internal/usecase"
	"voltbite/internal/usecase/readmodel"
	"voltbite/tests/common/httptest"
	usecasemock "voltbite/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 55

var testStart = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func stubAuth(userID int64, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func testReservationRM() *readmodel.ReservationRM {
	return &readmodel.ReservationRM{
		ID:               101,
		OrderID:          201,
		ChargerID:        7,
		ReservationStart: testStart,
		ReservationEnd:   testStart.Add(30 * time.Minute),
		CreatedAt:        testStart.Add(-time.Hour),
	}
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockReservationUseCase
	handler     *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockReservationUseCase(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockUseCase)

	auth := stubAuth(testUserID, "driver")
	s.router.GET("/reservations/:id", auth, s.handler.GetReservation)
	s.router.GET("/reservations/:id/can-extend", auth, s.handler.CanExtend)
	s.router.PATCH("/reservations/:id/extend", auth, s.handler.Extend)
	s.router.GET("/chargers/available", auth, s.handler.AvailableChargers)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	s.Run("success: returns 200 with the reservation", func() {
		s.mockUseCase.EXPECT().GetReservation(gomock.Any(), int64(101)).Return(testReservationRM(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/101", nil, "token")

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(int64(101), resp.ID)
		s.Equal(int64(7), resp.ChargerID)
	})

	s.Run("unknown id returns 404", func() {
		s.mockUseCase.EXPECT().GetReservation(gomock.Any(), int64(999)).Return(nil, usecase.ErrReservationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/999", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("non-numeric id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id format")
	})

	s.Run("missing token returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/101", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCanExtend() {
	s.Run("free look-ahead returns true", func() {
		s.mockUseCase.EXPECT().CanExtend(gomock.Any(), int64(101)).Return(true, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/101/can-extend", nil, "token")

		var resp resdto.CanExtendResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.CanExtend)
	})

	s.Run("occupied look-ahead returns false", func() {
		s.mockUseCase.EXPECT().CanExtend(gomock.Any(), int64(101)).Return(false, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/101/can-extend", nil, "token")

		var resp resdto.CanExtendResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.CanExtend)
	})

	s.Run("unknown reservation returns 404, not false", func() {
		s.mockUseCase.EXPECT().CanExtend(gomock.Any(), int64(999)).Return(false, usecase.ErrReservationNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/999/can-extend", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestExtend() {
	s.Run("success: returns the shifted reservation", func() {
		shifted := testReservationRM()
		shifted.ReservationEnd = shifted.ReservationEnd.Add(10 * time.Minute)
		s.mockUseCase.EXPECT().Extend(gomock.Any(), int64(101), testUserID).Return(shifted, true, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/101/extend", nil, "token")

		var resp resdto.ExtendResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.Extended)
		s.Equal(shifted.ReservationEnd, resp.Reservation.ReservationEnd)
	})

	s.Run("blocked extension still returns 200 with extended=false", func() {
		s.mockUseCase.EXPECT().Extend(gomock.Any(), int64(101), testUserID).Return(testReservationRM(), false, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/101/extend", nil, "token")

		var resp resdto.ExtendResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.False(resp.Extended)
	})

	s.Run("commit-time race returns 409", func() {
		s.mockUseCase.EXPECT().Extend(gomock.Any(), int64(101), testUserID).Return(nil, false, usecase.ErrReservationConflict)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/101/extend", nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Conflicting reservation")
	})
}

func (s *ReservationHandlerTestSuite) TestAvailableChargers() {
	start := testStart.Format(time.RFC3339)
	end := testStart.Add(30 * time.Minute).Format(time.RFC3339)

	s.Run("success: returns the free charger ids", func() {
		s.mockUseCase.EXPECT().
			AvailableChargers(gomock.Any(), int64(3), testStart, testStart.Add(30*time.Minute)).
			Return([]int64{1, 9}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/chargers/available?station_id=3&start="+start+"&end="+end, nil, "token")

		var resp resdto.AvailableChargersResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal([]int64{1, 9}, resp.ChargerIDs)
	})

	s.Run("fully booked station returns an empty list, not null", func() {
		s.mockUseCase.EXPECT().
			AvailableChargers(gomock.Any(), int64(3), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/chargers/available?station_id=3&start="+start+"&end="+end, nil, "token")

		var resp resdto.AvailableChargersResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.NotNil(resp.ChargerIDs)
		s.Empty(resp.ChargerIDs)
	})

	s.Run("malformed time returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/chargers/available?station_id=3&start=notatime&end="+end, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid start time")
	})

	s.Run("inverted window returns 400", func() {
		s.mockUseCase.EXPECT().
			AvailableChargers(gomock.Any(), int64(3), gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidWindow)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/chargers/available?station_id=3&start="+end+"&end="+start, nil, "token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Window start must precede end")
	})
}
