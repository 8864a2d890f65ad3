//go:build e2e

package helper

import (
	"testing"
	"time"

	"voltbite/internal/handler/middleware"
	"voltbite/internal/pkg/config"
	"voltbite/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTTestHelper mints bearer tokens directly; there is no login endpoint,
// identity is whatever the upstream auth service signed into the token.
type JWTTestHelper struct {
	cfg config.JWTConfig
}

func NewJWTTestHelper(cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{cfg: cfg}
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID int64, role string) string {
	t.Helper()

	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) DriverToken(t *testing.T, userID int64) string {
	t.Helper()
	return h.GenerateToken(t, userID, middleware.RoleDriver)
}

func (h *JWTTestHelper) RestaurantToken(t *testing.T, userID int64) string {
	t.Helper()
	return h.GenerateToken(t, userID, middleware.RoleRestaurant)
}

func (h *JWTTestHelper) ChargerToken(t *testing.T, userID int64) string {
	t.Helper()
	return h.GenerateToken(t, userID, middleware.RoleCharger)
}

func (h *JWTTestHelper) ExpiredToken(t *testing.T, userID int64, role string) string {
	t.Helper()

	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
