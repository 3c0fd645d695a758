//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coupon-admin/internal/domain/user"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration)
	token, _, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, time.Millisecond)
	token, _, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}

// SignedWithOtherSecret returns a well-formed token the server must reject.
func (h *JWTHelper) SignedWithOtherSecret(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-other", h.cfg.Duration)
	token, _, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
