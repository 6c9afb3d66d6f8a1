//go:build unit || e2e

package sessiontest

import (
	"testing"
	"time"

	"venue-reservation/internal/pkg/clock"
	"venue-reservation/internal/pkg/config"
	"venue-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.SessionConfig
}

func NewJWTHelper(cfg config.SessionConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a token for a fresh session and returns both.
func (h *JWTHelper) GenerateToken(t *testing.T) (token, sessionID string) {
	t.Helper()
	sessionID = uuid.NewString()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, clock.NewRealClock())
	token, _, err := service.GenerateToken(sessionID)
	require.NoError(t, err)
	return token, sessionID
}

// CreateExpiredToken signs a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.Duration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, past)
	token, _, err := service.GenerateToken(uuid.NewString())
	require.NoError(t, err)
	return token
}
