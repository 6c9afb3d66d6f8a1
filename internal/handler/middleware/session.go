package middleware

import (
	"errors"
	"net/http"
	"strings"

	"venue-reservation/internal/handler/httperr"
	"venue-reservation/internal/pkg/cookie"
	"venue-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	SessionHeader   = "X-Session-Token"
	ctxSessionIDKey = "session_id"
)

var (
	errSessionRequired = errors.New("session token required")
	errSessionInvalid  = errors.New("invalid or expired session token")
)

type SessionMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewSessionMiddleware(tokenValidator usecase.TokenValidator) *SessionMiddleware {
	return &SessionMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireSession resolves the caller's session id from the session header,
// a bearer token or the session cookie, in that order.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errSessionRequired, "Session token required", nil)
			return
		}

		sessionID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			_ = c.Error(err)
			httperr.AbortWithError(c, http.StatusUnauthorized, errSessionInvalid, "Invalid or expired session token", nil)
			return
		}

		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(SessionHeader)); token != "" {
		return token
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return cookie.GetSessionToken(c)
}

func GetSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
