//go:build unit || e2e

package sessiontest

import (
	"bytes"
	"net/http"
	"testing"

	resdto "venue-reservation/internal/handler/dto/response"
	"venue-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// StartSession opens a session through the API and returns it.
func StartSession(t *testing.T, router *gin.Engine) resdto.SessionResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/sessions", nil, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var s resdto.SessionResponse
	require.NoError(t, httptest.DecodeResponseBody(t, bytes.NewBuffer(w.Body.Bytes()), &s))
	require.NotEmpty(t, s.Token)
	return s
}
