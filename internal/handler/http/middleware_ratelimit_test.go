package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaultguard/internal/config"
	"vaultguard/internal/logger"
	"vaultguard/internal/ratelimit"
	"vaultguard/internal/service"
	"vaultguard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitTestHandler(max int) *Handler {
	return NewHandler(
		&service.Services{},
		ratelimit.NewLimiter(max, time.Minute),
		&config.StructuredConfig{},
		logger.Nop(),
	)
}

func runLimited(h *Handler, target, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}

	rec := httptest.NewRecorder()
	h.withRateLimit(next).ServeHTTP(rec, req)
	return rec
}

func TestWithRateLimit_AllowsUnderBudget(t *testing.T) {
	h := newRateLimitTestHandler(3)

	for i := 0; i < 3; i++ {
		rec := runLimited(h, "/api/vault/seal", "10.0.0.1:1234", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}
}

func TestWithRateLimit_RejectsOverBudget(t *testing.T) {
	h := newRateLimitTestHandler(1)

	first := runLimited(h, "/api/vault/seal", "10.0.0.1:1234", "")
	require.Equal(t, http.StatusOK, first.Code)

	second := runLimited(h, "/api/vault/seal", "10.0.0.1:1234", "")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestWithRateLimit_ValidateEndpointGetsVerdictBody(t *testing.T) {
	h := newRateLimitTestHandler(1)

	runLimited(h, "/api/license/validate", "10.0.0.1:1234", "")
	rec := runLimited(h, "/api/license/validate", "10.0.0.1:1234", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var verdict models.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.False(t, verdict.Valid)
	assert.Equal(t, models.ReasonRateLimited, verdict.Reason)

	// The hint is in milliseconds on the wire: with a one-minute window it
	// must stay within [1, 60000]. A nanosecond count would be ~1e10.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	retryMs, ok := raw["retry_after_ms"].(float64)
	require.True(t, ok, "retry_after_ms must be a JSON number")
	assert.GreaterOrEqual(t, retryMs, float64(1))
	assert.LessOrEqual(t, retryMs, float64(60_000))
}

func TestWithRateLimit_ClientsAreIndependent(t *testing.T) {
	h := newRateLimitTestHandler(1)

	first := runLimited(h, "/api/vault/seal", "10.0.0.1:1234", "")
	require.Equal(t, http.StatusOK, first.Code)

	other := runLimited(h, "/api/vault/seal", "10.0.0.2:1234", "")
	assert.Equal(t, http.StatusOK, other.Code, "a different client must not share the budget")
}

func TestWithRateLimit_ForwardedForTakesPrecedence(t *testing.T) {
	h := newRateLimitTestHandler(1)

	// same proxy address, different original clients
	first := runLimited(h, "/api/vault/seal", "172.16.0.1:9999", "203.0.113.7")
	require.Equal(t, http.StatusOK, first.Code)

	second := runLimited(h, "/api/vault/seal", "172.16.0.1:9999", "203.0.113.8, 172.16.0.1")
	assert.Equal(t, http.StatusOK, second.Code)

	third := runLimited(h, "/api/vault/seal", "172.16.0.1:9999", "203.0.113.7, 172.16.0.1")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
}

func TestClientAddress(t *testing.T) {
	tests := []struct {
		name         string
		remoteAddr   string
		forwardedFor string
		want         string
	}{
		{"remote addr host extracted", "192.0.2.1:5555", "", "192.0.2.1"},
		{"forwarded-for single", "172.16.0.1:80", "203.0.113.7", "203.0.113.7"},
		{"forwarded-for chain uses first", "172.16.0.1:80", "203.0.113.7, 172.16.0.1, 10.0.0.1", "203.0.113.7"},
		{"forwarded-for with spaces", "172.16.0.1:80", " 203.0.113.9 ", "203.0.113.9"},
		{"remote addr without port", "192.0.2.2", "", "192.0.2.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set("X-Forwarded-For", tt.forwardedFor)
			}

			assert.Equal(t, tt.want, clientAddress(req))
		})
	}
}
