package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

// ---- Mock: LicenseService ----

type mockLicenseSvc struct {
	verdict models.Verdict

	deriveResp models.DeriveLicenseResponse
	deriveErr  error

	checkoutErr     error
	checkoutCalled  bool
	checkoutSession models.CheckoutSession
}

func (m *mockLicenseSvc) Validate(_ context.Context, _, _ string) models.Verdict {
	return m.verdict
}

func (m *mockLicenseSvc) Derive(_ context.Context, _ string) (models.DeriveLicenseResponse, error) {
	return m.deriveResp, m.deriveErr
}

func (m *mockLicenseSvc) HandleCheckoutCompleted(_ context.Context, session models.CheckoutSession) error {
	m.checkoutCalled = true
	m.checkoutSession = session
	return m.checkoutErr
}

func newLicenseTestHandler(svc service.LicenseService) *Handler {
	return NewHandler(
		&service.Services{LicenseService: svc},
		ratelimit.NewLimiter(100, time.Minute),
		&config.StructuredConfig{},
		logger.Nop(),
	)
}

// ─────────────────────────────────────────────
// POST /api/license/validate
// ─────────────────────────────────────────────

func TestValidateLicense_ReturnsVerdict(t *testing.T) {
	svc := &mockLicenseSvc{verdict: models.Verdict{
		Valid:       true,
		Tier:        models.TierPro,
		BillingType: models.BillingSubscription,
	}}
	h := newLicenseTestHandler(svc)

	body := `{"license_key":"VG-0123-4567-89AB-CDEF","device_id":"dev-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/license/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.validateLicense(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var verdict models.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.True(t, verdict.Valid)
	assert.Equal(t, models.TierPro, verdict.Tier)
}

func TestValidateLicense_InvalidVerdictPassedThrough(t *testing.T) {
	svc := &mockLicenseSvc{verdict: models.Invalid(models.ReasonBadFormat)}
	h := newLicenseTestHandler(svc)

	body := `{"license_key":"garbage"}`
	req := httptest.NewRequest(http.MethodPost, "/api/license/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.validateLicense(rec, req)

	// invalid licenses still answer 200; the verdict body carries the reason
	require.Equal(t, http.StatusOK, rec.Code)

	var verdict models.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.False(t, verdict.Valid)
	assert.Equal(t, models.ReasonBadFormat, verdict.Reason)
}

func TestValidateLicense_MalformedJSON(t *testing.T) {
	h := newLicenseTestHandler(&mockLicenseSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/license/validate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.validateLicense(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/license/derive
// ─────────────────────────────────────────────

func TestDeriveLicense_Success(t *testing.T) {
	svc := &mockLicenseSvc{deriveResp: models.DeriveLicenseResponse{
		LicenseKey: "VG-0123-4567-89AB-CDEF",
		Tier:       models.TierTeam,
	}}
	h := newLicenseTestHandler(svc)

	body := `{"session_id":"cs_test_123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/license/derive", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.deriveLicense(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DeriveLicenseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VG-0123-4567-89AB-CDEF", resp.LicenseKey)
	assert.Equal(t, models.TierTeam, resp.Tier)
}

func TestDeriveLicense_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		deriveErr  error
		wantStatus int
	}{
		{"session not found", service.ErrSessionNotFound, http.StatusNotFound},
		{"session not paid", service.ErrSessionNotPaid, http.StatusPaymentRequired},
		{"provider failure", assert.AnError, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newLicenseTestHandler(&mockLicenseSvc{deriveErr: tt.deriveErr})

			body := `{"session_id":"cs_test_123"}`
			req := httptest.NewRequest(http.MethodPost, "/api/license/derive", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.deriveLicense(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeriveLicense_EmptySessionID(t *testing.T) {
	h := newLicenseTestHandler(&mockLicenseSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/license/derive", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.deriveLicense(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeriveLicense_MalformedJSON(t *testing.T) {
	h := newLicenseTestHandler(&mockLicenseSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/license/derive", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.deriveLicense(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
