package models

import "time"

// Tier is the product tier granted by a license.
type Tier string

const (
	// TierFree is the degraded tier reported when a subscription has
	// expired past its grace window.
	TierFree Tier = "free"
	// TierPro is the lowest paid tier. Unknown price identifiers map here
	// so that newly introduced prices keep validating without a release.
	TierPro Tier = "pro"
	// TierTeam is the multi-seat paid tier.
	TierTeam Tier = "team"
)

// BillingType distinguishes one-time purchases from recurring subscriptions.
type BillingType string

const (
	BillingOneTime      BillingType = "one_time"
	BillingSubscription BillingType = "subscription"
)

// VerdictReason explains why a license validation produced an invalid verdict.
type VerdictReason string

const (
	ReasonBadFormat           VerdictReason = "bad_format"
	ReasonDeviceMismatch      VerdictReason = "device_mismatch"
	ReasonSubscriptionExpired VerdictReason = "subscription_expired"
	ReasonLicenseNotFound     VerdictReason = "license_not_found"
	ReasonRateLimited         VerdictReason = "rate_limited"
	ReasonUnableToVerify      VerdictReason = "unable_to_verify"
)

// Verdict is the outcome of a single license validation call.
//
// A Verdict is materialized per request from the billing provider and never
// cached: the provider is the only durable store of entitlement. When Valid
// is false, Reason carries the machine-readable cause and the entitlement
// fields are zero (except Tier, which may report [TierFree] for expired
// subscriptions).
type Verdict struct {
	Valid             bool          `json:"valid"`
	Reason            VerdictReason `json:"error,omitempty"`
	Tier              Tier          `json:"tier,omitempty"`
	BillingType       BillingType   `json:"billing_type,omitempty"`
	CurrentPeriodEnd  time.Time     `json:"current_period_end,omitzero"`
	CancelAtPeriodEnd bool          `json:"cancel_at_period_end,omitempty"`

	// RetryAfter is set only on rate-limited verdicts and hints how many
	// milliseconds the caller should wait before retrying.
	RetryAfter int64 `json:"retry_after_ms,omitempty"`
}

// Invalid builds an invalid Verdict with the given reason.
func Invalid(reason VerdictReason) Verdict {
	return Verdict{Valid: false, Reason: reason}
}

// ValidateLicenseRequest is the body of POST /api/license/validate.
type ValidateLicenseRequest struct {
	LicenseKey string `json:"license_key"`
	DeviceID   string `json:"device_id,omitempty"`
}

// DeriveLicenseRequest is the body of POST /api/license/derive. SessionID is
// the opaque payment-session identifier handed to the client at purchase.
type DeriveLicenseRequest struct {
	SessionID string `json:"session_id"`
}

// DeriveLicenseResponse is returned once the session is confirmed paid.
type DeriveLicenseResponse struct {
	LicenseKey string `json:"license_key"`
	Tier       Tier   `json:"tier"`
}
