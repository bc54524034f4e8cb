package service

import (
	"context"

	"vaultguard/models"
)

// LicenseService derives license keys from payment sessions and validates
// entitlement against the billing provider. It keeps no local state: every
// validation reconstructs its view from the provider per call.
type LicenseService interface {
	// Validate runs the full validation state machine for licenseKey and
	// the optional deviceID. It never returns an error: network failures
	// and ambiguous states resolve to an invalid verdict, never to a
	// permissive default.
	Validate(ctx context.Context, licenseKey, deviceID string) models.Verdict

	// Derive confirms sessionID is a paid, completed payment session and
	// returns its deterministic license key and tier. Returns
	// [ErrSessionNotFound] for an unrecognized identifier and
	// [ErrSessionNotPaid] for a session that has not settled.
	Derive(ctx context.Context, sessionID string) (models.DeriveLicenseResponse, error)

	// HandleCheckoutCompleted reacts to a verified "checkout completed"
	// webhook event: it computes the session's license key and tags the
	// billing customer with it so future validations take the fast path.
	HandleCheckoutCompleted(ctx context.Context, session models.CheckoutSession) error
}

// VaultService wraps and unwraps vault blobs for the storage collaborator.
// It performs no file I/O; it only exchanges strings with whoever persists
// them.
type VaultService interface {
	// Seal encrypts plaintext under either a passphrase-derived key or the
	// process-wide session key. Fails loudly when no key is available.
	Seal(ctx context.Context, req models.SealRequest) (models.SealResponse, error)

	// Open reverses Seal. It never fails hard: unreadable blobs come back
	// with Readable=false, and never-encrypted input passes through.
	Open(ctx context.Context, req models.OpenRequest) models.OpenResponse

	// SetSessionKey installs raw as the process-wide session key. The raw
	// material must be exactly 32 bytes.
	SetSessionKey(ctx context.Context, raw []byte) error
}

// AppInfoService exposes build metadata for the version endpoint.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
