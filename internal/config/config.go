// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// vaultguard application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as cryptographic secrets
	// and the application version.
	App App `envPrefix:"APP_"`

	// Billing holds configuration for the external billing provider the
	// license validator talks to.
	Billing Billing `envPrefix:"BILLING_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit holds settings for the per-client request rate limiter.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// license derivation, and versioning.
type App struct {
	// LicenseSecret is the secret key used to derive license keys from
	// checkout session identifiers with HMAC-SHA256. Rotating it invalidates
	// every previously issued license key. Must be kept confidential.
	// Env: APP_LICENSE_SECRET
	LicenseSecret string `env:"LICENSE_SECRET"`

	// WebhookSecret is the shared secret used to verify the signature of
	// inbound billing webhook deliveries. Must be kept confidential.
	// Env: APP_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// AdminTokenKey is the secret key used to sign and verify the JWT tokens
	// protecting the administrative endpoints. Must be kept confidential.
	// Env: APP_ADMIN_TOKEN_KEY
	AdminTokenKey string `env:"ADMIN_TOKEN_KEY"`

	// AdminTokenIssuer is the "iss" claim expected in every admin JWT token.
	// Env: APP_ADMIN_TOKEN_ISSUER
	AdminTokenIssuer string `env:"ADMIN_TOKEN_ISSUER"`

	// SessionKey is an optional base64-encoded 32-byte key installed into the
	// session keychain at startup. When empty, sealing with the session key is
	// unavailable until an administrator installs one at runtime.
	// Env: APP_SESSION_KEY
	SessionKey string `env:"SESSION_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Billing holds connection settings for the external billing provider.
type Billing struct {
	// BaseURL is the root URL of the billing provider's REST API
	// (e.g. "https://api.billing.example.com").
	// Env: BILLING_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the bearer token authenticating every billing API call.
	// Must be kept confidential.
	// Env: BILLING_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the maximum duration allowed for a single billing
	// API call (e.g. "10s").
	// Env: BILLING_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionScanLimit caps how many recent checkout sessions the validator
	// inspects when a license key cannot be resolved from customer metadata.
	// Env: BILLING_SESSION_SCAN_LIMIT
	SessionScanLimit int `env:"SESSION_SCAN_LIMIT"`

	// TeamPriceIDs lists the billing price identifiers that map to the team
	// tier. Any other price resolves to the pro tier.
	// Env: BILLING_TEAM_PRICE_IDS (comma-separated)
	TeamPriceIDs []string `env:"TEAM_PRICE_IDS"`
}

// RateLimit holds settings for the sliding-window request rate limiter
// applied to the externally reachable endpoints.
type RateLimit struct {
	// MaxRequests is the number of requests allowed per client within one
	// window before further requests are rejected.
	// Env: RATE_LIMIT_MAX_REQUESTS
	MaxRequests int `env:"MAX_REQUESTS"`

	// Window is the duration of the counting window (e.g. "1m").
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`

	// SweepInterval controls how often expired counters are purged from
	// memory (e.g. "1m").
	// Env: RATE_LIMIT_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
