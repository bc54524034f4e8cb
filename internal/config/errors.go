package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing license or webhook secrets).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidBillingConfigs indicates invalid billing provider settings
	// (for example, missing base URL or API key).
	ErrInvalidBillingConfigs = errors.New("invalid billing configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRateLimitConfigs indicates invalid rate limiter settings
	// (for example, a zero request budget or window).
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
