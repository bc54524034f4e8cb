// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LicenseSecret == "" || cfg.App.WebhookSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.AdminTokenKey == "" || cfg.App.AdminTokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Billing.BaseURL == "" || cfg.Billing.APIKey == "" {
		return ErrInvalidBillingConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	// A zero budget or window would make the limiter a silent no-op.
	// SweepInterval may stay zero; the limiter defaults it.
	if cfg.RateLimit.MaxRequests <= 0 || cfg.RateLimit.Window <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}
