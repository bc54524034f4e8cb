// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// redacted replaces secret values in log output. The marker keeps "secret
// is set" visible while the material itself never reaches the log.
const redacted = "[REDACTED]"

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] so the merged
// configuration can be logged at startup without leaking key material.
// Secret fields log as a marker when set and as an empty string when not,
// so misconfiguration stays diagnosable.
func (cfg *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Dict("app", zerolog.Dict().
		Str("license_secret", redactSecret(cfg.App.LicenseSecret)).
		Str("webhook_secret", redactSecret(cfg.App.WebhookSecret)).
		Str("admin_token_key", redactSecret(cfg.App.AdminTokenKey)).
		Str("admin_token_issuer", cfg.App.AdminTokenIssuer).
		Str("session_key", redactSecret(cfg.App.SessionKey)).
		Str("version", cfg.App.Version))

	e.Dict("billing", zerolog.Dict().
		Str("base_url", cfg.Billing.BaseURL).
		Str("api_key", redactSecret(cfg.Billing.APIKey)).
		Dur("request_timeout", cfg.Billing.RequestTimeout).
		Int("session_scan_limit", cfg.Billing.SessionScanLimit).
		Strs("team_price_ids", cfg.Billing.TeamPriceIDs))

	e.Dict("server", zerolog.Dict().
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout))

	e.Dict("rate_limit", zerolog.Dict().
		Int("max_requests", cfg.RateLimit.MaxRequests).
		Dur("window", cfg.RateLimit.Window).
		Dur("sweep_interval", cfg.RateLimit.SweepInterval))

	e.Str("json_file_path", cfg.JSONFilePath)
}

func redactSecret(s string) string {
	if s == "" {
		return ""
	}
	return redacted
}
