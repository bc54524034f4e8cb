// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LICENSE_SECRET":     "license_secret",
		"APP_WEBHOOK_SECRET":     "webhook_secret",
		"APP_ADMIN_TOKEN_KEY":    "admin_key",
		"APP_ADMIN_TOKEN_ISSUER": "test_issuer",
		"APP_SESSION_KEY":        "c2Vzc2lvbi1rZXk=",
		"APP_VERSION":            "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"BILLING_BASE_URL":           "https://api.billing.example.com",
		"BILLING_API_KEY":            "sk_test_123",
		"BILLING_REQUEST_TIMEOUT":    "10s",
		"BILLING_SESSION_SCAN_LIMIT": "50",
		"BILLING_TEAM_PRICE_IDS":     "price_team_monthly,price_team_yearly",

		"RATE_LIMIT_MAX_REQUESTS":   "5",
		"RATE_LIMIT_WINDOW":         "1m",
		"RATE_LIMIT_SWEEP_INTERVAL": "2m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "license_secret", cfg.App.LicenseSecret)
	assert.Equal(t, "webhook_secret", cfg.App.WebhookSecret)
	assert.Equal(t, "admin_key", cfg.App.AdminTokenKey)
	assert.Equal(t, "test_issuer", cfg.App.AdminTokenIssuer)
	assert.Equal(t, "c2Vzc2lvbi1rZXk=", cfg.App.SessionKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "https://api.billing.example.com", cfg.Billing.BaseURL)
	assert.Equal(t, "sk_test_123", cfg.Billing.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Billing.RequestTimeout)
	assert.Equal(t, 50, cfg.Billing.SessionScanLimit)
	assert.Equal(t, []string{"price_team_monthly", "price_team_yearly"}, cfg.Billing.TeamPriceIDs)

	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.SweepInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_LICENSE_SECRET": "license_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// App partially filled
	assert.Equal(t, "license_secret", cfg.App.LicenseSecret)
	assert.Empty(t, cfg.App.WebhookSecret)
	assert.Empty(t, cfg.App.AdminTokenKey)
	assert.Empty(t, cfg.App.AdminTokenIssuer)

	// Server partially filled
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others untouched
	assert.Empty(t, cfg.Billing.BaseURL)
	assert.Empty(t, cfg.Billing.APIKey)
	assert.Zero(t, cfg.RateLimit.MaxRequests)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// In this version all nested fields are non-pointer values,
	// so "empty" state is represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, RateLimit{}, cfg.RateLimit)
}

func TestParseEnv_OnlyBilling(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"BILLING_BASE_URL": "https://api.billing.example.com",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://api.billing.example.com", cfg.Billing.BaseURL)
	assert.Empty(t, cfg.Billing.APIKey)
	assert.Nil(t, cfg.Billing.TeamPriceIDs)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_REQUEST_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_LICENSE_SECRET",
		"APP_WEBHOOK_SECRET",
		"APP_ADMIN_TOKEN_KEY",
		"APP_ADMIN_TOKEN_ISSUER",
		"APP_SESSION_KEY",
		"APP_VERSION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"BILLING_BASE_URL",
		"BILLING_API_KEY",
		"BILLING_REQUEST_TIMEOUT",
		"BILLING_SESSION_SCAN_LIMIT",
		"BILLING_TEAM_PRICE_IDS",

		"RATE_LIMIT_MAX_REQUESTS",
		"RATE_LIMIT_WINDOW",
		"RATE_LIMIT_SWEEP_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
