package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON must be valid for time.ParseDuration (string, e.g. "30s").
	jsonBody := `{
		"app": {
			"license_secret": "license_secret",
			"webhook_secret": "webhook_secret",
			"admin_token_key": "admin_key",
			"admin_token_issuer": "test_issuer",
			"version": "1.2.3"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"billing": {
			"base_url": "https://api.billing.example.com",
			"api_key": "sk_test_123",
			"request_timeout": "10s",
			"session_scan_limit": 50,
			"team_price_ids": ["price_team_monthly"]
		},
		"rate_limit": {
			"max_requests": 5,
			"window": "1m",
			"sweep_interval": "2m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "license_secret", cfg.App.LicenseSecret)
	assert.Equal(t, "webhook_secret", cfg.App.WebhookSecret)
	assert.Equal(t, "admin_key", cfg.App.AdminTokenKey)
	assert.Equal(t, "test_issuer", cfg.App.AdminTokenIssuer)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "https://api.billing.example.com", cfg.Billing.BaseURL)
	assert.Equal(t, "sk_test_123", cfg.Billing.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Billing.RequestTimeout)
	assert.Equal(t, 50, cfg.Billing.SessionScanLimit)
	assert.Equal(t, []string{"price_team_monthly"}, cfg.Billing.TeamPriceIDs)

	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.SweepInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// request_timeout should be a duration string; make it invalid.
	jsonBody := `{
		"server": { "request_timeout": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Billing{}, cfg.Billing)
	assert.Equal(t, RateLimit{}, cfg.RateLimit)
}
