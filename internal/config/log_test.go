// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestMarshalZerologObject_RedactsSecrets(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			LicenseSecret:    "license-secret-material",
			WebhookSecret:    "webhook-secret-material",
			AdminTokenKey:    "admin-token-key-material",
			AdminTokenIssuer: "vaultguard",
			SessionKey:       "c2Vzc2lvbi1rZXktbWF0ZXJpYWw=",
			Version:          "1.2.3",
		},
		Billing: Billing{
			BaseURL:        "https://api.billing.example.com",
			APIKey:         "sk_live_apikey_material",
			RequestTimeout: 10 * time.Second,
		},
		Server: Server{HTTPAddress: ":8080"},
	}

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().Object("config", cfg).Send()

	out := buf.String()

	for _, secret := range []string{
		"license-secret-material",
		"webhook-secret-material",
		"admin-token-key-material",
		"c2Vzc2lvbi1rZXktbWF0ZXJpYWw=",
		"sk_live_apikey_material",
	} {
		assert.NotContains(t, out, secret, "secret material must never reach the log")
	}
	assert.Contains(t, out, redacted)

	// non-secret fields stay readable
	assert.Contains(t, out, "https://api.billing.example.com")
	assert.Contains(t, out, ":8080")
	assert.Contains(t, out, "vaultguard")
	assert.Contains(t, out, "1.2.3")
}

func TestMarshalZerologObject_EmptySecretsStayEmpty(t *testing.T) {
	cfg := &StructuredConfig{}

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().Object("config", cfg).Send()

	assert.NotContains(t, buf.String(), redacted,
		"an unset secret must not masquerade as a configured one")
}
