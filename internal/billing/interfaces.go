// SPDX-License-Identifier: Apache-2.0

// Package billing provides the adapter for the external billing provider —
// the sole source of truth for entitlement. This service keeps no license
// database of its own: every validation reconstructs its view from the
// provider's customer, session, and subscription resources.
//
// The primary abstraction is [Client], which decouples the service layer
// from the provider's REST API. Error values defined in errors.go are
// mapped from HTTP status codes so that callers can use [errors.Is] for
// transport-agnostic error handling ([ErrNotFound] for a missing resource,
// [ErrUnavailable] for network failures and timeouts).
package billing

import (
	"context"

	"vaultguard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/billing_client_mock.go -package=mock

// Client is the read/annotate surface this core needs from the billing
// provider. No call retries internally; retry policy, if any, belongs to
// the HTTP collaborator. Every call is bounded by the client's configured
// timeout.
type Client interface {
	// FindCustomerByLicenseKey looks up the customer tagged with the given
	// license key in its metadata. Returns [ErrNotFound] when no customer
	// carries the tag yet.
	FindCustomerByLicenseKey(ctx context.Context, licenseKey string) (models.Customer, error)

	// GetSession fetches a single payment session by identifier. Returns
	// [ErrNotFound] for an unrecognized identifier.
	GetSession(ctx context.Context, sessionID string) (models.CheckoutSession, error)

	// ListCompletedSessions returns up to limit most recent completed
	// payment sessions, newest first. Used by the fallback scan that
	// recognizes legacy purchases never linked to a customer tag.
	ListCompletedSessions(ctx context.Context, limit int) ([]models.CheckoutSession, error)

	// GetSubscription fetches a subscription by identifier. Returns
	// [ErrNotFound] for an unrecognized identifier.
	GetSubscription(ctx context.Context, subscriptionID string) (models.Subscription, error)

	// UpdateCustomerMetadata merges the given keys into the customer's
	// metadata. Used for best-effort backfill of license tags and device
	// bindings; callers swallow its errors.
	UpdateCustomerMetadata(ctx context.Context, customerID string, metadata map[string]string) error
}
