package models

import (
	"encoding/json"
	"time"
)

// Billing-provider resource shapes.
//
// The provider returns loosely-typed JSON; each resource is modeled as an
// explicit struct with status strings matched exhaustively in the service
// layer. Unknown status values always resolve to a conservative (invalid)
// outcome rather than being assumed valid.

// Metadata keys written to a billing customer when a license is linked.
const (
	MetaLicenseKey = "license_key"
	MetaSessionID  = "session_id"
	MetaDeviceID   = "device_id"
)

// Customer is the billing provider's customer record. The Metadata map is
// the only server-side index from license key to purchase: there is no
// database on our side.
type Customer struct {
	ID       string            `json:"id"`
	Email    string            `json:"email"`
	Metadata map[string]string `json:"metadata"`
}

// LicenseKey returns the license key tagged on the customer, if any.
func (c *Customer) LicenseKey() string { return c.Metadata[MetaLicenseKey] }

// BoundDeviceID returns the device the license is bound to, if any.
func (c *Customer) BoundDeviceID() string { return c.Metadata[MetaDeviceID] }

// CheckoutSession is a completed (or in-progress) payment session.
//
// Mode is "payment" for one-time purchases and "subscription" for recurring
// ones. PaymentStatus is "paid" once funds cleared; Status is "complete"
// once the session finished.
type CheckoutSession struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer"`
	Mode           string `json:"mode"`
	Status         string `json:"status"`
	PaymentStatus  string `json:"payment_status"`
	SubscriptionID string `json:"subscription"`
	PriceID        string `json:"price_id"`
}

// Paid reports whether the session represents a settled purchase.
func (s *CheckoutSession) Paid() bool {
	return s.PaymentStatus == "paid" || s.Status == "complete"
}

// Subscription statuses granting access without a grace check.
const (
	SubscriptionActive   = "active"
	SubscriptionTrialing = "trialing"
)

// Subscription is the billing provider's recurring-billing record.
// CurrentPeriodEnd is the canonical subscription-level period field; the
// item-level copy the provider also exposes is deliberately ignored.
type Subscription struct {
	ID                string    `json:"id"`
	CustomerID        string    `json:"customer"`
	Status            string    `json:"status"`
	PriceID           string    `json:"price_id"`
	CurrentPeriodEnd  time.Time `json:"current_period_end"`
	CancelAtPeriodEnd bool      `json:"cancel_at_period_end"`
}

// WebhookEvent is a signed event pushed by the billing provider. Data is
// kept raw and decoded into the concrete resource once Type is known.
type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// EventCheckoutCompleted is the only event type this core acts on: it
// triggers license derivation and customer-metadata backfill.
const EventCheckoutCompleted = "checkout.session.completed"
