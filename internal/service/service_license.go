// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vaultguard/internal/billing"
	"vaultguard/internal/license"
	"vaultguard/internal/logger"
	"vaultguard/models"
)

// graceWindow is the fixed extra period after a subscription's nominal
// expiry during which access is still granted, absorbing billing-provider
// processing lag.
const graceWindow = 72 * time.Hour

// defaultScanLimit bounds the fallback scan over recent completed sessions.
const defaultScanLimit = 100

type licenseService struct {
	billing   billing.Client
	deriver   *license.Deriver
	tiers     *license.TierMap
	scanLimit int

	// now is swappable for tests exercising the grace window.
	now func() time.Time

	logger *logger.Logger
}

// NewLicenseService constructs a [LicenseService]. scanLimit bounds the
// fallback scan; zero or negative selects the default of 100 sessions.
func NewLicenseService(client billing.Client, deriver *license.Deriver, tiers *license.TierMap, scanLimit int, log *logger.Logger) LicenseService {
	if scanLimit <= 0 {
		scanLimit = defaultScanLimit
	}
	return &licenseService{
		billing:   client,
		deriver:   deriver,
		tiers:     tiers,
		scanLimit: scanLimit,
		now:       time.Now,
		logger:    log,
	}
}

// Validate implements [LicenseService].
//
// The billing provider is authoritative; there is no local database. The
// steps, in order:
//  1. Reject malformed keys before any network call.
//  2. Fast path: find the customer tagged with the key, check device
//     binding, resolve entitlement from the linked session/subscription.
//  3. Slow path: scan a bounded window of recent completed sessions,
//     re-deriving each one's key. On match, backfill the customer tag
//     (best effort) and resolve from that session.
//
// Transient provider failures resolve to an unable-to-verify verdict,
// never to a valid one.
func (s *licenseService) Validate(ctx context.Context, licenseKey, deviceID string) models.Verdict {
	log := logger.FromContext(ctx)

	if !license.IsValidFormat(licenseKey) {
		return models.Invalid(models.ReasonBadFormat)
	}
	key := license.Normalize(licenseKey)

	customer, err := s.billing.FindCustomerByLicenseKey(ctx, key)
	switch {
	case err == nil:
		return s.verdictForCustomer(ctx, customer, deviceID)
	case errors.Is(err, billing.ErrNotFound):
		// First validation after purchase, or a legacy purchase that was
		// never linked.
		return s.verdictFromSessionScan(ctx, key, deviceID)
	default:
		log.Err(err).Msg("customer lookup failed, cannot verify license")
		return models.Invalid(models.ReasonUnableToVerify)
	}
}

func (s *licenseService) verdictForCustomer(ctx context.Context, customer models.Customer, deviceID string) models.Verdict {
	log := logger.FromContext(ctx)

	if bound := customer.BoundDeviceID(); bound != "" && deviceID != "" && bound != deviceID {
		return models.Invalid(models.ReasonDeviceMismatch)
	}

	// Bind the first device that shows up. Best effort: a failed write
	// must not fail the validation.
	if customer.BoundDeviceID() == "" && deviceID != "" {
		if err := s.billing.UpdateCustomerMetadata(ctx, customer.ID, map[string]string{models.MetaDeviceID: deviceID}); err != nil {
			log.Err(err).Str("customer", customer.ID).Msg("device binding backfill failed")
		}
	}

	sessionID := customer.Metadata[models.MetaSessionID]
	if sessionID == "" {
		log.Warn().Str("customer", customer.ID).Msg("customer tagged with license key but no session id")
		return models.Invalid(models.ReasonUnableToVerify)
	}

	session, err := s.billing.GetSession(ctx, sessionID)
	if err != nil {
		log.Err(err).Str("session", sessionID).Msg("linked session lookup failed")
		return models.Invalid(models.ReasonUnableToVerify)
	}

	return s.verdictFromSession(ctx, session)
}

func (s *licenseService) verdictFromSessionScan(ctx context.Context, key, deviceID string) models.Verdict {
	log := logger.FromContext(ctx)

	sessions, err := s.billing.ListCompletedSessions(ctx, s.scanLimit)
	if err != nil {
		log.Err(err).Msg("session scan failed, cannot verify license")
		return models.Invalid(models.ReasonUnableToVerify)
	}

	for _, session := range sessions {
		if !license.Equal(s.deriver.DeriveFromSession(session.ID), key) {
			continue
		}

		// Opportunistic backfill so future validations take the fast
		// path. Best effort by design.
		if session.CustomerID != "" {
			meta := map[string]string{
				models.MetaLicenseKey: key,
				models.MetaSessionID:  session.ID,
			}
			if deviceID != "" {
				meta[models.MetaDeviceID] = deviceID
			}
			if err := s.billing.UpdateCustomerMetadata(ctx, session.CustomerID, meta); err != nil {
				log.Err(err).Str("customer", session.CustomerID).Msg("license metadata backfill failed")
			}
		}

		return s.verdictFromSession(ctx, session)
	}

	return models.Invalid(models.ReasonLicenseNotFound)
}

// verdictFromSession resolves entitlement from a settled payment session.
func (s *licenseService) verdictFromSession(ctx context.Context, session models.CheckoutSession) models.Verdict {
	log := logger.FromContext(ctx)

	// One-time purchases are valid indefinitely once found.
	if session.SubscriptionID == "" {
		return models.Verdict{
			Valid:       true,
			Tier:        s.tiers.Resolve(session.PriceID),
			BillingType: models.BillingOneTime,
		}
	}

	sub, err := s.billing.GetSubscription(ctx, session.SubscriptionID)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			// The subscription was deleted at the provider; no period end
			// is recoverable, so no grace window applies.
			verdict := models.Invalid(models.ReasonSubscriptionExpired)
			verdict.Tier = models.TierFree
			return verdict
		}
		log.Err(err).Str("subscription", session.SubscriptionID).Msg("subscription lookup failed")
		return models.Invalid(models.ReasonUnableToVerify)
	}

	tier := s.tiers.Resolve(sub.PriceID)

	switch sub.Status {
	case models.SubscriptionActive, models.SubscriptionTrialing:
		return models.Verdict{
			Valid:             true,
			Tier:              tier,
			BillingType:       models.BillingSubscription,
			CurrentPeriodEnd:  sub.CurrentPeriodEnd,
			CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		}
	default:
		// Unknown statuses deliberately fall through to the grace check:
		// anything not recognizably active is treated as lapsed.
		if s.now().Before(sub.CurrentPeriodEnd.Add(graceWindow)) {
			return models.Verdict{
				Valid:             true,
				Tier:              tier,
				BillingType:       models.BillingSubscription,
				CurrentPeriodEnd:  sub.CurrentPeriodEnd,
				CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
			}
		}
		verdict := models.Invalid(models.ReasonSubscriptionExpired)
		verdict.Tier = models.TierFree
		return verdict
	}
}

// Derive implements [LicenseService].
func (s *licenseService) Derive(ctx context.Context, sessionID string) (models.DeriveLicenseResponse, error) {
	session, err := s.billing.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return models.DeriveLicenseResponse{}, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
		}
		return models.DeriveLicenseResponse{}, fmt.Errorf("confirm session: %w", err)
	}
	if !session.Paid() {
		return models.DeriveLicenseResponse{}, fmt.Errorf("%w: %q", ErrSessionNotPaid, sessionID)
	}

	key := s.deriver.DeriveFromSession(session.ID)

	// Tag the customer right away; failure only costs the fast path on the
	// next validation.
	if session.CustomerID != "" {
		meta := map[string]string{
			models.MetaLicenseKey: key,
			models.MetaSessionID:  session.ID,
		}
		if err := s.billing.UpdateCustomerMetadata(ctx, session.CustomerID, meta); err != nil {
			logger.FromContext(ctx).Err(err).Str("customer", session.CustomerID).Msg("license metadata backfill failed")
		}
	}

	return models.DeriveLicenseResponse{
		LicenseKey: key,
		Tier:       s.tiers.Resolve(session.PriceID),
	}, nil
}

// HandleCheckoutCompleted implements [LicenseService]. Signature
// verification happened at the HTTP layer; by the time the event reaches
// this method it is trusted.
func (s *licenseService) HandleCheckoutCompleted(ctx context.Context, session models.CheckoutSession) error {
	if session.CustomerID == "" {
		return nil // nothing to tag
	}

	key := s.deriver.DeriveFromSession(session.ID)
	meta := map[string]string{
		models.MetaLicenseKey: key,
		models.MetaSessionID:  session.ID,
	}
	if err := s.billing.UpdateCustomerMetadata(ctx, session.CustomerID, meta); err != nil {
		return fmt.Errorf("tag customer %q: %w", session.CustomerID, err)
	}
	return nil
}
