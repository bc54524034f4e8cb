package http

import (
	"crypto/hmac"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vaultguard/internal/billing"
	"vaultguard/internal/logger"
	"vaultguard/internal/utils"
	"vaultguard/models"
)

const (
	signatureHeader = "Billing-Signature"

	// signatureTolerance bounds how old a signed timestamp may be,
	// limiting the replay window for captured deliveries.
	signatureTolerance = 5 * time.Minute
)

func (h *Handler) billingWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading webhook body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := verifySignature(r.Header.Get(signatureHeader), body, h.cfg.App.WebhookSecret, time.Now()); err != nil {
		log.Err(err).Msg("webhook signature verification failed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	switch event.Type {
	case models.EventCheckoutCompleted:
		var session models.CheckoutSession
		if err := json.Unmarshal(event.Data.Object, &session); err != nil {
			log.Err(err).Msg("malformed checkout session object in webhook")
			http.Error(w, "malformed event object", http.StatusBadRequest)
			return
		}

		if err := h.services.LicenseService.HandleCheckoutCompleted(ctx, session); err != nil {
			if billing.IsTransient(err) {
				// non-2xx makes the provider redeliver the event
				log.Err(err).Str("event_id", event.ID).Msg("checkout completed handling failed")
				http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
				return
			}

			// a definite provider answer will not change on redelivery, so
			// the event is acknowledged and logged instead of retried forever
			log.Err(err).Str("event_id", event.ID).Msg("checkout completed event dropped")
			w.WriteHeader(http.StatusOK)
			return
		}

		log.Info().Str("event_id", event.ID).Msg("checkout completed event processed")
	default:
		log.Debug().Str("event_type", event.Type).Msg("ignoring unhandled webhook event type")
	}

	w.WriteHeader(http.StatusOK)
}

// verifySignature checks a "t=<unix>,v1=<hex>" signature header against the
// HMAC-SHA256 of "<t>.<body>" under secret. The timestamp must lie within
// signatureTolerance of now in either direction.
func verifySignature(header string, body []byte, secret string, now time.Time) error {
	if header == "" {
		return ErrMissingSignature
	}

	var timestamp, signature string
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			signature = value
		}
	}
	if timestamp == "" || signature == "" {
		return ErrMalformedSignature
	}

	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrMalformedSignature
	}

	signedAt := time.Unix(unix, 0)
	age := now.Sub(signedAt)
	if age > signatureTolerance || age < -signatureTolerance {
		return ErrStaleSignature
	}

	expected := utils.HashString(timestamp+"."+string(body), secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}

	return nil
}
