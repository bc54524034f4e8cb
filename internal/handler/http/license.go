package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"vaultguard/internal/logger"
	"vaultguard/internal/service"
	"vaultguard/internal/utils"
	"vaultguard/models"
)

func (h *Handler) validateLicense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ValidateLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	verdict := h.services.LicenseService.Validate(ctx, req.LicenseKey, req.DeviceID)

	log.Debug().
		Bool("valid", verdict.Valid).
		Str("reason", string(verdict.Reason)).
		Msg("license validated")

	utils.WriteJSON(w, verdict, http.StatusOK)
}

func (h *Handler) deriveLicense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DeriveLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.SessionID == "" {
		log.Warn().Msg("empty session id in derive request")
		http.Error(w, "session id is required", http.StatusBadRequest)
		return
	}

	resp, err := h.services.LicenseService.Derive(ctx, req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			log.Err(err).Msg("payment session not found")
			http.Error(w, "payment session not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrSessionNotPaid):
			log.Err(err).Msg("payment session not completed")
			http.Error(w, "payment session not completed", http.StatusPaymentRequired)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during license derivation")
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
