package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"vaultguard/internal/crypto"
	"vaultguard/internal/logger"
	"vaultguard/internal/service"
	"vaultguard/internal/utils"
	"vaultguard/models"
)

func (h *Handler) sealVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.VaultService.Seal(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, crypto.ErrEncryptionUnavailable):
			log.Err(err).Msg("no encryption key available")
			http.Error(w, "no encryption key available", http.StatusServiceUnavailable)
			return
		case errors.Is(err, service.ErrInvalidSalt),
			errors.Is(err, crypto.ErrEmptyPassphrase),
			errors.Is(err, crypto.ErrUnknownKdfVersion):
			log.Err(err).Msg("invalid seal request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during sealing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) openVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Open never fails hard: unreadable blobs are reported via Readable=false.
	resp := h.services.VaultService.Open(ctx, req)
	if !resp.Readable {
		log.Debug().Msg("envelope could not be opened with the presented key")
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
