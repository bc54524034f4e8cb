package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"vaultguard/internal/logger"
	"vaultguard/internal/utils"
	"vaultguard/models"
)

func (h *Handler) setSessionKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SessionKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	raw, err := base64.StdEncoding.DecodeString(req.Key)
	if err != nil {
		log.Err(err).Msg("session key is not valid base64")
		http.Error(w, "session key must be base64-encoded", http.StatusBadRequest)
		return
	}

	if err := h.services.VaultService.SetSessionKey(ctx, raw); err != nil {
		log.Err(err).Msg("session key rejected")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	operator, _ := utils.GetOperatorFromContext(ctx)
	log.Info().Str("operator", operator).Msg("session key configured")

	w.WriteHeader(http.StatusNoContent)
}
