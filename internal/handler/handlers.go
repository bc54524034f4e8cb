package handler

import (
	"vaultguard/internal/config"
	"vaultguard/internal/handler/http"
	"vaultguard/internal/logger"
	"vaultguard/internal/ratelimit"
	"vaultguard/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, limiter *ratelimit.Limiter, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
