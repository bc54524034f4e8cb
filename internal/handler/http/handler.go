package http

import (
	"vaultguard/internal/config"
	"vaultguard/internal/logger"
	"vaultguard/internal/ratelimit"
	"vaultguard/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *ratelimit.Limiter
	cfg      *config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *ratelimit.Limiter, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		cfg:      cfg,
		logger:   logger,
	}
}
