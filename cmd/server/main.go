package main

import (
	"encoding/base64"
	"fmt"

	"vaultguard/internal/billing"
	"vaultguard/internal/config"
	"vaultguard/internal/crypto"
	"vaultguard/internal/handler"
	"vaultguard/internal/logger"
	"vaultguard/internal/ratelimit"
	"vaultguard/internal/server"
	"vaultguard/internal/service"
	"vaultguard/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vaultguard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Object("config", cfg).Msg("received configs")

	keychain := crypto.NewSessionKeychain()
	if cfg.App.SessionKey != "" {
		raw, err := base64.StdEncoding.DecodeString(cfg.App.SessionKey)
		if err != nil {
			log.Fatal().Err(err).Msg("error decoding session key")
		}
		if err = keychain.Set(raw); err != nil {
			log.Fatal().Err(err).Msg("error installing session key")
		}
		log.Info().Msg("session key installed from configuration")
	}

	billingClient := billing.NewHTTPClient(billing.HTTPClientConfig{
		BaseURL: cfg.Billing.BaseURL,
		APIKey:  cfg.Billing.APIKey,
		Timeout: cfg.Billing.RequestTimeout,
	})

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	services, err := service.NewServices(billingClient, keychain, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiter := ratelimit.NewLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	defer limiter.StopSweeping()

	handlers, err := handler.NewHandlers(services, limiter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewLimiterSweeper(limiter, cfg.RateLimit.SweepInterval, log),
	)
	backgroundWorkers.Run()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
