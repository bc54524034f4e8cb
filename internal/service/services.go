package service

import (
	"vaultguard/internal/billing"
	"vaultguard/internal/config"
	"vaultguard/internal/crypto"
	"vaultguard/internal/license"
	"vaultguard/internal/logger"
)

type Services struct {
	LicenseService LicenseService
	VaultService   VaultService
	AppInfoService AppInfoService
}

func NewServices(billingClient billing.Client, keychain *crypto.SessionKeychain, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	deriver, err := license.NewDeriver(cfg.App.LicenseSecret)
	if err != nil {
		return nil, err
	}
	tiers := license.NewTierMap(cfg.Billing.TeamPriceIDs)

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		LicenseService: NewLicenseService(billingClient, deriver, tiers, cfg.Billing.SessionScanLimit, logger),
		VaultService:   NewVaultService(crypto.NewKeyDerivationService(), crypto.NewEnvelopeService(), keychain, logger),
		AppInfoService: appInfo,
	}, nil
}
