package license

import "vaultguard/models"

// TierMap resolves a purchased price identifier to a product tier.
//
// The billing provider may introduce new price identifiers without a
// matching code release, so an unknown identifier resolves to the lowest
// paid tier instead of failing the validation.
type TierMap struct {
	teamPrices map[string]struct{}
}

// NewTierMap builds a TierMap from the price identifiers that grant the
// team tier. Everything else paid maps to pro.
func NewTierMap(teamPriceIDs []string) *TierMap {
	m := &TierMap{teamPrices: make(map[string]struct{}, len(teamPriceIDs))}
	for _, id := range teamPriceIDs {
		if id != "" {
			m.teamPrices[id] = struct{}{}
		}
	}
	return m
}

// Resolve maps priceID to a tier.
func (m *TierMap) Resolve(priceID string) models.Tier {
	if _, ok := m.teamPrices[priceID]; ok {
		return models.TierTeam
	}
	return models.TierPro
}
