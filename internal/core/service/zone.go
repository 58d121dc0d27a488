package service

import "github.com/aurelia-jewelry/checkout-rates/internal/core/domain"

// ResolveZone returns the first zone (in configured order) whose country list
// contains the destination country, or nil when none match. A nil result is
// a normal outcome, not an error: destinations outside every configured zone
// simply get no zone-specific methods.
func ResolveZone(country string, zones []domain.ShippingZone) *domain.ShippingZone {
	for i := range zones {
		if zones[i].Contains(country) {
			return &zones[i]
		}
	}
	return nil
}
