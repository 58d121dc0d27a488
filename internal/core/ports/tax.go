package ports

import (
	"context"

	"github.com/aurelia-jewelry/checkout-rates/internal/core/domain"
)

// TaxAddressInput is an explicit shipping address used for jurisdiction
// resolution.
type TaxAddressInput struct {
	State   string
	Country string
}

// DetectedLocationInput is a caller-supplied location from a prior
// geolocation step. Region is expected to already be a code-like value.
type DetectedLocationInput struct {
	Country string
	Region  string
}

// TaxQuoteInput carries everything needed to compute tax for a subtotal.
// ShippingAddress, DetectedLocation, and ClientIP are consulted in that
// priority order; all three may be absent.
type TaxQuoteInput struct {
	Subtotal         float64
	ShippingAddress  *TaxAddressInput
	DetectedLocation *DetectedLocationInput
	ClientIP         string
}

// TaxService resolves a jurisdiction and computes the tax breakdown.
type TaxService interface {
	Quote(ctx context.Context, input TaxQuoteInput) (*domain.TaxResult, error)
}

// GeoLocation is the shape returned by the IP geolocation oracle.
type GeoLocation struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Region      string `json:"region"`
	RegionName  string `json:"region_name"`
}

// GeoIPClient looks up the location of a client IP. It is a best-effort
// oracle: any error degrades jurisdiction resolution to the international
// default and must never abort a tax computation.
type GeoIPClient interface {
	Lookup(ctx context.Context, ip string) (*GeoLocation, error)
}
