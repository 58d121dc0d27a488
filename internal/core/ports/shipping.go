package ports

import (
	"context"

	"github.com/aurelia-jewelry/checkout-rates/internal/core/domain"
)

// CartItemInput is one checkout line item supplied by the cart flow.
type CartItemInput struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	// Weight is per-unit weight in the merchant's configured unit.
	// nil means unknown; the engine applies its default.
	Weight *float64
}

// DestinationInput is the ship-to location supplied by the cart flow.
type DestinationInput struct {
	Country    string
	State      string
	City       string
	PostalCode string
}

// ShippingQuoteInput carries everything needed to quote shipping options.
type ShippingQuoteInput struct {
	Items       []CartItemInput
	Destination DestinationInput
	CartTotal   float64
}

// ShippingQuoteResult is the ranked option list plus the currency the prices
// are denominated in (from merchant settings).
type ShippingQuoteResult struct {
	Options  []domain.ShippingOption
	Currency string
}

// ShippingService quotes shipping options for a cart.
type ShippingService interface {
	Quote(ctx context.Context, input ShippingQuoteInput) (*ShippingQuoteResult, error)
}

// SettingsRepository loads and stores the merchant shipping configuration.
type SettingsRepository interface {
	Load(ctx context.Context) (*domain.ShippingSettings, error)
	Save(ctx context.Context, settings *domain.ShippingSettings) error
}

// DistanceEstimator approximates the distance in km between the merchant's
// origin and a destination. Implementations backed by a real geocoding
// service can be substituted without touching the rate engine.
type DistanceEstimator interface {
	Distance(origin domain.OriginAddress, dest domain.Destination) float64
}
