package service

import "github.com/aurelia-jewelry/checkout-rates/internal/core/domain"

// Flat distance approximation used until a geocoding service is plugged in
// behind ports.DistanceEstimator: a domestic shipment counts as 500 km, a
// cross-border one as 2000 km.
const (
	domesticDistanceKm      = 500
	internationalDistanceKm = 2000
)

// FlatDistanceEstimator is the placeholder distance implementation. It only
// distinguishes same-country from cross-border shipments.
type FlatDistanceEstimator struct{}

func NewFlatDistanceEstimator() *FlatDistanceEstimator {
	return &FlatDistanceEstimator{}
}

func (FlatDistanceEstimator) Distance(origin domain.OriginAddress, dest domain.Destination) float64 {
	if origin.Country == dest.Country {
		return domesticDistanceKm
	}
	return internationalDistanceKm
}
