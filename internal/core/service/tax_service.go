package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aurelia-jewelry/checkout-rates/internal/api/metrics"
	"github.com/aurelia-jewelry/checkout-rates/internal/core/domain"
	"github.com/aurelia-jewelry/checkout-rates/internal/core/ports"
)

type TaxService struct {
	geo    ports.GeoIPClient
	logger zerolog.Logger
}

func NewTaxService(geo ports.GeoIPClient, logger zerolog.Logger) *TaxService {
	return &TaxService{geo: geo, logger: logger}
}

// Quote resolves the taxing jurisdiction for the best-known location and
// computes the itemized tax breakdown on the subtotal.
func (s *TaxService) Quote(ctx context.Context, input ports.TaxQuoteInput) (*domain.TaxResult, error) {
	if input.Subtotal <= 0 {
		return nil, domain.ErrInvalidSubtotal
	}

	jurisdiction, provenance := s.resolveJurisdiction(ctx, input)
	if jurisdiction.IsFallback() {
		metrics.TaxFallbacksTotal.WithLabelValues(jurisdiction.Code).Inc()
	}
	result := ComputeTax(input.Subtotal, jurisdiction)
	result.DetectedLocation = provenance

	s.logger.Info().
		Str("jurisdiction", jurisdiction.Code).
		Str("provenance", provenance).
		Float64("subtotal", input.Subtotal).
		Float64("tax", result.TotalTaxAmount).
		Msg("tax quote computed")

	return &result, nil
}

// resolveJurisdiction walks the location signals in priority order: explicit
// shipping address, caller-detected location, IP lookup, then the
// international default. Every path produces a usable jurisdiction; the IP
// lookup is best-effort and degrades rather than failing.
func (s *TaxService) resolveJurisdiction(ctx context.Context, input ports.TaxQuoteInput) (domain.TaxJurisdiction, string) {
	if addr := input.ShippingAddress; addr != nil && addr.Country != "" {
		j := jurisdictionForState(classifyCountry(addr.Country), addr.State, true)
		return j, provenanceShippingAddress + j.Location
	}

	if loc := input.DetectedLocation; loc != nil && loc.Country != "" {
		// Region is expected to already be code-like at this tier; full
		// names are not normalized.
		j := jurisdictionForState(classifyCountry(loc.Country), loc.Region, false)
		return j, provenanceDetectedLocation + j.Location
	}

	if input.ClientIP != "" {
		geo, err := s.geo.Lookup(ctx, input.ClientIP)
		if err != nil {
			s.logger.Warn().Err(err).Str("ip", input.ClientIP).Msg("ip geolocation failed, using international default")
			return domain.Jurisdictions[domain.JurisdictionDefaultInternational], provenanceLookupFailed
		}
		j := jurisdictionForState(classifyCountry(geo.CountryCode), geo.Region, false)
		return j, provenanceDetectedLocation + j.Location
	}

	return domain.Jurisdictions[domain.JurisdictionDefaultInternational], provenanceUnknown
}

// ComputeTax applies a jurisdiction's components to a subtotal. Each
// component amount is rounded to cents independently before summing, since
// components are displayed line by line; the rate total stays unrounded.
func ComputeTax(subtotal float64, jurisdiction domain.TaxJurisdiction) domain.TaxResult {
	lines := make([]domain.TaxLine, 0, len(jurisdiction.Taxes))
	var totalRate, totalAmount float64

	for _, component := range jurisdiction.Taxes {
		amount := round2(subtotal * component.Rate)
		lines = append(lines, domain.TaxLine{
			Name:   component.Name,
			Type:   component.Type,
			Rate:   component.Rate,
			Amount: amount,
		})
		totalRate += component.Rate
		totalAmount += amount
	}
	totalAmount = round2(totalAmount)

	return domain.TaxResult{
		Taxes:          lines,
		TotalTaxRate:   totalRate,
		TotalTaxAmount: totalAmount,
		TaxLocation:    jurisdiction.Location,
		Subtotal:       subtotal,
		Total:          subtotal + totalAmount,
	}
}
