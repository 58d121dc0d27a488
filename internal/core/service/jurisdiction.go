package service

import (
	"strings"

	"github.com/aurelia-jewelry/checkout-rates/internal/core/domain"
)

// Provenance strings recorded on TaxResult.DetectedLocation. They describe
// how the jurisdiction was determined, for display and debugging.
const (
	provenanceShippingAddress  = "Shipping Address: "
	provenanceDetectedLocation = "Detected Location: "
	provenanceLookupFailed     = "Location Detection Failed"
	provenanceUnknown          = "Unknown"
)

// usStateCodes maps full US state names (lowercased) to their 2-letter
// jurisdiction codes. Two-letter inputs are treated as already being codes.
var usStateCodes = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"district of columbia": "DC", "florida": "FL", "georgia": "GA", "hawaii": "HI",
	"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
	"maryland": "MD", "massachusetts": "MA", "michigan": "MI", "minnesota": "MN",
	"mississippi": "MS", "missouri": "MO", "montana": "MT", "nebraska": "NE",
	"nevada": "NV", "new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
	"new york": "NY", "north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA", "rhode island": "RI",
	"south carolina": "SC", "south dakota": "SD", "tennessee": "TN", "texas": "TX",
	"utah": "UT", "vermont": "VT", "virginia": "VA", "washington": "WA",
	"west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
}

// caProvinceCodes maps full Canadian province/territory names (lowercased)
// to their 2-letter jurisdiction codes.
var caProvinceCodes = map[string]string{
	"alberta": "AB", "british columbia": "BC", "manitoba": "MB",
	"new brunswick": "NB", "newfoundland and labrador": "NL",
	"northwest territories": "NT", "nova scotia": "NS", "nunavut": "NU",
	"ontario": "ON", "prince edward island": "PE", "quebec": "QC",
	"saskatchewan": "SK", "yukon": "YT",
}

type countryClass int

const (
	countryOther countryClass = iota
	countryUS
	countryCA
)

// classifyCountry normalizes the many ways callers spell a country into the
// three branches the jurisdiction table distinguishes.
func classifyCountry(country string) countryClass {
	switch strings.ToLower(strings.TrimSpace(country)) {
	case "us", "usa", "united states", "united states of america":
		return countryUS
	case "ca", "canada":
		return countryCA
	default:
		return countryOther
	}
}

// jurisdictionForState maps a state/province value to a jurisdiction within
// the given country class. Full names are normalized through the name
// tables; a 2-character value is treated as already being a code. Anything
// unrecognized falls back to the country default, and any non-US/CA country
// is tax-free international.
func jurisdictionForState(class countryClass, state string, normalizeNames bool) domain.TaxJurisdiction {
	switch class {
	case countryUS:
		code := stateCode(state, usStateCodes, normalizeNames)
		if j, ok := domain.JurisdictionByCode(code); ok && code != "" {
			return j
		}
		return domain.Jurisdictions[domain.JurisdictionDefaultUS]
	case countryCA:
		code := stateCode(state, caProvinceCodes, normalizeNames)
		if j, ok := domain.JurisdictionByCode(code); ok && code != "" {
			return j
		}
		return domain.Jurisdictions[domain.JurisdictionDefaultCA]
	default:
		return domain.Jurisdictions[domain.JurisdictionDefaultInternational]
	}
}

func stateCode(state string, names map[string]string, normalizeNames bool) string {
	s := strings.TrimSpace(state)
	if normalizeNames {
		if code, ok := names[strings.ToLower(s)]; ok {
			return code
		}
	}
	if len(s) == 2 {
		return strings.ToUpper(s)
	}
	return ""
}
