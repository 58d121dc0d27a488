package domain

import "errors"

// MethodType selects the pricing rule a shipping method is evaluated with.
// Exactly one type governs evaluation; fields belonging to other types are
// ignored rather than rejected (merchant configs are tolerant documents).
type MethodType string

const (
	MethodFree          MethodType = "free"
	MethodFixed         MethodType = "fixed"
	MethodCalculated    MethodType = "calculated"
	MethodWeightBased   MethodType = "weight_based"
	MethodDistanceBased MethodType = "distance_based"
)

var ErrMissingCountry = errors.New("destination country is required")
var ErrInvalidSubtotal = errors.New("subtotal must be greater than zero")
var ErrSettingsNotFound = errors.New("shipping settings not found")

// RateBand is one row of a weight or distance rate table.
// Max == -1 means the band is unbounded above.
type RateBand struct {
	Min  float64 `json:"min" bson:"min"`
	Max  float64 `json:"max" bson:"max"`
	Rate float64 `json:"rate" bson:"rate"`
}

// UnboundedMax marks a rate band with no upper limit.
const UnboundedMax = -1

// Matches reports whether value falls inside the band.
func (b RateBand) Matches(value float64) bool {
	return value >= b.Min && (b.Max == UnboundedMax || value <= b.Max)
}

// EstimatedDays is a business-day delivery window, carried through to the
// quoted option unchanged.
type EstimatedDays struct {
	Min int `json:"min" bson:"min"`
	Max int `json:"max" bson:"max"`
}

// ShippingMethod is one pricing rule within a zone.
type ShippingMethod struct {
	ID      string     `json:"id" bson:"id"`
	Name    string     `json:"name" bson:"name"`
	Type    MethodType `json:"type" bson:"type"`
	Enabled bool       `json:"enabled" bson:"enabled"`
	// Price is the flat amount for fixed methods and the fallback for
	// weight_based methods configured without rate bands.
	Price float64 `json:"price,omitempty" bson:"price,omitempty"`
	// FreeThreshold is the minimum subtotal for a free method to apply.
	// nil means always free.
	FreeThreshold *float64       `json:"free_threshold,omitempty" bson:"free_threshold,omitempty"`
	WeightRates   []RateBand     `json:"weight_rates,omitempty" bson:"weight_rates,omitempty"`
	DistanceRates []RateBand     `json:"distance_rates,omitempty" bson:"distance_rates,omitempty"`
	EstimatedDays *EstimatedDays `json:"estimated_days,omitempty" bson:"estimated_days,omitempty"`
}

// ShippingZone groups destination countries under a shared set of methods.
// Countries are merchant-entered names, not necessarily ISO codes; a country
// should belong to at most one zone, and resolution takes the first match
// when a merchant configures duplicates.
type ShippingZone struct {
	ID        string           `json:"id" bson:"id"`
	Name      string           `json:"name" bson:"name"`
	Countries []string         `json:"countries" bson:"countries"`
	Methods   []ShippingMethod `json:"methods" bson:"methods"`
}

// Contains reports whether country is a member of the zone.
// Matching is exact and case-sensitive; normalization is the config layer's
// job, preserved here for compatibility with existing merchant data.
func (z ShippingZone) Contains(country string) bool {
	for _, c := range z.Countries {
		if c == country {
			return true
		}
	}
	return false
}

// OriginAddress is the merchant's ship-from location. Only the country is
// consulted by the placeholder distance estimator.
type OriginAddress struct {
	Country    string `json:"country" bson:"country"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	Address    string `json:"address,omitempty" bson:"address,omitempty"`
}

// GlobalShippingSettings are zone-independent overlay options.
type GlobalShippingSettings struct {
	EnableFreeShipping      bool    `json:"enable_free_shipping" bson:"enable_free_shipping"`
	FreeShippingThreshold   float64 `json:"free_shipping_threshold" bson:"free_shipping_threshold"`
	EnableLocalPickup       bool    `json:"enable_local_pickup" bson:"enable_local_pickup"`
	LocalPickupInstructions string  `json:"local_pickup_instructions,omitempty" bson:"local_pickup_instructions,omitempty"`
}

// ShippingSettings is the merchant-wide configuration document. It is loaded
// once per quote and treated as an immutable snapshot for that calculation.
type ShippingSettings struct {
	ID              string                 `json:"id" bson:"_id,omitempty"`
	DefaultCurrency string                 `json:"default_currency" bson:"default_currency"`
	WeightUnit      string                 `json:"weight_unit" bson:"weight_unit"`
	DimensionUnit   string                 `json:"dimension_unit" bson:"dimension_unit"`
	OriginAddress   OriginAddress          `json:"origin_address" bson:"origin_address"`
	Zones           []ShippingZone         `json:"zones" bson:"zones"`
	GlobalSettings  GlobalShippingSettings `json:"global_settings" bson:"global_settings"`
}

// CartItem is a checkout line item as seen by the rate engine.
// Weight is optional; the engine substitutes a default when absent.
type CartItem struct {
	ID       string   `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Price    float64  `json:"price" bson:"price"`
	Quantity int      `json:"quantity" bson:"quantity"`
	Weight   *float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

// Destination is where the cart ships to. Only Country is required for zone
// matching; the remaining fields are used opportunistically.
type Destination struct {
	Country    string `json:"country" bson:"country"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	City       string `json:"city,omitempty" bson:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
}

// Synthetic option ids emitted by the global overlays.
const (
	OptionIDFreeGlobal  = "free_global"
	OptionIDLocalPickup = "local_pickup"
)

// ShippingOption is one quoted shipping choice. Price 0 is a meaningful
// result (free shipping), not the absence of a price.
type ShippingOption struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	EstimatedDays *EstimatedDays `json:"estimated_days,omitempty"`
	Description   string         `json:"description,omitempty"`
}
