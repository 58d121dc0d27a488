package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/aurelia-jewelry/checkout-rates/internal/core/domain"
	"github.com/aurelia-jewelry/checkout-rates/internal/core/ports"
)

// Engine policy constants. These are deliberate defaults applied at a single
// point, not caller-supplied values.
const (
	// defaultItemWeight substitutes for cart items with no weight on record.
	defaultItemWeight = 0.5

	// calculatedBase and calculatedPerWeight form the placeholder estimate
	// for "calculated" methods until a real carrier-rate integration exists.
	calculatedBase      = 15.99
	calculatedPerWeight = 2.5
)

// Default delivery windows for the synthetic overlay options.
var (
	freeGlobalDays  = domain.EstimatedDays{Min: 3, Max: 7}
	localPickupDays = domain.EstimatedDays{Min: 1, Max: 1}
)

type ShippingService struct {
	settings ports.SettingsRepository
	distance ports.DistanceEstimator
	logger   zerolog.Logger
}

func NewShippingService(settings ports.SettingsRepository, distance ports.DistanceEstimator, logger zerolog.Logger) *ShippingService {
	return &ShippingService{settings: settings, distance: distance, logger: logger}
}

// Quote evaluates the merchant's shipping configuration against a cart and
// destination, returning the viable options ranked free-first then cheapest.
func (s *ShippingService) Quote(ctx context.Context, input ports.ShippingQuoteInput) (*ports.ShippingQuoteResult, error) {
	if input.Destination.Country == "" {
		return nil, domain.ErrMissingCountry
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		// No settings document means no configured methods, not a failed
		// checkout: degrade to an empty option list.
		if errors.Is(err, domain.ErrSettingsNotFound) {
			s.logger.Warn().Msg("shipping settings missing, returning no options")
			return &ports.ShippingQuoteResult{Options: []domain.ShippingOption{}}, nil
		}
		return nil, fmt.Errorf("quote shipping: %w", err)
	}

	items := toCartItems(input.Items)
	dest := domain.Destination{
		Country:    input.Destination.Country,
		State:      input.Destination.State,
		City:       input.Destination.City,
		PostalCode: input.Destination.PostalCode,
	}

	options := s.calculate(items, dest, settings, input.CartTotal)

	s.logger.Info().
		Str("country", dest.Country).
		Float64("cart_total", input.CartTotal).
		Int("options", len(options)).
		Msg("shipping quote computed")

	return &ports.ShippingQuoteResult{
		Options:  options,
		Currency: settings.DefaultCurrency,
	}, nil
}

// calculate runs the rate engine over an immutable settings snapshot.
// It always returns a usable (possibly empty) list; method-level problems
// exclude the method, they never abort the quote.
func (s *ShippingService) calculate(items []domain.CartItem, dest domain.Destination, settings *domain.ShippingSettings, cartTotal float64) []domain.ShippingOption {
	var options []domain.ShippingOption

	// Zone-independent overlays first.
	global := settings.GlobalSettings
	if global.EnableFreeShipping && cartTotal >= global.FreeShippingThreshold {
		days := freeGlobalDays
		options = append(options, domain.ShippingOption{
			ID:            domain.OptionIDFreeGlobal,
			Name:          "Free Shipping",
			Price:         0,
			EstimatedDays: &days,
			Description:   fmt.Sprintf("Free shipping on orders over %.2f %s", global.FreeShippingThreshold, settings.DefaultCurrency),
		})
	}
	if global.EnableLocalPickup {
		days := localPickupDays
		instructions := global.LocalPickupInstructions
		if instructions == "" {
			instructions = "Pick up your order at our store"
		}
		options = append(options, domain.ShippingOption{
			ID:            domain.OptionIDLocalPickup,
			Name:          "Local Pickup",
			Price:         0,
			EstimatedDays: &days,
			Description:   instructions,
		})
	}

	zone := ResolveZone(dest.Country, settings.Zones)
	if zone == nil {
		s.logger.Debug().Str("country", dest.Country).Msg("destination matches no shipping zone")
		sortOptions(options)
		return options
	}

	totalWeight := TotalWeight(items)

	for _, method := range zone.Methods {
		if !method.Enabled {
			continue
		}
		option, viable := s.evaluateMethod(method, settings, dest, cartTotal, totalWeight)
		if viable {
			options = append(options, option)
		}
	}

	sortOptions(options)
	return options
}

// evaluateMethod prices a single method per its type. The second return
// value reports viability: a method with no matching rate band is excluded,
// never an error.
func (s *ShippingService) evaluateMethod(method domain.ShippingMethod, settings *domain.ShippingSettings, dest domain.Destination, cartTotal, totalWeight float64) (domain.ShippingOption, bool) {
	option := domain.ShippingOption{
		ID:            method.ID,
		Name:          method.Name,
		EstimatedDays: method.EstimatedDays,
	}

	switch method.Type {
	case domain.MethodFree:
		if method.FreeThreshold != nil && cartTotal < *method.FreeThreshold {
			return domain.ShippingOption{}, false
		}
		option.Price = 0
		if method.FreeThreshold != nil {
			option.Description = fmt.Sprintf("Free shipping on orders over %.2f %s", *method.FreeThreshold, settings.DefaultCurrency)
		} else {
			option.Description = "Free shipping"
		}
		return option, true

	case domain.MethodFixed:
		option.Price = method.Price
		return option, true

	case domain.MethodWeightBased:
		if len(method.WeightRates) == 0 {
			option.Price = method.Price
			option.Description = fmt.Sprintf("Based on total weight of %.2f %s", totalWeight, settings.WeightUnit)
			return option, true
		}
		band, ok := matchBand(method.WeightRates, totalWeight)
		if !ok {
			return domain.ShippingOption{}, false
		}
		option.Price = band.Rate
		option.Description = fmt.Sprintf("Based on total weight of %.2f %s", totalWeight, settings.WeightUnit)
		return option, true

	case domain.MethodDistanceBased:
		distance := s.distance.Distance(settings.OriginAddress, dest)
		if len(method.DistanceRates) == 0 {
			option.Price = method.Price
			option.Description = fmt.Sprintf("Based on distance of %.0f km", distance)
			return option, true
		}
		band, ok := matchBand(method.DistanceRates, distance)
		if !ok {
			return domain.ShippingOption{}, false
		}
		option.Price = band.Rate
		option.Description = fmt.Sprintf("Based on distance of %.0f km", distance)
		return option, true

	case domain.MethodCalculated:
		option.Price = round2(calculatedBase + totalWeight*calculatedPerWeight)
		option.Description = "Rate estimated via carrier API"
		return option, true

	default:
		s.logger.Warn().Str("method_id", method.ID).Str("type", string(method.Type)).Msg("unknown shipping method type skipped")
		return domain.ShippingOption{}, false
	}
}

// TotalWeight sums per-item weight times quantity, substituting the engine
// default for items with no weight on record.
func TotalWeight(items []domain.CartItem) float64 {
	var total float64
	for _, item := range items {
		weight := defaultItemWeight
		if item.Weight != nil {
			weight = *item.Weight
		}
		total += weight * float64(item.Quantity)
	}
	return total
}

// matchBand returns the first band containing value, in configured order.
func matchBand(bands []domain.RateBand, value float64) (domain.RateBand, bool) {
	for _, band := range bands {
		if band.Matches(value) {
			return band, true
		}
	}
	return domain.RateBand{}, false
}

// sortOptions orders options free-first, then ascending by price. The
// two-tier rule is deliberate UX policy: zero-price options always precede
// paid ones and keep their insertion order among themselves.
func sortOptions(options []domain.ShippingOption) {
	sort.SliceStable(options, func(i, j int) bool {
		a, b := options[i].Price, options[j].Price
		if a == 0 && b != 0 {
			return true
		}
		if a != 0 && b == 0 {
			return false
		}
		return a < b
	})
}

func toCartItems(inputs []ports.CartItemInput) []domain.CartItem {
	items := make([]domain.CartItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, domain.CartItem{
			ID:       in.ID,
			Name:     in.Name,
			Price:    in.Price,
			Quantity: in.Quantity,
			Weight:   in.Weight,
		})
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
