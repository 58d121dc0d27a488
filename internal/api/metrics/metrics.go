// Package metrics defines and registers all custom Prometheus metrics for
// the checkout rates service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at init; the /metrics route is
// mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "checkout"

// QuotesTotal counts completed quote computations.
// Labels:
//   - kind: "shipping" or "tax"
var QuotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_total",
		Help:      "Total number of quotes computed, by kind.",
	},
	[]string{"kind"},
)

// QuoteErrorsTotal counts quote requests rejected or failed.
// Labels:
//   - kind: "shipping" or "tax"
//   - reason: short failure description (e.g. "invalid_input", "settings_load")
var QuoteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_errors_total",
		Help:      "Total number of quote requests that failed, by kind and reason.",
	},
	[]string{"kind", "reason"},
)

// ShippingOptionsReturned observes how many options each shipping quote
// yields. A sustained zero suggests zone misconfiguration.
var ShippingOptionsReturned = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "shipping_options_returned",
		Help:      "Number of shipping options returned per quote.",
		Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
	},
)

// GeoIPLookupsTotal counts IP geolocation resolutions.
// Label:
//   - outcome: "cache_hit", "success", or "error"
var GeoIPLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geoip_lookups_total",
		Help:      "Total number of IP geolocation lookups, by outcome.",
	},
	[]string{"outcome"},
)

// TaxFallbacksTotal counts tax quotes that resolved to a DEFAULT_* fallback
// jurisdiction instead of a recognized state or province.
// Label:
//   - jurisdiction: the fallback key used
var TaxFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tax_fallbacks_total",
		Help:      "Total number of tax quotes resolved to a fallback jurisdiction.",
	},
	[]string{"jurisdiction"},
)
