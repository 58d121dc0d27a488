// Package geoip resolves client IPs to coarse locations through an external
// ip-api-compatible HTTP service. The service is an untrusted, best-effort
// oracle: every failure surfaces as an error for the caller to degrade on,
// never as a panic or a retry loop.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aurelia-jewelry/checkout-rates/internal/api/metrics"
	"github.com/aurelia-jewelry/checkout-rates/internal/core/ports"
)

// defaultLookupTimeout bounds the outbound lookup. The upstream reference had
// no timeout at all; a slow oracle must not stall checkout.
const defaultLookupTimeout = 3 * time.Second

// Cache is an optional read-through cache for resolved IPs. A nil location
// with a nil error means a miss.
type Cache interface {
	Get(ctx context.Context, ip string) (*ports.GeoLocation, error)
	Set(ctx context.Context, ip string, loc *ports.GeoLocation) error
}

// Client queries an ip-api-shaped endpoint:
// GET {base}/json/{ip}?fields=status,country,countryCode,region,regionName
type Client struct {
	baseURL string
	http    *http.Client
	cache   Cache
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCache attaches a read-through cache (typically Redis-backed).
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithTimeout overrides the per-lookup timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func NewClient(baseURL string, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultLookupTimeout},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type lookupResponse struct {
	Status      string `json:"status"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Region      string `json:"region"`
	RegionName  string `json:"regionName"`
}

// Lookup resolves ip to a location. Cache errors are logged and treated as
// misses; only the network lookup itself can fail the call.
func (c *Client) Lookup(ctx context.Context, ip string) (*ports.GeoLocation, error) {
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, ip)
		if err != nil {
			c.log.Warn().Err(err).Str("ip", ip).Msg("geo cache read failed")
		} else if cached != nil {
			metrics.GeoIPLookupsTotal.WithLabelValues("cache_hit").Inc()
			return cached, nil
		}
	}

	loc, err := c.fetch(ctx, ip)
	if err != nil {
		metrics.GeoIPLookupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.GeoIPLookupsTotal.WithLabelValues("success").Inc()

	if c.cache != nil {
		if err := c.cache.Set(ctx, ip, loc); err != nil {
			c.log.Warn().Err(err).Str("ip", ip).Msg("geo cache write failed")
		}
	}
	return loc, nil
}

func (c *Client) fetch(ctx context.Context, ip string) (*ports.GeoLocation, error) {
	url := fmt.Sprintf("%s/json/%s?fields=status,country,countryCode,region,regionName", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("geoip request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoip lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoip lookup: unexpected status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geoip decode: %w", err)
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("geoip lookup: status %q", body.Status)
	}

	return &ports.GeoLocation{
		Country:     body.Country,
		CountryCode: body.CountryCode,
		Region:      body.Region,
		RegionName:  body.RegionName,
	}, nil
}
