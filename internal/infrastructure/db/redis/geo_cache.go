package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aurelia-jewelry/checkout-rates/internal/core/ports"
)

// geoTTL bounds how long a resolved IP location stays cached. Client IPs
// move between networks, so entries are short-lived.
const geoTTL = 6 * time.Hour

// GeoCache caches IP geolocation results in Redis.
// Key format: geoip:<ip>
type GeoCache struct {
	client *redis.Client
}

// NewGeoCache creates a GeoCache wrapping the given Redis client.
func NewGeoCache(client *redis.Client) *GeoCache {
	return &GeoCache{client: client}
}

// Get returns the cached location for ip, or (nil, nil) on a cache miss.
func (c *GeoCache) Get(ctx context.Context, ip string) (*ports.GeoLocation, error) {
	raw, err := c.client.Get(ctx, c.key(ip)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("geo cache get: %w", err)
	}

	var loc ports.GeoLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, fmt.Errorf("geo cache decode: %w", err)
	}
	return &loc, nil
}

// Set stores a resolved location (expires after geoTTL).
func (c *GeoCache) Set(ctx context.Context, ip string, loc *ports.GeoLocation) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("geo cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ip), raw, geoTTL).Err()
}

func (c *GeoCache) key(ip string) string {
	return "geoip:" + ip
}
