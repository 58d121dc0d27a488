package geoip

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aurelia-jewelry/checkout-rates/internal/core/ports"
)

type memoryCache struct {
	entries map[string]*ports.GeoLocation
	getErr  error
	setErr  error
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]*ports.GeoLocation{}}
}

func (c *memoryCache) Get(_ context.Context, ip string) (*ports.GeoLocation, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[ip], nil
}

func (c *memoryCache) Set(_ context.Context, ip string, loc *ports.GeoLocation) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[ip] = loc
	return nil
}

func TestLookup_Success(t *testing.T) {
	var gotPath, gotFields string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFields = r.URL.Query().Get("fields")
		w.Write([]byte(`{"status":"success","country":"Canada","countryCode":"CA","region":"ON","regionName":"Ontario"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	loc, err := client.Lookup(context.Background(), "203.0.113.9")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	if gotPath != "/json/203.0.113.9" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotFields != "status,country,countryCode,region,regionName" {
		t.Fatalf("unexpected fields %q", gotFields)
	}
	if loc.CountryCode != "CA" || loc.Region != "ON" || loc.RegionName != "Ontario" {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestLookup_FailStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	if _, err := client.Lookup(context.Background(), "10.0.0.1"); err == nil {
		t.Fatal("expected error for non-success payload status")
	}
}

func TestLookup_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	if _, err := client.Lookup(context.Background(), "203.0.113.9"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestLookup_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())
	if _, err := client.Lookup(context.Background(), "203.0.113.9"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLookup_CacheHitSkipsNetwork(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"status":"success","country":"France","countryCode":"FR"}`))
	}))
	defer srv.Close()

	cache := newMemoryCache()
	cache.entries["203.0.113.9"] = &ports.GeoLocation{Country: "France", CountryCode: "FR"}

	client := NewClient(srv.URL, zerolog.Nop(), WithCache(cache))
	loc, err := client.Lookup(context.Background(), "203.0.113.9")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if loc.CountryCode != "FR" {
		t.Fatalf("unexpected location %+v", loc)
	}
	if hits != 0 {
		t.Fatalf("cache hit must skip the network, got %d requests", hits)
	}
}

func TestLookup_MissPopulatesCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","country":"Japan","countryCode":"JP"}`))
	}))
	defer srv.Close()

	cache := newMemoryCache()
	client := NewClient(srv.URL, zerolog.Nop(), WithCache(cache))

	if _, err := client.Lookup(context.Background(), "198.51.100.7"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got := cache.entries["198.51.100.7"]; got == nil || got.CountryCode != "JP" {
		t.Fatalf("expected cached entry, got %+v", got)
	}
}

func TestLookup_CacheErrorsAreSoft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","country":"Japan","countryCode":"JP"}`))
	}))
	defer srv.Close()

	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")

	client := NewClient(srv.URL, zerolog.Nop(), WithCache(cache))
	loc, err := client.Lookup(context.Background(), "198.51.100.7")
	if err != nil {
		t.Fatalf("cache failures must not fail the lookup: %v", err)
	}
	if loc.CountryCode != "JP" {
		t.Fatalf("unexpected location %+v", loc)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write attempt, got %d", cache.sets)
	}
}
