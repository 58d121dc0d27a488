package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aurelia-jewelry/checkout-rates/internal/api/handler"
	"github.com/aurelia-jewelry/checkout-rates/internal/api/middleware"
	"github.com/aurelia-jewelry/checkout-rates/internal/core/service"
	mongodb "github.com/aurelia-jewelry/checkout-rates/internal/infrastructure/db/mongo"
	redisdb "github.com/aurelia-jewelry/checkout-rates/internal/infrastructure/db/redis"
	"github.com/aurelia-jewelry/checkout-rates/internal/infrastructure/geoip"
)

// RouterConfig carries the external dependencies the router wires together.
type RouterConfig struct {
	Mongo        *mongo.Database
	Redis        *redis.Client
	JWTSecret    string
	GeoIPBaseURL string
	GeoIPTimeout time.Duration
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("checkout"))

	// --- Dependencies ---
	settingsRepo := mongodb.NewSettingsRepository(cfg.Mongo)
	geoCache := redisdb.NewGeoCache(cfg.Redis)
	geoOpts := []geoip.Option{geoip.WithCache(geoCache)}
	if cfg.GeoIPTimeout > 0 {
		geoOpts = append(geoOpts, geoip.WithTimeout(cfg.GeoIPTimeout))
	}
	geoClient := geoip.NewClient(cfg.GeoIPBaseURL, cfg.Logger, geoOpts...)

	shippingService := service.NewShippingService(settingsRepo, service.NewFlatDistanceEstimator(), cfg.Logger)
	taxService := service.NewTaxService(geoClient, cfg.Logger)

	quoteHandler := handler.NewQuoteHandler(shippingService, taxService)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)

	// --- Quote routes (public: called by the storefront checkout flow) ---
	e.POST("/v1/quotes/shipping", quoteHandler.ShippingQuote)
	e.POST("/v1/quotes/tax", quoteHandler.TaxQuote)

	// --- Admin routes (bearer token from the storefront session provider) ---
	admin := e.Group("/v1/admin", middleware.Auth(cfg.JWTSecret), middleware.RBAC("admin"))
	admin.GET("/shipping-settings", settingsHandler.Get)
	admin.PUT("/shipping-settings", settingsHandler.Put)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
