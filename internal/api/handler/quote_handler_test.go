package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aurelia-jewelry/checkout-rates/internal/core/domain"
	"github.com/aurelia-jewelry/checkout-rates/internal/core/ports"
)

type stubShippingService struct {
	quoteFn func(ctx context.Context, input ports.ShippingQuoteInput) (*ports.ShippingQuoteResult, error)
}

func (s *stubShippingService) Quote(ctx context.Context, input ports.ShippingQuoteInput) (*ports.ShippingQuoteResult, error) {
	return s.quoteFn(ctx, input)
}

type stubTaxService struct {
	quoteFn func(ctx context.Context, input ports.TaxQuoteInput) (*domain.TaxResult, error)
}

func (s *stubTaxService) Quote(ctx context.Context, input ports.TaxQuoteInput) (*domain.TaxResult, error) {
	return s.quoteFn(ctx, input)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestShippingQuote_Success(t *testing.T) {
	days := domain.EstimatedDays{Min: 3, Max: 7}
	stub := &stubShippingService{
		quoteFn: func(ctx context.Context, input ports.ShippingQuoteInput) (*ports.ShippingQuoteResult, error) {
			if input.Destination.Country != "United States" || input.CartTotal != 250 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if len(input.Items) != 1 || input.Items[0].Quantity != 2 {
				t.Fatalf("unexpected items: %+v", input.Items)
			}
			return &ports.ShippingQuoteResult{
				Options: []domain.ShippingOption{
					{ID: domain.OptionIDFreeGlobal, Name: "Free Shipping", Price: 0, EstimatedDays: &days},
					{ID: "express", Name: "Express", Price: 24.99},
				},
				Currency: "USD",
			}, nil
		},
	}
	handler := NewQuoteHandler(stub, &stubTaxService{})

	c, rec := newTestContext(t, http.MethodPost, "/v1/quotes/shipping",
		`{"items":[{"id":"ring-1","quantity":2,"price":125}],"destination":{"country":"United States","state":"NY"},"cart_total":250}`)

	if err := handler.ShippingQuote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["currency"] != "USD" {
		t.Fatalf("expected currency USD, got %v", resp["currency"])
	}
	options, ok := resp["options"].([]any)
	if !ok || len(options) != 2 {
		t.Fatalf("expected 2 options, got %v", resp["options"])
	}
	first, _ := options[0].(map[string]any)
	if first["id"] != "free_global" || first["price"] != float64(0) {
		t.Fatalf("unexpected first option: %+v", first)
	}
	if _, present := first["estimated_days"]; !present {
		t.Fatalf("expected estimated_days on first option: %+v", first)
	}
}

func TestShippingQuote_InvalidPayload(t *testing.T) {
	stub := &stubShippingService{
		quoteFn: func(ctx context.Context, input ports.ShippingQuoteInput) (*ports.ShippingQuoteResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewQuoteHandler(stub, &stubTaxService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/quotes/shipping", "not-json")

	err := handler.ShippingQuote(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestShippingQuote_EmptyCartRejected(t *testing.T) {
	stub := &stubShippingService{
		quoteFn: func(ctx context.Context, input ports.ShippingQuoteInput) (*ports.ShippingQuoteResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewQuoteHandler(stub, &stubTaxService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/quotes/shipping",
		`{"items":[],"destination":{"country":"United States"},"cart_total":0}`)

	err := handler.ShippingQuote(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestShippingQuote_ServiceErrorPropagates(t *testing.T) {
	stub := &stubShippingService{
		quoteFn: func(ctx context.Context, input ports.ShippingQuoteInput) (*ports.ShippingQuoteResult, error) {
			return nil, domain.ErrMissingCountry
		},
	}
	handler := NewQuoteHandler(stub, &stubTaxService{})

	c, _ := newTestContext(t, http.MethodPost, "/v1/quotes/shipping",
		`{"items":[{"id":"ring-1","quantity":1}],"destination":{"country":"x"},"cart_total":10}`)

	err := handler.ShippingQuote(c)
	if !errors.Is(err, domain.ErrMissingCountry) {
		t.Fatalf("expected domain error to pass through, got %v", err)
	}
}

func TestTaxQuote_Success(t *testing.T) {
	stub := &stubTaxService{
		quoteFn: func(ctx context.Context, input ports.TaxQuoteInput) (*domain.TaxResult, error) {
			if input.Subtotal != 1000 {
				t.Fatalf("unexpected subtotal %v", input.Subtotal)
			}
			if input.ShippingAddress == nil || input.ShippingAddress.State != "California" {
				t.Fatalf("unexpected address %+v", input.ShippingAddress)
			}
			if input.ClientIP != "203.0.113.9" {
				t.Fatalf("expected forwarded client ip, got %q", input.ClientIP)
			}
			return &domain.TaxResult{
				Taxes:            []domain.TaxLine{{Name: "California Sales Tax", Type: domain.TaxSales, Rate: 0.0725, Amount: 72.50}},
				TotalTaxRate:     0.0725,
				TotalTaxAmount:   72.50,
				TaxLocation:      "California",
				DetectedLocation: "Shipping Address: California",
				Subtotal:         1000,
				Total:            1072.50,
			}, nil
		},
	}
	handler := NewQuoteHandler(&stubShippingService{}, stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/quotes/tax",
		`{"subtotal":1000,"shipping_address":{"state":"California","country":"United States"}}`)
	c.Request().Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	if err := handler.TaxQuote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(1072.50) || resp["tax_location"] != "California" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp["detected_location"] != "Shipping Address: California" {
		t.Fatalf("unexpected provenance: %v", resp["detected_location"])
	}
}

func TestTaxQuote_ZeroSubtotalRejected(t *testing.T) {
	stub := &stubTaxService{
		quoteFn: func(ctx context.Context, input ports.TaxQuoteInput) (*domain.TaxResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewQuoteHandler(&stubShippingService{}, stub)

	c, _ := newTestContext(t, http.MethodPost, "/v1/quotes/tax", `{"subtotal":0}`)

	err := handler.TaxQuote(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestClientIP(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name       string
		forwarded  string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded first entry", "198.51.100.7, 10.0.0.1", "", "10.0.0.2:1234", "198.51.100.7"},
		{"real ip", "", "198.51.100.8", "10.0.0.2:1234", "198.51.100.8"},
		{"remote addr", "", "", "198.51.100.9:5678", "198.51.100.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			req.RemoteAddr = tt.remoteAddr
			c := e.NewContext(req, httptest.NewRecorder())

			if got := clientIP(c); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
