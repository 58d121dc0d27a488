package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurelia-jewelry/checkout-rates/internal/api/metrics"
	"github.com/aurelia-jewelry/checkout-rates/internal/core/ports"
)

// QuoteHandler handles HTTP requests for shipping and tax quotes.
type QuoteHandler struct {
	shipping ports.ShippingService
	tax      ports.TaxService
}

func NewQuoteHandler(shipping ports.ShippingService, tax ports.TaxService) *QuoteHandler {
	return &QuoteHandler{shipping: shipping, tax: tax}
}

// ShippingQuote handles POST /v1/quotes/shipping.
//
// @Summary      Quote shipping options for a cart
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      shippingQuoteRequest  true  "Cart items, destination, and cart total"
// @Success      200   {object}  shippingQuoteResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/quotes/shipping [post]
func (h *QuoteHandler) ShippingQuote(c echo.Context) error {
	var req shippingQuoteRequest
	if err := c.Bind(&req); err != nil {
		metrics.QuoteErrorsTotal.WithLabelValues("shipping", "invalid_payload").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.QuoteErrorsTotal.WithLabelValues("shipping", "invalid_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.shipping.Quote(c.Request().Context(), toShippingQuoteInput(req))
	if err != nil {
		metrics.QuoteErrorsTotal.WithLabelValues("shipping", "quote_failed").Inc()
		return err
	}

	metrics.QuotesTotal.WithLabelValues("shipping").Inc()
	metrics.ShippingOptionsReturned.Observe(float64(len(result.Options)))

	return c.JSON(http.StatusOK, toShippingQuoteResponse(result))
}

// TaxQuote handles POST /v1/quotes/tax.
//
// @Summary      Compute tax for a subtotal at the best-known location
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      taxQuoteRequest  true  "Subtotal and optional location signals"
// @Success      200   {object}  taxQuoteResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/quotes/tax [post]
func (h *QuoteHandler) TaxQuote(c echo.Context) error {
	var req taxQuoteRequest
	if err := c.Bind(&req); err != nil {
		metrics.QuoteErrorsTotal.WithLabelValues("tax", "invalid_payload").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.QuoteErrorsTotal.WithLabelValues("tax", "invalid_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.tax.Quote(c.Request().Context(), toTaxQuoteInput(req, clientIP(c)))
	if err != nil {
		metrics.QuoteErrorsTotal.WithLabelValues("tax", "quote_failed").Inc()
		return err
	}

	metrics.QuotesTotal.WithLabelValues("tax").Inc()

	return c.JSON(http.StatusOK, toTaxQuoteResponse(result))
}
