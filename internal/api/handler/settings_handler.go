package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aurelia-jewelry/checkout-rates/internal/core/domain"
	"github.com/aurelia-jewelry/checkout-rates/internal/core/ports"
)

// SettingsHandler exposes the merchant shipping configuration to the admin
// back-office. The document is stored as-is: method fields that do not apply
// to a method's type are kept, not validated away (tolerant schema).
type SettingsHandler struct {
	repo ports.SettingsRepository
}

func NewSettingsHandler(repo ports.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// Get handles GET /v1/admin/shipping-settings.
//
// @Summary      Fetch the merchant shipping configuration
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ShippingSettings
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/shipping-settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.repo.Load(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Put handles PUT /v1/admin/shipping-settings.
//
// @Summary      Replace the merchant shipping configuration
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ShippingSettings
// @Failure      400  {object}  map[string]string
// @Router       /v1/admin/shipping-settings [put]
func (h *SettingsHandler) Put(c echo.Context) error {
	var settings domain.ShippingSettings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := validateSettings(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.repo.Save(c.Request().Context(), &settings); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// validateSettings checks only the fields the rate engine depends on.
// Everything else in the document passes through untouched.
func validateSettings(s *domain.ShippingSettings) error {
	switch s.WeightUnit {
	case "", "kg", "lb":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "weight_unit must be kg or lb")
	}
	switch s.DimensionUnit {
	case "", "cm", "in":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "dimension_unit must be cm or in")
	}
	for _, zone := range s.Zones {
		if zone.ID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "every zone requires an id")
		}
		for _, method := range zone.Methods {
			if method.ID == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "every method requires an id")
			}
		}
	}
	return nil
}
