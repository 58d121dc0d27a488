package handler

// Request / response types for the quote endpoints. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type cartItemRequest struct {
	ID       string   `json:"id"       validate:"required"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"    validate:"gte=0"`
	Quantity int      `json:"quantity" validate:"required,min=1"`
	Weight   *float64 `json:"weight,omitempty"`
}

type destinationRequest struct {
	Country    string `json:"country" validate:"required"`
	State      string `json:"state,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type shippingQuoteRequest struct {
	Items       []cartItemRequest  `json:"items"       validate:"required,min=1,dive"`
	Destination destinationRequest `json:"destination" validate:"required"`
	CartTotal   float64            `json:"cart_total"  validate:"gte=0"`
}

type estimatedDaysResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type shippingOptionResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Price         float64                `json:"price"`
	EstimatedDays *estimatedDaysResponse `json:"estimated_days,omitempty"`
	Description   string                 `json:"description,omitempty"`
}

type shippingQuoteResponse struct {
	Options  []shippingOptionResponse `json:"options"`
	Currency string                   `json:"currency,omitempty"`
}

type taxAddressRequest struct {
	State   string `json:"state"`
	Country string `json:"country"`
}

type detectedLocationRequest struct {
	Country string `json:"country"`
	Region  string `json:"region"`
}

type taxQuoteRequest struct {
	Subtotal         float64                  `json:"subtotal" validate:"required,gt=0"`
	ShippingAddress  *taxAddressRequest       `json:"shipping_address,omitempty"`
	DetectedLocation *detectedLocationRequest `json:"detected_location,omitempty"`
}

type taxLineResponse struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

type taxQuoteResponse struct {
	Taxes            []taxLineResponse `json:"taxes"`
	TotalTaxRate     float64           `json:"total_tax_rate"`
	TotalTaxAmount   float64           `json:"total_tax_amount"`
	TaxLocation      string            `json:"tax_location"`
	DetectedLocation string            `json:"detected_location"`
	Subtotal         float64           `json:"subtotal"`
	Total            float64           `json:"total"`
}
