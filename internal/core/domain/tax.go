package domain

import "strings"

// TaxType classifies a single tax component.
type TaxType string

const (
	TaxSales         TaxType = "sales"
	TaxExcise        TaxType = "excise"
	TaxGrossReceipts TaxType = "gross_receipts"
	TaxGST           TaxType = "gst"
	TaxPST           TaxType = "pst"
	TaxHST           TaxType = "hst"
	TaxQST           TaxType = "qst"
)

// TaxComponent is one tax levied by a jurisdiction.
type TaxComponent struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
	Type TaxType `json:"type"`
}

// TaxJurisdiction holds the tax components applicable at a location.
// A jurisdiction may carry zero components (tax-free); Canadian
// jurisdictions may stack two (GST+PST or GST+QST).
type TaxJurisdiction struct {
	Code     string         `json:"code"`
	Location string         `json:"location"`
	Taxes    []TaxComponent `json:"taxes"`
}

// IsFallback reports whether the jurisdiction is one of the DEFAULT_*
// entries rather than a recognized state or province.
func (j TaxJurisdiction) IsFallback() bool {
	return strings.HasPrefix(j.Code, "DEFAULT_")
}

// TaxLine is one itemized component in a computed tax result.
type TaxLine struct {
	Name   string  `json:"name"`
	Type   TaxType `json:"type"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// TaxResult is the full tax breakdown for an order subtotal.
type TaxResult struct {
	Taxes          []TaxLine `json:"taxes"`
	TotalTaxRate   float64   `json:"total_tax_rate"`
	TotalTaxAmount float64   `json:"total_tax_amount"`
	TaxLocation    string    `json:"tax_location"`
	// DetectedLocation records how the jurisdiction was determined
	// (shipping address, detected location, IP lookup, or fallback).
	DetectedLocation string  `json:"detected_location"`
	Subtotal         float64 `json:"subtotal"`
	Total            float64 `json:"total"`
}
