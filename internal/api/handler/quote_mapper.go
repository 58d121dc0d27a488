package handler

import (
	"github.com/aurelia-jewelry/checkout-rates/internal/core/domain"
	"github.com/aurelia-jewelry/checkout-rates/internal/core/ports"
)

// --- Request → Service input ---

func toShippingQuoteInput(req shippingQuoteRequest) ports.ShippingQuoteInput {
	items := make([]ports.CartItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.CartItemInput{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			Weight:   it.Weight,
		})
	}
	return ports.ShippingQuoteInput{
		Items: items,
		Destination: ports.DestinationInput{
			Country:    req.Destination.Country,
			State:      req.Destination.State,
			City:       req.Destination.City,
			PostalCode: req.Destination.PostalCode,
		},
		CartTotal: req.CartTotal,
	}
}

func toTaxQuoteInput(req taxQuoteRequest, clientIP string) ports.TaxQuoteInput {
	input := ports.TaxQuoteInput{
		Subtotal: req.Subtotal,
		ClientIP: clientIP,
	}
	if req.ShippingAddress != nil {
		input.ShippingAddress = &ports.TaxAddressInput{
			State:   req.ShippingAddress.State,
			Country: req.ShippingAddress.Country,
		}
	}
	if req.DetectedLocation != nil {
		input.DetectedLocation = &ports.DetectedLocationInput{
			Country: req.DetectedLocation.Country,
			Region:  req.DetectedLocation.Region,
		}
	}
	return input
}

// --- Service result → HTTP response ---

func toShippingQuoteResponse(result *ports.ShippingQuoteResult) shippingQuoteResponse {
	options := make([]shippingOptionResponse, 0, len(result.Options))
	for _, opt := range result.Options {
		options = append(options, toShippingOptionResponse(opt))
	}
	return shippingQuoteResponse{Options: options, Currency: result.Currency}
}

func toShippingOptionResponse(opt domain.ShippingOption) shippingOptionResponse {
	resp := shippingOptionResponse{
		ID:          opt.ID,
		Name:        opt.Name,
		Price:       opt.Price,
		Description: opt.Description,
	}
	if opt.EstimatedDays != nil {
		resp.EstimatedDays = &estimatedDaysResponse{
			Min: opt.EstimatedDays.Min,
			Max: opt.EstimatedDays.Max,
		}
	}
	return resp
}

func toTaxQuoteResponse(result *domain.TaxResult) taxQuoteResponse {
	lines := make([]taxLineResponse, 0, len(result.Taxes))
	for _, line := range result.Taxes {
		lines = append(lines, taxLineResponse{
			Name:   line.Name,
			Type:   string(line.Type),
			Rate:   line.Rate,
			Amount: line.Amount,
		})
	}
	return taxQuoteResponse{
		Taxes:            lines,
		TotalTaxRate:     result.TotalTaxRate,
		TotalTaxAmount:   result.TotalTaxAmount,
		TaxLocation:      result.TaxLocation,
		DetectedLocation: result.DetectedLocation,
		Subtotal:         result.Subtotal,
		Total:            result.Total,
	}
}
