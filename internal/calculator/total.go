// Package calculator computes bill totals from items and taxes.
package calculator

import "github.com/mmynk/splitbot/internal/models"

// Subtotal sums item prices.
func Subtotal(items []models.Item) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price
	}
	return subtotal
}

// ApplyTaxes compounds taxes onto subtotal in the given order.
// Each tax is applied to the running total, so later taxes include earlier ones:
// running_total += rate × running_total / 100
func ApplyTaxes(subtotal float64, taxes []models.Tax) float64 {
	total := subtotal
	for _, tax := range taxes {
		total += tax.Rate * total / 100
	}
	return total
}

// Total computes the bill total. It is always derived, never stored.
func Total(items []models.Item, taxes []models.Tax) float64 {
	return ApplyTaxes(Subtotal(items), taxes)
}
