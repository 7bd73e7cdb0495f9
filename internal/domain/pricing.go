package domain

import "fmt"

// PriceTable maps a material type to its revenue per kilogram.
// Immutable for the duration of a planning run.
type PriceTable map[string]float64

// RevenueFor returns weight × price/kg for the given material.
// A material absent from the table is a data-consistency failure and is
// surfaced rather than silently contributing zero revenue.
func (p PriceTable) RevenueFor(material string, weightKg float64) (float64, error) {
	price, ok := p[material]
	if !ok {
		return 0, fmt.Errorf("material %q: %w", material, ErrMissingPrice)
	}
	return weightKg * price, nil
}
