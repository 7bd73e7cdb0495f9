package services

import (
	"fmt"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// Business metrics for one finished route.
type RouteMetrics struct {
	WeightKg   float64
	Revenue    float64
	FuelCost   float64
	Efficiency float64
}

// ComputeRouteMetrics aggregates weight, revenue, fuel cost, and
// efficiency over the visited collection points.
//
// Revenue is Σ weight × price/kg per stop; a material missing from the
// price table fails the whole computation so the caller can report the
// exact offending record. Efficiency is revenue per km; an empty route
// with zero distance reports efficiency 0 rather than dividing by zero.
func ComputeRouteMetrics(stops []domain.CollectionPoint, prices domain.PriceTable, distanceKm, fuelCostPerKm float64) (RouteMetrics, error) {
	var metrics RouteMetrics

	for _, stop := range stops {
		revenue, err := prices.RevenueFor(stop.Material, stop.WeightKg)
		if err != nil {
			return RouteMetrics{}, fmt.Errorf("collection point %q: %w", stop.Name, err)
		}
		metrics.WeightKg += stop.WeightKg
		metrics.Revenue += revenue
	}

	metrics.FuelCost = distanceKm * fuelCostPerKm
	if distanceKm > 0 {
		metrics.Efficiency = metrics.Revenue / distanceKm
	}

	return metrics, nil
}
