package services

import (
	"fmt"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// PlanDay computes the optimized RoutePlan for a single day.
//
// It filters the week's collection points to the requested day, selects
// the best depot by trial routing, and turns the winning tour into
// business metrics. A day with zero collection points yields an explicit
// empty plan with zero distance/weight/revenue and no depot assignment;
// that is a degenerate case, not an error.
func PlanDay(day string, points []domain.CollectionPoint, depots []domain.Depot, prices domain.PriceTable, cfg PlannerConfig) (*domain.RoutePlan, error) {
	cfg = cfg.withDefaults()

	dayPoints := make([]domain.CollectionPoint, 0, len(points))
	for _, p := range points {
		if p.Day == day {
			dayPoints = append(dayPoints, p)
		}
	}

	if len(dayPoints) == 0 {
		return &domain.RoutePlan{Day: day, Stops: []domain.RouteStop{}}, nil
	}

	trial, err := SelectDepot(depots, dayPoints, cfg)
	if err != nil {
		return nil, fmt.Errorf("plan day %s: %w", day, err)
	}

	// Tour index i maps to dayPoints[i-1]; index 0 is the depot.
	stops := make([]domain.RouteStop, 0, len(trial.Tour)-1)
	for pos := 1; pos < len(trial.Tour); pos++ {
		stops = append(stops, domain.RouteStop{
			Sequence: pos,
			Point:    dayPoints[trial.Tour[pos]-1],
			LegKm:    trial.Matrix.At(trial.Tour[pos-1], trial.Tour[pos]),
		})
	}

	visited := make([]domain.CollectionPoint, len(stops))
	for i, s := range stops {
		visited[i] = s.Point
	}

	metrics, err := ComputeRouteMetrics(visited, prices, trial.DistanceKm, cfg.FuelCostPerKm)
	if err != nil {
		return nil, fmt.Errorf("plan day %s: %w", day, err)
	}

	return &domain.RoutePlan{
		Day:        day,
		Depot:      trial.Depot,
		Stops:      stops,
		DistanceKm: trial.DistanceKm,
		WeightKg:   metrics.WeightKg,
		Revenue:    metrics.Revenue,
		FuelCost:   metrics.FuelCost,
		Efficiency: metrics.Efficiency,
	}, nil
}
