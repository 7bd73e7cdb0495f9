package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/ports"
)

type PlanWeekRequest struct {
	// Days to plan, in the order they should be reported. Empty means
	// every day present in the record set, in first-appearance order.
	Days   []string
	Config PlannerConfig
}

type dayResult struct {
	day  string
	plan *domain.RoutePlan
	err  error
}

// PlanWeek runs the daily planner once per requested day and assembles
// the weekly plan.
//
// Days are fully independent: each one reads only the shared immutable
// record set and writes only its own matrix/tour state, so they are
// evaluated concurrently on a bounded worker pool. A day that fails
// validation (bad coordinate, missing price, empty depot list) lands in
// Failures without aborting the remaining days.
func PlanWeek(
	ctx context.Context,
	req PlanWeekRequest,
	collections ports.CollectionPointRepository,
	depotRepo ports.DepotRepository,
	priceRepo ports.MaterialPriceRepository,
) (*domain.WeeklyPlan, error) {
	points, err := collections.ListCollectionPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan week: list collection points: %w", err)
	}
	depots, err := depotRepo.ListDepots(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan week: list depots: %w", err)
	}
	prices, err := priceRepo.ListMaterialPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan week: list material prices: %w", err)
	}

	// A duplicated label must not plan (and total) the same day twice.
	days := dedupeDays(req.Days)
	if len(days) == 0 {
		days = daysInOrder(points)
	}

	sem := make(chan struct{}, 4)
	resultsCh := make(chan dayResult, len(days))
	var wg sync.WaitGroup

	for _, day := range days {
		wg.Add(1)
		go func(day string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			plan, err := PlanDay(day, points, depots, prices, req.Config)
			resultsCh <- dayResult{day: day, plan: plan, err: err}
		}(day)
	}

	wg.Wait()
	close(resultsCh)

	week := &domain.WeeklyPlan{
		PlanID: uuid.NewString(),
		Days:   make(map[string]*domain.RoutePlan, len(days)),
	}

	for res := range resultsCh {
		if res.err != nil {
			week.Failures = append(week.Failures, domain.DayFailure{
				Day:    res.day,
				Reason: res.err.Error(),
			})
			continue
		}

		week.Days[res.day] = res.plan
		week.TotalDistanceKm += res.plan.DistanceKm
		week.TotalWeightKg += res.plan.WeightKg
		week.TotalRevenue += res.plan.Revenue
		week.TotalFuelCost += res.plan.FuelCost
	}

	// Channel drain order is nondeterministic; keep failure reporting stable.
	sort.Slice(week.Failures, func(i, j int) bool {
		return week.Failures[i].Day < week.Failures[j].Day
	})

	return week, nil
}

// dedupeDays drops repeated labels, keeping first occurrence, so each
// requested day contributes exactly one plan to the week totals.
func dedupeDays(days []string) []string {
	seen := make(map[string]struct{}, len(days))
	out := make([]string, 0, len(days))
	for _, day := range days {
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	return out
}

// daysInOrder lists the distinct days of the record set, preserving
// first appearance so output ordering follows the loaded schedule.
func daysInOrder(points []domain.CollectionPoint) []string {
	seen := make(map[string]struct{})
	days := make([]string, 0, 7)
	for _, p := range points {
		if _, ok := seen[p.Day]; ok {
			continue
		}
		seen[p.Day] = struct{}{}
		days = append(days, p.Day)
	}
	return days
}
