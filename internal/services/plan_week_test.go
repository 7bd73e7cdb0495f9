package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// In-package fakes for the repository ports.
type stubRepo struct {
	points []domain.CollectionPoint
	depots []domain.Depot
	prices domain.PriceTable
}

func (s *stubRepo) ListCollectionPoints(ctx context.Context) ([]domain.CollectionPoint, error) {
	return s.points, nil
}

func (s *stubRepo) ListDepots(ctx context.Context) ([]domain.Depot, error) {
	return s.depots, nil
}

func (s *stubRepo) ListMaterialPrices(ctx context.Context) (domain.PriceTable, error) {
	return s.prices, nil
}

func TestPlanDayScenario(t *testing.T) {
	// Three points, weights 100/50/200 kg of one material at 2.00/kg,
	// depot at (-26.18, 28.02). Nearest-neighbor order is A, C, B and
	// revenue must come out at exactly 700.00.
	plan, err := PlanDay("Monday", testPoints(), []domain.Depot{testDepot()},
		domain.PriceTable{"Plastic": 2.0}, PlannerConfig{Level: LevelAdvanced})
	require.NoError(t, err)

	require.Len(t, plan.Stops, 3)
	assert.Equal(t, "A", plan.Stops[0].Point.Name)
	assert.Equal(t, "C", plan.Stops[1].Point.Name)
	assert.Equal(t, "B", plan.Stops[2].Point.Name)
	assert.Equal(t, 1, plan.Stops[0].Sequence)

	assert.Equal(t, 350.0, plan.WeightKg)
	assert.Equal(t, 700.0, plan.Revenue)
	assert.Greater(t, plan.DistanceKm, 0.0)
	assert.InDelta(t, plan.Revenue/plan.DistanceKm, plan.Efficiency, 1e-9)

	// Per-leg distances must sum to the route total (open tour).
	sum := 0.0
	for _, stop := range plan.Stops {
		sum += stop.LegKm
	}
	assert.InDelta(t, plan.DistanceKm, sum, 1e-9)
}

func TestPlanDayEmptyDay(t *testing.T) {
	plan, err := PlanDay("Sunday", testPoints(), []domain.Depot{testDepot()},
		domain.PriceTable{"Plastic": 2.0}, PlannerConfig{})
	require.NoError(t, err)

	assert.Equal(t, "Sunday", plan.Day)
	assert.Empty(t, plan.Stops)
	assert.Equal(t, 0.0, plan.DistanceKm)
	assert.Equal(t, 0.0, plan.Revenue)
	assert.Equal(t, 0.0, plan.WeightKg)
	assert.Equal(t, 0.0, plan.Efficiency)
}

func TestPlanWeekAggregates(t *testing.T) {
	points := testPoints()
	points = append(points, domain.CollectionPoint{
		Name:     "Tue-1",
		Coords:   domain.Coordinates{Lat: -26.12, Lon: 28.05},
		Material: "Glass",
		WeightKg: 80,
		Day:      "Tuesday",
	})

	repo := &stubRepo{
		points: points,
		depots: []domain.Depot{testDepot()},
		prices: domain.PriceTable{"Plastic": 2.0, "Glass": 1.5},
	}

	week, err := PlanWeek(context.Background(), PlanWeekRequest{}, repo, repo, repo)
	require.NoError(t, err)

	require.NotEmpty(t, week.PlanID)
	require.Len(t, week.Days, 2)
	require.Empty(t, week.Failures)

	monday := week.Days["Monday"]
	tuesday := week.Days["Tuesday"]
	require.NotNil(t, monday)
	require.NotNil(t, tuesday)

	assert.InDelta(t, monday.DistanceKm+tuesday.DistanceKm, week.TotalDistanceKm, 1e-9)
	assert.InDelta(t, monday.Revenue+tuesday.Revenue, week.TotalRevenue, 1e-9)
	assert.InDelta(t, monday.WeightKg+tuesday.WeightKg, week.TotalWeightKg, 1e-9)
	assert.Equal(t, 700.0, monday.Revenue)
	assert.Equal(t, 120.0, tuesday.Revenue)
}

func TestPlanWeekIsolatesFailingDay(t *testing.T) {
	points := testPoints()
	points = append(points, domain.CollectionPoint{
		Name:     "Mystery",
		Coords:   domain.Coordinates{Lat: -26.12, Lon: 28.05},
		Material: "Unobtainium",
		WeightKg: 10,
		Day:      "Tuesday",
	})

	repo := &stubRepo{
		points: points,
		depots: []domain.Depot{testDepot()},
		prices: domain.PriceTable{"Plastic": 2.0},
	}

	week, err := PlanWeek(context.Background(), PlanWeekRequest{}, repo, repo, repo)
	require.NoError(t, err)

	// Monday still planned; Tuesday recorded as a failure.
	require.Len(t, week.Days, 1)
	assert.Equal(t, 700.0, week.Days["Monday"].Revenue)

	require.Len(t, week.Failures, 1)
	assert.Equal(t, "Tuesday", week.Failures[0].Day)
	assert.Contains(t, week.Failures[0].Reason, "Unobtainium")
	assert.Contains(t, week.Failures[0].Reason, "Mystery")
}

func TestPlanWeekDuplicateDaysCountOnce(t *testing.T) {
	repo := &stubRepo{
		points: testPoints(),
		depots: []domain.Depot{testDepot()},
		prices: domain.PriceTable{"Plastic": 2.0},
	}

	week, err := PlanWeek(context.Background(), PlanWeekRequest{Days: []string{"Monday", "Monday"}}, repo, repo, repo)
	require.NoError(t, err)

	// A repeated label plans the day once; totals must stay the sum
	// over Days rather than double-counting the duplicate.
	require.Len(t, week.Days, 1)
	assert.Equal(t, 700.0, week.Days["Monday"].Revenue)
	assert.Equal(t, 700.0, week.TotalRevenue)
	assert.InDelta(t, week.Days["Monday"].DistanceKm, week.TotalDistanceKm, 1e-9)
	assert.InDelta(t, week.Days["Monday"].WeightKg, week.TotalWeightKg, 1e-9)
	assert.InDelta(t, week.Days["Monday"].FuelCost, week.TotalFuelCost, 1e-9)
}

func TestPlanWeekExplicitDays(t *testing.T) {
	repo := &stubRepo{
		points: testPoints(),
		depots: []domain.Depot{testDepot()},
		prices: domain.PriceTable{"Plastic": 2.0},
	}

	week, err := PlanWeek(context.Background(), PlanWeekRequest{Days: []string{"Monday", "Friday"}}, repo, repo, repo)
	require.NoError(t, err)

	// Friday has no points: explicit empty plan, not a failure.
	require.Len(t, week.Days, 2)
	assert.Empty(t, week.Failures)
	assert.Empty(t, week.Days["Friday"].Stops)
	assert.Equal(t, 700.0, week.Days["Monday"].Revenue)
}
