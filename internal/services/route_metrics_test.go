package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

func TestComputeRouteMetrics(t *testing.T) {
	prices := domain.PriceTable{"Plastic": 2.0}
	stops := testPoints() // 100 + 50 + 200 kg of Plastic

	metrics, err := ComputeRouteMetrics(stops, prices, 20, 2.5)
	require.NoError(t, err)

	assert.Equal(t, 350.0, metrics.WeightKg)
	assert.Equal(t, 700.0, metrics.Revenue)
	assert.Equal(t, 50.0, metrics.FuelCost)
	assert.InDelta(t, 35.0, metrics.Efficiency, 1e-9)
}

func TestComputeRouteMetricsRevenueAdditivity(t *testing.T) {
	prices := domain.PriceTable{"Plastic": 2.0}
	stops := testPoints()

	base, err := ComputeRouteMetrics(stops, prices, 20, 2.5)
	require.NoError(t, err)

	// Changing one stop's weight moves revenue by exactly Δweight × price.
	stops[0].WeightKg += 30
	bumped, err := ComputeRouteMetrics(stops, prices, 20, 2.5)
	require.NoError(t, err)
	assert.InDelta(t, 30*2.0, bumped.Revenue-base.Revenue, 1e-9)
}

func TestComputeRouteMetricsMissingPrice(t *testing.T) {
	prices := domain.PriceTable{"Glass": 1.2}

	_, err := ComputeRouteMetrics(testPoints(), prices, 20, 2.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingPrice))
	assert.Contains(t, err.Error(), "A", "error should name the offending point")
}

func TestComputeRouteMetricsZeroDistance(t *testing.T) {
	metrics, err := ComputeRouteMetrics(nil, domain.PriceTable{}, 0, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, metrics.Efficiency)
	assert.Equal(t, 0.0, metrics.FuelCost)
}
