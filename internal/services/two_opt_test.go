package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// Collinear points east of the depot; the optimal open tour visits them
// in longitude order.
func lineInstance(t *testing.T) *DistanceMatrix {
	t.Helper()
	depot := domain.Depot{Name: "D", Coords: domain.Coordinates{Lat: 0, Lon: 0}}
	points := []domain.CollectionPoint{
		{Name: "A", Coords: domain.Coordinates{Lat: 0, Lon: 0.01}},
		{Name: "B", Coords: domain.Coordinates{Lat: 0, Lon: 0.02}},
		{Name: "C", Coords: domain.Coordinates{Lat: 0, Lon: 0.03}},
	}
	m, err := BuildDistanceMatrix(depot, points)
	require.NoError(t, err)
	return m
}

func TestImproveTwoOptShortensBadTour(t *testing.T) {
	m := lineInstance(t)

	// Deliberately scrambled order: depot → C → A → B.
	initial := []int{0, 3, 1, 2}
	improved := ImproveTwoOpt(m, initial, DefaultMaxIterations)

	assertPermutation(t, improved, 4)
	assert.Less(t, m.RouteLengthKm(improved), m.RouteLengthKm(initial))
	assert.Equal(t, []int{0, 1, 2, 3}, improved, "collinear points should end up in line order")

	// Input tour must not be mutated by the search.
	assert.Equal(t, []int{0, 3, 1, 2}, initial)
}

func TestImproveTwoOptNeverLengthens(t *testing.T) {
	m, err := BuildDistanceMatrix(testDepot(), testPoints())
	require.NoError(t, err)

	tours := [][]int{
		{0, 1, 2, 3},
		{0, 1, 3, 2},
		{0, 2, 1, 3},
		{0, 2, 3, 1},
		{0, 3, 1, 2},
		{0, 3, 2, 1},
	}
	for _, tour := range tours {
		improved := ImproveTwoOpt(m, tour, DefaultMaxIterations)
		assertPermutation(t, improved, 4)
		assert.LessOrEqual(t, m.RouteLengthKm(improved), m.RouteLengthKm(tour))
		assert.Equal(t, 0, improved[0], "depot must stay fixed")
	}
}

func TestImproveTwoOptFixedPoint(t *testing.T) {
	m := lineInstance(t)

	improved := ImproveTwoOpt(m, []int{0, 3, 1, 2}, DefaultMaxIterations)
	again := ImproveTwoOpt(m, improved, DefaultMaxIterations)
	assert.Equal(t, improved, again, "a converged tour has no remaining improving swap")
}

func TestImproveTwoOptRespectsPassCap(t *testing.T) {
	m := lineInstance(t)

	// One pass applies exactly one first-improvement swap.
	capped := ImproveTwoOpt(m, []int{0, 3, 1, 2}, 1)
	assertPermutation(t, capped, 4)
	assert.LessOrEqual(t, m.RouteLengthKm(capped), m.RouteLengthKm([]int{0, 3, 1, 2}))
	assert.NotEqual(t, []int{0, 1, 2, 3}, capped, "a single pass cannot reach the optimum here")
}

func TestImproveTwoOptDegenerateTours(t *testing.T) {
	m := lineInstance(t)

	assert.Equal(t, []int{0}, ImproveTwoOpt(m, []int{0}, 10))
	assert.Equal(t, []int{0, 2}, ImproveTwoOpt(m, []int{0, 2}, 10))
}
