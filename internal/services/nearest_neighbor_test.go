package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

func assertPermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.Len(t, tour, n)
	require.Equal(t, 0, tour[0], "tour must start at the depot")

	seen := make(map[int]bool, n)
	for _, node := range tour {
		assert.False(t, seen[node], "node %d visited twice", node)
		seen[node] = true
	}
	for node := 0; node < n; node++ {
		assert.True(t, seen[node], "node %d never visited", node)
	}
}

func TestNearestNeighborTourScenario(t *testing.T) {
	// Depot (-26.18, 28.02); A is the closest point, then C from A,
	// then B. Greedy construction must follow that exact order.
	m, err := BuildDistanceMatrix(testDepot(), testPoints())
	require.NoError(t, err)

	tour := NearestNeighborTour(m)
	assertPermutation(t, tour, 4)
	assert.Equal(t, []int{0, 1, 3, 2}, tour)
}

func TestNearestNeighborTourEmptyDay(t *testing.T) {
	m, err := BuildDistanceMatrix(testDepot(), nil)
	require.NoError(t, err)

	tour := NearestNeighborTour(m)
	assert.Equal(t, []int{0}, tour)
	assert.Equal(t, 0.0, m.RouteLengthKm(tour))
}

func TestNearestNeighborTourTieBreaksLowestIndex(t *testing.T) {
	// Two points at the same location are exactly equidistant from the
	// depot; the lower index must win the tie.
	depot := domain.Depot{Name: "D", Coords: domain.Coordinates{Lat: 0, Lon: 0}}
	points := []domain.CollectionPoint{
		{Name: "first", Coords: domain.Coordinates{Lat: 0, Lon: 0.02}},
		{Name: "second", Coords: domain.Coordinates{Lat: 0, Lon: 0.02}},
	}

	m, err := BuildDistanceMatrix(depot, points)
	require.NoError(t, err)
	require.InDelta(t, m.At(0, 1), m.At(0, 2), 1e-12)

	tour := NearestNeighborTour(m)
	assert.Equal(t, []int{0, 1, 2}, tour)
}
