package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

func TestSelectDepotPicksShortestTrial(t *testing.T) {
	points := testPoints()
	near := testDepot() // sits inside the cluster
	far := domain.Depot{Name: "Remote", Coords: domain.Coordinates{Lat: -27.5, Lon: 29.5}}

	trial, err := SelectDepot([]domain.Depot{far, near}, points, PlannerConfig{Level: LevelAdvanced})
	require.NoError(t, err)
	assert.Equal(t, "Central", trial.Depot.Name)
	assertPermutation(t, trial.Tour, len(points)+1)
	assert.InDelta(t, trial.Matrix.RouteLengthKm(trial.Tour), trial.DistanceKm, 1e-9)

	// Never longer than any individual candidate's trial route.
	for _, depot := range []domain.Depot{far, near} {
		solo, err := SelectDepot([]domain.Depot{depot}, points, PlannerConfig{Level: LevelAdvanced})
		require.NoError(t, err)
		assert.LessOrEqual(t, trial.DistanceKm, solo.DistanceKm)
	}
}

func TestSelectDepotTieKeepsFirstCandidate(t *testing.T) {
	points := testPoints()
	first := testDepot()
	second := domain.Depot{Name: "CentralCopy", Coords: first.Coords}

	trial, err := SelectDepot([]domain.Depot{first, second}, points, PlannerConfig{})
	require.NoError(t, err)
	assert.Equal(t, "Central", trial.Depot.Name)
}

func TestSelectDepotNoCandidates(t *testing.T) {
	_, err := SelectDepot(nil, testPoints(), PlannerConfig{})
	assert.True(t, errors.Is(err, domain.ErrNoDepotCandidates))
}

func TestSelectDepotBasicSkipsImprovement(t *testing.T) {
	// Basic level must return the raw nearest-neighbor tour.
	depot := testDepot()
	points := testPoints()

	trial, err := SelectDepot([]domain.Depot{depot}, points, PlannerConfig{Level: LevelBasic})
	require.NoError(t, err)

	m, err := BuildDistanceMatrix(depot, points)
	require.NoError(t, err)
	assert.Equal(t, NearestNeighborTour(m), trial.Tour)
}
