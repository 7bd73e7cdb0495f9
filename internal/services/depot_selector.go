package services

import (
	"fmt"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// Result of one candidate's trial route, and of the final selection.
type DepotTrial struct {
	Depot      domain.Depot
	Tour       []int
	Matrix     *DistanceMatrix
	DistanceKm float64
}

// SelectDepot runs a full trial route for every candidate depot and keeps
// the one with the shortest total distance.
//
// Each trial is an independent function of its inputs: build the
// candidate's matrix (reusing the shared point-to-point sub-block),
// construct the nearest-neighbor tour, and refine it when the configured
// level enables 2-opt. Selection is a plain fold over trial results with
// strict less-than comparison, so ties keep the first candidate in input
// order.
func SelectDepot(depots []domain.Depot, points []domain.CollectionPoint, cfg PlannerConfig) (*DepotTrial, error) {
	if len(depots) == 0 {
		return nil, domain.ErrNoDepotCandidates
	}

	cfg = cfg.withDefaults()

	block, err := interPointDistances(points)
	if err != nil {
		return nil, err
	}

	var best *DepotTrial
	for _, depot := range depots {
		matrix, err := assembleMatrix(depot, points, block)
		if err != nil {
			return nil, fmt.Errorf("depot trial: %w", err)
		}

		tour := NearestNeighborTour(matrix)
		if cfg.Level != LevelBasic {
			tour = ImproveTwoOpt(matrix, tour, cfg.MaxIterations)
		}

		trial := &DepotTrial{
			Depot:      depot,
			Tour:       tour,
			Matrix:     matrix,
			DistanceKm: matrix.RouteLengthKm(tour),
		}
		if best == nil || trial.DistanceKm < best.DistanceKm {
			best = trial
		}
	}

	return best, nil
}
