package services

import (
	"fmt"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
)

// DistanceMatrix holds pairwise great-circle distances in km over the
// ordered node set [depot, point_1, …, point_n] for one day and one depot
// candidate. Symmetric with a zero diagonal. Built once per candidate
// trial and never mutated afterwards.
type DistanceMatrix struct {
	d [][]float64
}

// Dim returns the node count (collection points plus the depot).
func (m *DistanceMatrix) Dim() int { return len(m.d) }

// At returns the distance in km between nodes i and j.
func (m *DistanceMatrix) At(i, j int) float64 { return m.d[i][j] }

// RouteLengthKm sums consecutive-edge distances along the visiting order.
// The tour is open: no closing edge back to order[0].
func (m *DistanceMatrix) RouteLengthKm(order []int) float64 {
	total := 0.0
	for i := 0; i < len(order)-1; i++ {
		total += m.d[order[i]][order[i+1]]
	}
	return total
}

// BuildDistanceMatrix validates every coordinate and assembles the full
// matrix for one depot candidate. Cost is O(n²) distance evaluations.
func BuildDistanceMatrix(depot domain.Depot, points []domain.CollectionPoint) (*DistanceMatrix, error) {
	block, err := interPointDistances(points)
	if err != nil {
		return nil, err
	}
	return assembleMatrix(depot, points, block)
}

// interPointDistances computes the depot-independent point-to-point
// sub-block. Depot trials share it so each candidate only adds one extra
// row/column of haversine work.
func interPointDistances(points []domain.CollectionPoint) ([][]float64, error) {
	for _, p := range points {
		if err := p.Coords.Validate(); err != nil {
			return nil, fmt.Errorf("collection point %q: %w", p.Name, err)
		}
	}

	n := len(points)
	block := make([][]float64, n)
	for i := range block {
		block[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := points[i].Coords.DistanceKm(points[j].Coords)
			block[i][j] = d
			block[j][i] = d
		}
	}
	return block, nil
}

// assembleMatrix places the depot at index 0 and the shared sub-block at
// indices 1..n.
func assembleMatrix(depot domain.Depot, points []domain.CollectionPoint, block [][]float64) (*DistanceMatrix, error) {
	if err := depot.Coords.Validate(); err != nil {
		return nil, fmt.Errorf("depot %q: %w", depot.Name, err)
	}

	n := len(points)
	d := make([][]float64, n+1)
	for i := range d {
		d[i] = make([]float64, n+1)
	}
	for i, p := range points {
		dist := depot.Coords.DistanceKm(p.Coords)
		d[0][i+1] = dist
		d[i+1][0] = dist
	}
	for i := 0; i < n; i++ {
		copy(d[i+1][1:], block[i])
	}
	return &DistanceMatrix{d: d}, nil
}
