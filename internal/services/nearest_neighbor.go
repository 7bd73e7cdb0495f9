package services

// NearestNeighborTour builds an initial visiting order over the matrix
// nodes using the greedy nearest-neighbor heuristic.
//
// The tour starts at the depot (index 0) and repeatedly steps to the
// closest unvisited node; ties pick the lowest index so the result is
// deterministic and reproducible. It does not attempt global
// optimization; 2-opt refinement happens separately.
//
// Complexity is O(n²): n selection steps, each scanning all nodes.
// With zero collection points the tour is just [0].
func NearestNeighborTour(m *DistanceMatrix) []int {
	n := m.Dim()
	tour := make([]int, 0, n)
	tour = append(tour, 0)

	visited := make([]bool, n)
	visited[0] = true

	current := 0
	for len(tour) < n {
		next := -1
		for candidate := 1; candidate < n; candidate++ {
			if visited[candidate] {
				continue
			}
			// Strict less-than keeps the lowest index on equal distances.
			if next == -1 || m.At(current, candidate) < m.At(current, next) {
				next = candidate
			}
		}

		tour = append(tour, next)
		visited[next] = true
		current = next
	}

	return tour
}
