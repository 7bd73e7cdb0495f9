package services

// Strictness margin for accepting a 2-opt move. Guards against float
// noise re-accepting equivalent tours and never terminating.
const improvementEpsilon = 1e-9

// ImproveTwoOpt refines a tour with first-improvement 2-opt local search.
//
// Each move reverses a contiguous segment of stop positions and keeps the
// result only when it strictly shortens the open-tour length. After an
// accepted move the scan restarts from the beginning. The search stops
// after a full pass with no accepted move, or after maxPasses passes,
// whichever comes first.
//
// Position 0 (the depot) never takes part in a reversal, so the depot
// stays the first element. The input slice is never mutated: every
// accepted move produces a fresh slice, which keeps concurrent depot
// trials free of shared tour state.
//
// The returned tour is never longer than the input tour.
func ImproveTwoOpt(m *DistanceMatrix, tour []int, maxPasses int) []int {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxIterations
	}

	best := append([]int(nil), tour...)
	if len(best) < 3 {
		return best
	}
	bestLen := m.RouteLengthKm(best)

	for pass := 0; pass < maxPasses; pass++ {
		improved := false

	scan:
		for i := 1; i < len(best)-1; i++ {
			for k := i + 1; k < len(best); k++ {
				candidate := reverseSegment(best, i, k)
				if length := m.RouteLengthKm(candidate); length+improvementEpsilon < bestLen {
					best = candidate
					bestLen = length
					improved = true
					break scan
				}
			}
		}

		if !improved {
			break
		}
	}

	return best
}

// reverseSegment returns a copy of tour with positions i..k reversed.
func reverseSegment(tour []int, i, k int) []int {
	out := make([]int, len(tour))
	copy(out, tour[:i])
	pos := i
	for j := k; j >= i; j-- {
		out[pos] = tour[j]
		pos++
	}
	copy(out[k+1:], tour[k+1:])
	return out
}
