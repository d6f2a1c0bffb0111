package framework

import "math"

// IsBetter checks if fitness a beats fitness b in the given direction.
// Ties never win, so the first one found is kept. NaN never wins and loses
// to any other value.
func IsBetter(a, b float64, maximize bool) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	if maximize {
		return a > b
	}
	return a < b
}

// Best returns the index of the best value in fitnesses, or -1 if empty.
func Best(fitnesses []float64, maximize bool) int {
	best := -1
	for i, f := range fitnesses {
		if best == -1 || IsBetter(f, fitnesses[best], maximize) {
			best = i
		}
	}
	return best
}
