package framework

import (
	"math"
	"math/rand/v2"
)

// Bounds is an inclusive [L, H] interval on one dimension. The same type is
// used for positions and velocities.
type Bounds struct {
	L float64 `json:"min"`
	H float64 `json:"max"`
}

// Clamp truncates v to b. Values outside the range land on the nearest edge.
func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.L, math.Min(b.H, v))
}

// Contains reports whether v lies within b, edges included.
func (b Bounds) Contains(v float64) bool {
	return v >= b.L && v <= b.H
}

// Sample draws uniformly from b using r.
func (b Bounds) Sample(r Rand) float64 {
	return b.L + r.Float64()*(b.H-b.L)
}

// Symmetric returns [-m, m] for every one of dims dimensions.
func Symmetric(dims int, m float64) []Bounds {
	b := make([]Bounds, dims)
	for i := range dims {
		b[i] = Bounds{L: -m, H: m}
	}
	return b
}

// ValidateBounds checks that every dimension has L <= H and that there are
// exactly dims of them.
func ValidateBounds(kind string, dims int, b []Bounds) error {
	if len(b) != dims {
		return &InvalidBoundsError{Kind: kind, Dimension: -1, Expected: dims, Actual: len(b)}
	}
	for i, d := range b {
		if math.IsNaN(d.L) || math.IsNaN(d.H) || d.L > d.H {
			return &InvalidBoundsError{Kind: kind, Dimension: i, Bounds: d}
		}
	}
	return nil
}

// DefaultRand draws from the process-wide math/rand/v2 source.
type DefaultRand struct{}

func (DefaultRand) Float64() float64 {
	return rand.Float64()
}
