package framework

// FitnessFunc evaluates a point of the search space. It must not mutate x.
type FitnessFunc func(x []float64) (float64, error)

// Func adapts an infallible objective to a FitnessFunc.
func Func(f func(x []float64) float64) FitnessFunc {
	return func(x []float64) (float64, error) {
		return f(x), nil
	}
}

// Optimum is a known optimum of a Problem, used by tests and plots.
type Optimum struct {
	Position []float64
	Fitness  float64
}

// Problem describes the contract a specific single-objective problem needs to implement.
type Problem interface {
	Name() string

	Bounds() []Bounds
	Fitness() FitnessFunc

	// Maximize reports the direction the problem is usually solved in.
	Maximize() bool

	// Optima is optional since the optima of some problems are unknown.
	// When there isn't a way to find them, just return nil.
	Optima() []Optimum
}

// Rand is the source of uniform draws in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Algorithm describes the contract that an optimization algorithm needs to implement.
type Algorithm interface {
	Name() string
}
