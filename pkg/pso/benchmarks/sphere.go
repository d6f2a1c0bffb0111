package benchmarks

import (
	"github.com/mihai-snyk/pso/pkg/pso/framework"
)

// Sphere is the sum of squares over numVars dimensions. Its only minimum is
// the origin.
type Sphere struct {
	numVars int
}

func NewSphere(numVars int) *Sphere {
	return &Sphere{
		numVars,
	}
}

func (p *Sphere) Name() string {
	return "Sphere"
}

func (p *Sphere) Fitness() framework.FitnessFunc {
	return framework.Func(func(x []float64) float64 {
		sum := 0.0
		for _, v := range x {
			sum += v * v
		}
		return sum
	})
}

func (p *Sphere) Bounds() []framework.Bounds {
	return framework.Symmetric(p.numVars, 5.12)
}

func (p *Sphere) Maximize() bool {
	return false
}

func (p *Sphere) Optima() []framework.Optimum {
	return []framework.Optimum{
		{Position: make([]float64, p.numVars)},
	}
}

// ShiftedParaboloid is -((x1-1)^2 + (x2-2)^2), solved by maximizing. The
// peak is 0 at (1, 2).
type ShiftedParaboloid struct{}

func NewShiftedParaboloid() *ShiftedParaboloid {
	return &ShiftedParaboloid{}
}

func (p *ShiftedParaboloid) Name() string {
	return "ShiftedParaboloid"
}

func (p *ShiftedParaboloid) Fitness() framework.FitnessFunc {
	return framework.Func(func(x []float64) float64 {
		d1, d2 := x[0]-1, x[1]-2
		return -(d1*d1 + d2*d2)
	})
}

func (p *ShiftedParaboloid) Bounds() []framework.Bounds {
	return framework.Symmetric(2, 5)
}

func (p *ShiftedParaboloid) Maximize() bool {
	return true
}

func (p *ShiftedParaboloid) Optima() []framework.Optimum {
	return []framework.Optimum{
		{Position: []float64{1, 2}},
	}
}
