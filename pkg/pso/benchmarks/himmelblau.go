package benchmarks

import (
	"math"

	"github.com/mihai-snyk/pso/pkg/pso/framework"
)

// Himmelblau is a multi-modal 2D benchmark with four global minima of 0.
// For more details, check the article below:
// https://en.wikipedia.org/wiki/Himmelblau%27s_function
type Himmelblau struct{}

func NewHimmelblau() *Himmelblau {
	return &Himmelblau{}
}

func (p *Himmelblau) Name() string {
	return "Himmelblau"
}

func (p *Himmelblau) Fitness() framework.FitnessFunc {
	return framework.Func(p.f)
}

func (p *Himmelblau) f(x []float64) float64 {
	x1, x2 := x[0], x[1]
	return math.Pow(x1*x1+x2-11, 2) + math.Pow(x1+x2*x2-7, 2)
}

func (p *Himmelblau) Bounds() []framework.Bounds {
	return framework.Symmetric(2, 5)
}

func (p *Himmelblau) Maximize() bool {
	return false
}

func (p *Himmelblau) Optima() []framework.Optimum {
	return []framework.Optimum{
		{Position: []float64{3, 2}},
		{Position: []float64{-2.805118, 3.131312}},
		{Position: []float64{-3.779310, -3.283186}},
		{Position: []float64{3.584428, -1.848126}},
	}
}

// Eggholder is a 2D benchmark with a large number of local minima.
// https://www.sfu.ca/~ssurjano/egg.html
type Eggholder struct{}

func NewEggholder() *Eggholder {
	return &Eggholder{}
}

func (p *Eggholder) Name() string {
	return "Eggholder"
}

func (p *Eggholder) Fitness() framework.FitnessFunc {
	return framework.Func(p.f)
}

func (p *Eggholder) f(x []float64) float64 {
	x1, x2 := x[0], x[1]
	return -(x2+47)*math.Sin(math.Sqrt(math.Abs(x1/2+(x2+47)))) -
		x1*math.Sin(math.Sqrt(math.Abs(x1-(x2+47))))
}

func (p *Eggholder) Bounds() []framework.Bounds {
	return framework.Symmetric(2, 512)
}

func (p *Eggholder) Maximize() bool {
	return false
}

func (p *Eggholder) Optima() []framework.Optimum {
	return []framework.Optimum{
		{Position: []float64{512, 404.2319}, Fitness: -959.6407},
	}
}
