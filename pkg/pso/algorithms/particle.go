package algorithms

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mihai-snyk/pso/pkg/pso/framework"
)

// ErrInvalidState is returned when a State cannot be restored into a Particle.
var ErrInvalidState = errors.New("invalid particle state")

// Particle is a single candidate solution moving through the search space.
type Particle struct {
	dimensions       int
	positionsBounds  []framework.Bounds
	velocitiesBounds []framework.Bounds
	fitnessFunc      framework.FitnessFunc
	rand             framework.Rand

	position     []float64
	velocity     []float64
	bestPosition []float64
	bestVelocity []float64
	bestFitness  float64

	// fitness is 0 until the first evaluation.
	fitness        float64
	fitnessHistory []float64

	// evaluated turns true on the first evaluation, which always sets the
	// personal best regardless of the 0 placeholder in bestFitness.
	evaluated bool
}

// NewParticle creates a particle with a position drawn uniformly inside
// positionsBounds and a zero velocity.
func NewParticle(dimensions int, positionsBounds, velocitiesBounds []framework.Bounds, fitness framework.FitnessFunc, r framework.Rand) (*Particle, error) {
	if err := framework.ValidateBounds("position", dimensions, positionsBounds); err != nil {
		return nil, err
	}
	if err := framework.ValidateBounds("velocity", dimensions, velocitiesBounds); err != nil {
		return nil, err
	}
	if fitness == nil {
		return nil, framework.ErrNilFitnessFunc
	}
	if r == nil {
		r = framework.DefaultRand{}
	}

	p := &Particle{
		dimensions:       dimensions,
		positionsBounds:  slices.Clone(positionsBounds),
		velocitiesBounds: slices.Clone(velocitiesBounds),
		fitnessFunc:      fitness,
		rand:             r,
		position:         make([]float64, dimensions),
		velocity:         make([]float64, dimensions),
		bestPosition:     make([]float64, dimensions),
		bestVelocity:     make([]float64, dimensions),
		fitnessHistory:   []float64{},
	}
	for i := range dimensions {
		// Zero is clamped so a velocity range that excludes it still holds.
		p.velocity[i] = velocitiesBounds[i].Clamp(0)
		p.position[i] = positionsBounds[i].Sample(r)
	}
	return p, nil
}

// EvaluateFitness logs the previous fitness, evaluates the current position
// and records a new personal best if it strictly beats the old one.
// An error from the fitness function leaves the particle untouched.
func (p *Particle) EvaluateFitness(maximize bool) error {
	f, err := p.fitnessFunc(slices.Clone(p.position))
	if err != nil {
		return err
	}

	p.fitnessHistory = append(p.fitnessHistory, p.fitness)
	p.fitness = f

	if !p.evaluated || framework.IsBetter(p.fitness, p.bestFitness, maximize) {
		p.bestFitness = p.fitness
		copy(p.bestPosition, p.position)
		copy(p.bestVelocity, p.velocity)
	}
	p.evaluated = true
	return nil
}

// UpdateVelocity pulls the particle toward its personal best (weighted by c1)
// and toward globalBestPosition (weighted by c2), keeping w of the previous
// velocity. The result is clamped to the velocity bounds.
func (p *Particle) UpdateVelocity(c1, c2, w float64, globalBestPosition []float64) {
	for i := range p.dimensions {
		// r1 and r2 are drawn fresh for every dimension.
		r1 := p.rand.Float64()
		r2 := p.rand.Float64()

		cognitive := r1 * c1 * (p.bestPosition[i] - p.position[i])
		social := r2 * c2 * (globalBestPosition[i] - p.position[i])
		inertia := w * p.velocity[i]

		p.velocity[i] = p.velocitiesBounds[i].Clamp(inertia + cognitive + social)
	}
}

// UpdatePosition advances the particle by its velocity, truncating to the
// position bounds.
func (p *Particle) UpdatePosition() {
	for i := range p.dimensions {
		p.position[i] = p.positionsBounds[i].Clamp(p.position[i] + p.velocity[i])
	}
}

func (p *Particle) Dimensions() int {
	return p.dimensions
}

func (p *Particle) Position() []float64 {
	return slices.Clone(p.position)
}

func (p *Particle) Velocity() []float64 {
	return slices.Clone(p.velocity)
}

// Fitness returns the latest evaluation, or 0 before the first one.
func (p *Particle) Fitness() float64 {
	return p.fitness
}

func (p *Particle) BestPosition() []float64 {
	return slices.Clone(p.bestPosition)
}

func (p *Particle) BestVelocity() []float64 {
	return slices.Clone(p.bestVelocity)
}

func (p *Particle) BestFitness() float64 {
	return p.bestFitness
}

// FitnessHistory returns the fitness values that were overwritten by each
// evaluation, oldest first. The first entry is the 0 placeholder.
func (p *Particle) FitnessHistory() []float64 {
	return slices.Clone(p.fitnessHistory)
}

func (p *Particle) PositionsBounds() []framework.Bounds {
	return slices.Clone(p.positionsBounds)
}

func (p *Particle) VelocitiesBounds() []framework.Bounds {
	return slices.Clone(p.velocitiesBounds)
}

// State returns a deep copy of the particle's mutable state.
func (p *Particle) State() State {
	return State{
		Position:       slices.Clone(p.position),
		Velocity:       slices.Clone(p.velocity),
		BestPosition:   slices.Clone(p.bestPosition),
		BestVelocity:   slices.Clone(p.bestVelocity),
		Fitness:        p.fitness,
		BestFitness:    p.bestFitness,
		FitnessHistory: slices.Clone(p.fitnessHistory),
		Evaluated:      p.evaluated,
	}
}

// Restore replaces the particle's mutable state with a copy of s. Bounds,
// fitness function and random source are kept.
func (p *Particle) Restore(s State) error {
	vectors := []struct {
		name string
		v    []float64
	}{
		{"position", s.Position},
		{"velocity", s.Velocity},
		{"bestPosition", s.BestPosition},
		{"bestVelocity", s.BestVelocity},
	}
	for _, vec := range vectors {
		if len(vec.v) != p.dimensions {
			return fmt.Errorf("%w: %s has %d dimensions, want %d", ErrInvalidState, vec.name, len(vec.v), p.dimensions)
		}
	}
	for i := range p.dimensions {
		if !p.positionsBounds[i].Contains(s.Position[i]) {
			return fmt.Errorf("%w: position %v out of bounds in dimension %d", ErrInvalidState, s.Position[i], i)
		}
		if !p.velocitiesBounds[i].Contains(s.Velocity[i]) {
			return fmt.Errorf("%w: velocity %v out of bounds in dimension %d", ErrInvalidState, s.Velocity[i], i)
		}
	}

	c := s.DeepCopy()
	p.position = c.Position
	p.velocity = c.Velocity
	p.bestPosition = c.BestPosition
	p.bestVelocity = c.BestVelocity
	p.fitness = c.Fitness
	p.bestFitness = c.BestFitness
	p.fitnessHistory = c.FitnessHistory
	if p.fitnessHistory == nil {
		p.fitnessHistory = []float64{}
	}
	p.evaluated = c.Evaluated
	return nil
}

func (p *Particle) String() string {
	return fmt.Sprintf("%v -> %v", p.position, p.fitness)
}
