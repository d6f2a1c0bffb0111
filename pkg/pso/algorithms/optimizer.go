package algorithms

import (
	"context"
	"slices"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/pso/pkg/pso/framework"
)

const (
	Name = "PSO"

	DefaultCognitive = 2.0
	DefaultSocial    = 2.0
	DefaultInertia   = 0.9

	// MaxInertia and MinInertia are the end points of the linear decay.
	MaxInertia = 0.9
	MinInertia = 0.4
)

// Observer is notified with the whole swarm once before the first iteration
// (t=0) and once after every iteration (t=1..iterations). Implementations
// must not mutate the particles.
type Observer interface {
	Observe(swarm []*Particle, t int)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(swarm []*Particle, t int)

func (f ObserverFunc) Observe(swarm []*Particle, t int) {
	f(swarm, t)
}

// Optimizer represents the particle swarm optimization configuration and
// the state of its swarm.
type Optimizer struct {
	UseWeightDecay bool
	SwarmSize      int
	// C1 and C2 are the cognitive and social coefficients.
	C1 float64
	C2 float64
	// W is the inertia weight used when UseWeightDecay is off.
	W float64

	positionsBounds  []framework.Bounds
	velocitiesBounds []framework.Bounds
	fitnessFunc      framework.FitnessFunc
	rand             framework.Rand
	logger           *logr.Logger

	swarm             []*Particle
	globalBest        *State
	globalBestHistory []State
}

var _ framework.Algorithm = &Optimizer{}

type Option func(*Optimizer)

// WithCoefficients sets the cognitive (c1) and social (c2) coefficients.
func WithCoefficients(c1, c2 float64) Option {
	return func(o *Optimizer) {
		o.C1 = c1
		o.C2 = c2
	}
}

// WithInertia sets the fixed inertia weight.
func WithInertia(w float64) Option {
	return func(o *Optimizer) {
		o.W = w
	}
}

// WithRand sets the random source shared by every particle. Use a seeded
// source for reproducible runs.
func WithRand(r framework.Rand) Option {
	return func(o *Optimizer) {
		o.rand = r
	}
}

// WithLogger overrides the logger otherwise taken from the context passed
// to Optimize.
func WithLogger(logger logr.Logger) Option {
	return func(o *Optimizer) {
		o.logger = &logger
	}
}

// NewOptimizer creates a new optimizer and its initial random swarm.
func NewOptimizer(useWeightDecay bool, swarmSize int, positionsBounds, velocitiesBounds []framework.Bounds, fitness framework.FitnessFunc, opts ...Option) (*Optimizer, error) {
	o := &Optimizer{
		UseWeightDecay:   useWeightDecay,
		SwarmSize:        swarmSize,
		C1:               DefaultCognitive,
		C2:               DefaultSocial,
		W:                DefaultInertia,
		positionsBounds:  slices.Clone(positionsBounds),
		velocitiesBounds: slices.Clone(velocitiesBounds),
		fitnessFunc:      fitness,
		rand:             framework.DefaultRand{},
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := o.generateInitialSwarm(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Optimizer) validate() error {
	if o.SwarmSize <= 0 {
		return framework.ErrInvalidSwarmSize
	}
	if o.C1 < 0 || o.C2 < 0 {
		return framework.ErrNegativeCoefficient
	}
	return nil
}

func (o *Optimizer) Name() string {
	return Name
}

func (o *Optimizer) generateInitialSwarm() error {
	swarm := make([]*Particle, 0, o.SwarmSize)
	for range o.SwarmSize {
		p, err := NewParticle(len(o.positionsBounds), o.positionsBounds, o.velocitiesBounds, o.fitnessFunc, o.rand)
		if err != nil {
			return err
		}
		swarm = append(swarm, p)
	}
	o.swarm = swarm
	return nil
}

// Reset discards the swarm, the global best and its history, and draws a
// fresh initial swarm so the optimizer can run again. The exported settings
// are validated first; on error the optimizer is left as it was.
func (o *Optimizer) Reset() error {
	if err := o.validate(); err != nil {
		return err
	}
	o.globalBest = nil
	o.globalBestHistory = nil
	return o.generateInitialSwarm()
}

// Optimize runs the swarm for the given number of iterations. The context
// only carries the logger. Once started, a run completes unless the fitness
// function fails, in which case the history of the completed iterations is
// kept.
func (o *Optimizer) Optimize(ctx context.Context, iterations int, maximize bool, observer Observer) error {
	if iterations <= 0 {
		return &framework.InvalidIterationCountError{Iterations: iterations}
	}
	if len(o.swarm) == 0 {
		return framework.ErrInvalidSwarmSize
	}

	logger := klog.FromContext(ctx)
	if o.logger != nil {
		logger = *o.logger
	}
	logger.V(5).Info("Starting optimization", "algorithm", o.Name(), "swarmSize", len(o.swarm), "iterations", iterations, "maximize", maximize, "weightDecay", o.UseWeightDecay)

	if observer != nil {
		observer.Observe(o.Swarm(), 0)
	}

	for t := range iterations {
		for i, p := range o.swarm {
			if err := p.EvaluateFitness(maximize); err != nil {
				return &framework.ObjectiveFunctionError{Iteration: t, Particle: i, Err: err}
			}
			if o.globalBest == nil || framework.IsBetter(p.fitness, o.globalBest.Fitness, maximize) {
				s := p.State()
				o.globalBest = &s
			}
		}

		w := o.inertia(t, iterations)
		for _, p := range o.swarm {
			p.UpdateVelocity(o.C1, o.C2, w, o.globalBest.Position)
			p.UpdatePosition()
		}

		// globalBest is replaced, never mutated, so the history can share it.
		o.globalBestHistory = append(o.globalBestHistory, *o.globalBest)

		logger.Info("Iteration completed", "iteration", t, "bestFitness", o.globalBest.Fitness, "bestPosition", o.globalBest.Position)
		if v := logger.V(5); v.Enabled() {
			v.Info("Swarm statistics", "iteration", t, "inertia", w, "meanFitness", stat.Mean(o.fitnesses(), nil))
		}

		if observer != nil {
			observer.Observe(o.Swarm(), t+1)
		}
	}
	return nil
}

func (o *Optimizer) inertia(t, iterations int) float64 {
	if o.UseWeightDecay {
		return LinearDecay(t, iterations)
	}
	return o.W
}

// LinearDecay returns the inertia weight for iteration t of iterations,
// falling linearly from MaxInertia at t=0 to MinInertia at t=iterations.
func LinearDecay(t, iterations int) float64 {
	return (MaxInertia-MinInertia)*(float64(iterations-t)/float64(iterations)) + MinInertia
}

func (o *Optimizer) fitnesses() []float64 {
	f := make([]float64, len(o.swarm))
	for i, p := range o.swarm {
		f[i] = p.fitness
	}
	return f
}

// Swarm returns the particles in a new slice. The particles themselves are
// shared with the optimizer.
func (o *Optimizer) Swarm() []*Particle {
	return slices.Clone(o.swarm)
}

// GlobalBest returns a copy of the best particle state seen so far. The
// second result is false before the first iteration.
func (o *Optimizer) GlobalBest() (State, bool) {
	if o.globalBest == nil {
		return State{}, false
	}
	return o.globalBest.DeepCopy(), true
}

// GlobalBestHistory returns one global best per completed iteration.
func (o *Optimizer) GlobalBestHistory() []State {
	h := make([]State, len(o.globalBestHistory))
	for i, s := range o.globalBestHistory {
		h[i] = s.DeepCopy()
	}
	return h
}
