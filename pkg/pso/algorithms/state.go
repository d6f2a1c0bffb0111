package algorithms

import "slices"

// State is a value snapshot of a Particle. It shares no memory with the
// particle it was taken from, so it stays valid while the swarm keeps moving.
type State struct {
	Position       []float64 `json:"position"`
	Velocity       []float64 `json:"velocity"`
	BestPosition   []float64 `json:"bestPosition"`
	BestVelocity   []float64 `json:"bestVelocity"`
	Fitness        float64   `json:"fitness"`
	BestFitness    float64   `json:"bestFitness"`
	FitnessHistory []float64 `json:"fitnessHistory"`
	Evaluated      bool      `json:"evaluated"`
}

func (s State) DeepCopy() State {
	return State{
		Position:       slices.Clone(s.Position),
		Velocity:       slices.Clone(s.Velocity),
		BestPosition:   slices.Clone(s.BestPosition),
		BestVelocity:   slices.Clone(s.BestVelocity),
		Fitness:        s.Fitness,
		BestFitness:    s.BestFitness,
		FitnessHistory: slices.Clone(s.FitnessHistory),
		Evaluated:      s.Evaluated,
	}
}
