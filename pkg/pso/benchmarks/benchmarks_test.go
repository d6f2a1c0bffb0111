package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/pso/pkg/pso/framework"
)

func TestOptima(t *testing.T) {
	tests := []struct {
		problem framework.Problem
		delta   float64
	}{
		{problem: NewHimmelblau(), delta: 1e-6},
		{problem: NewEggholder(), delta: 1e-2},
		{problem: NewSphere(5), delta: 0},
		{problem: NewShiftedParaboloid(), delta: 0},
	}

	for _, tt := range tests {
		t.Run(tt.problem.Name(), func(t *testing.T) {
			f := tt.problem.Fitness()
			bounds := tt.problem.Bounds()
			for _, opt := range tt.problem.Optima() {
				require.Len(t, opt.Position, len(bounds))
				for i, b := range bounds {
					assert.True(t, b.Contains(opt.Position[i]), "optimum %v outside %v", opt.Position, b)
				}

				got, err := f(opt.Position)
				require.NoError(t, err)
				assert.InDelta(t, opt.Fitness, got, tt.delta)
			}
		})
	}
}

func TestShiftedParaboloidAtOrigin(t *testing.T) {
	got, err := NewShiftedParaboloid().Fitness()([]float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, -5.0, got)
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, p.Bounds())
	}

	p, err := ByName("Himmelblau")
	require.NoError(t, err)
	assert.Equal(t, "Himmelblau", p.Name())

	_, err = ByName("rastrigin")
	assert.ErrorContains(t, err, "unknown benchmark")
}
