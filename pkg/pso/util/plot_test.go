package util

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2/ktesting"

	"github.com/mihai-snyk/pso/pkg/pso/algorithms"
	"github.com/mihai-snyk/pso/pkg/pso/benchmarks"
	"github.com/mihai-snyk/pso/pkg/pso/framework"
)

func newOptimizer(t *testing.T, problem framework.Problem) *algorithms.Optimizer {
	t.Helper()
	bounds := problem.Bounds()
	o, err := algorithms.NewOptimizer(true, 10, bounds, framework.Symmetric(len(bounds), 2), problem.Fitness(),
		algorithms.WithRand(rand.New(rand.NewPCG(1, 1))))
	require.NoError(t, err)
	return o
}

func TestSwarmPlotter(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	problem := benchmarks.NewHimmelblau()
	dir := filepath.Join(t.TempDir(), "images")
	plotter := NewSwarmPlotter(dir, problem, problem.Maximize())

	o := newOptimizer(t, problem)
	require.NoError(t, o.Optimize(ctx, 3, problem.Maximize(), plotter))
	require.NoError(t, plotter.Err())

	for i := range 4 {
		data, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("iteration_%d.html", i)))
		require.NoError(t, err)
		assert.Contains(t, string(data), fmt.Sprintf("Himmelblau iteration %d", i))
		assert.Contains(t, string(data), "Known Optima")
		assert.Contains(t, string(data), "Best Particle")
	}
}

func TestSwarmPlotterOppositeDirectionSkipsOptima(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	problem := benchmarks.NewHimmelblau()
	dir := t.TempDir()
	plotter := NewSwarmPlotter(dir, problem, true)

	o := newOptimizer(t, problem)
	require.NoError(t, o.Optimize(ctx, 2, true, plotter))
	require.NoError(t, plotter.Err())

	data, err := os.ReadFile(filepath.Join(dir, "iteration_2.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Known Optima")
	assert.Contains(t, string(data), "Best Particle")
}

func TestPlotSwarmMarksBestParticle(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	problem := benchmarks.NewSphere(2)
	o := newOptimizer(t, problem)
	require.NoError(t, o.Optimize(ctx, 1, false, nil))

	swarm := o.Swarm()
	fitnesses := make([]float64, len(swarm))
	for i, p := range swarm {
		fitnesses[i] = p.Fitness()
	}
	best := swarm[framework.Best(fitnesses, false)]

	var buf bytes.Buffer
	require.NoError(t, PlotSwarm(&buf, swarm, 1, problem, false))
	assert.Contains(t, buf.String(), "Best Particle")
	for _, other := range swarm {
		assert.False(t, framework.IsBetter(other.Fitness(), best.Fitness(), false))
	}
}

func TestSwarmPlotterRecordsErrors(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	plotter := NewSwarmPlotter(filepath.Join(blocker, "images"), nil, false)
	plotter.Observe(newOptimizer(t, benchmarks.NewSphere(2)).Swarm(), 0)
	assert.Error(t, plotter.Err())
}

func TestPlotSwarmOneDimension(t *testing.T) {
	var buf bytes.Buffer
	o := newOptimizer(t, benchmarks.NewSphere(1))
	require.NoError(t, PlotSwarm(&buf, o.Swarm(), 0, nil, false))
	assert.Contains(t, buf.String(), "Swarm iteration 0")
	assert.NotContains(t, buf.String(), "Known Optima")
}

func TestPlotSwarmEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PlotSwarm(&buf, nil, 0, nil, false))
}

func TestPlotConvergence(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	problem := benchmarks.NewSphere(2)
	o := newOptimizer(t, problem)
	require.NoError(t, o.Optimize(ctx, 5, false, nil))

	var buf bytes.Buffer
	require.NoError(t, PlotConvergence(&buf, o.GlobalBestHistory(), problem.Name()))
	assert.Contains(t, buf.String(), "Sphere convergence")
	assert.Contains(t, buf.String(), "Global Best")

	assert.Error(t, PlotConvergence(&buf, nil, problem.Name()))
}
