package util

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/pso/pkg/pso/algorithms"
	"github.com/mihai-snyk/pso/pkg/pso/framework"
)

// PlotSwarm writes a scatter plot of the particles at iteration t. Two or
// more dimensions plot the first two coordinates; one dimension plots the
// coordinate against fitness. The best particle in the maximize direction
// gets its own series. Known optima of problem are drawn too when the run
// goes in the problem's own direction. problem may be nil.
func PlotSwarm(w io.Writer, swarm []*algorithms.Particle, t int, problem framework.Problem, maximize bool) error {
	if len(swarm) == 0 {
		return fmt.Errorf("swarm is empty at iteration %d", t)
	}

	name := "Swarm"
	if problem != nil {
		name = problem.Name()
	}
	dims := swarm[0].Dimensions()
	xName, yName := "x1", "x2"
	if dims == 1 {
		yName = "f(x)"
	}

	fitnesses := make([]float64, len(swarm))
	for i, p := range swarm {
		fitnesses[i] = p.Fitness()
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s iteration %d", name, t),
			Subtitle: fmt.Sprintf("fitness in [%.6g, %.6g]", floats.Min(fitnesses), floats.Max(fitnesses)),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(axis(xName, swarm[0].PositionsBounds()[0])),
		charts.WithYAxisOpts(opts.YAxis{
			Name: yName,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	particles := make([]opts.ScatterData, len(swarm))
	for i, p := range swarm {
		particles[i] = opts.ScatterData{
			Value:      point(p.Position(), p.Fitness()),
			Symbol:     "triangle",
			SymbolSize: 10,
		}
	}
	scatter.AddSeries("Particles", particles)

	best := swarm[framework.Best(fitnesses, maximize)]
	scatter.AddSeries("Best Particle", []opts.ScatterData{{
		Value:      point(best.Position(), best.Fitness()),
		Symbol:     "diamond",
		SymbolSize: 16,
	}})

	if problem != nil && dims > 1 && problem.Maximize() == maximize {
		optima := problem.Optima()
		known := make([]opts.ScatterData, len(optima))
		for i, o := range optima {
			known[i] = opts.ScatterData{
				Value:      []float64{o.Position[0], o.Position[1], o.Fitness},
				Symbol:     "circle",
				SymbolSize: 10,
			}
		}
		scatter.AddSeries("Known Optima", known)
	}

	scatter.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
		charts.WithEmphasisOpts(opts.Emphasis{}),
	)

	return scatter.Render(w)
}

func point(pos []float64, fitness float64) []float64 {
	if len(pos) > 1 {
		return []float64{pos[0], pos[1], fitness}
	}
	return []float64{pos[0], fitness}
}

func axis(name string, b framework.Bounds) opts.XAxis {
	return opts.XAxis{
		Name: name,
		Min:  b.L,
		Max:  b.H,
		SplitLine: &opts.SplitLine{
			Show: opts.Bool(true),
		},
	}
}

// PlotConvergence writes a line chart of the global best fitness per
// iteration.
func PlotConvergence(w io.Writer, history []algorithms.State, title string) error {
	if len(history) == 0 {
		return fmt.Errorf("history is empty for %s", title)
	}

	iterations := make([]string, len(history))
	best := make([]opts.LineData, len(history))
	for i, s := range history {
		iterations[i] = strconv.Itoa(i)
		best[i] = opts.LineData{Value: s.Fitness}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s convergence", title),
			Subtitle: fmt.Sprintf("final best %.6g after %d iterations", history[len(history)-1].Fitness, len(history)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "best fitness",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))
	line.SetXAxis(iterations).AddSeries("Global Best", best)

	return line.Render(w)
}

// SwarmPlotter is an algorithms.Observer that renders every observed
// iteration to Dir/iteration_<t>.html. Maximize must match the direction
// passed to Optimize.
type SwarmPlotter struct {
	Dir      string
	Problem  framework.Problem
	Maximize bool

	err error
}

var _ algorithms.Observer = &SwarmPlotter{}

func NewSwarmPlotter(dir string, problem framework.Problem, maximize bool) *SwarmPlotter {
	return &SwarmPlotter{
		Dir:      dir,
		Problem:  problem,
		Maximize: maximize,
	}
}

func (p *SwarmPlotter) Observe(swarm []*algorithms.Particle, t int) {
	if err := p.plot(swarm, t); err != nil {
		klog.ErrorS(err, "Failed to plot swarm", "iteration", t)
		p.err = errors.Join(p.err, err)
	}
}

func (p *SwarmPlotter) plot(swarm []*algorithms.Particle, t int) error {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(p.Dir, fmt.Sprintf("iteration_%d.html", t)))
	if err != nil {
		return err
	}
	defer f.Close()

	return PlotSwarm(f, swarm, t, p.Problem, p.Maximize)
}

// Err returns every plotting failure seen so far, or nil.
func (p *SwarmPlotter) Err() error {
	return p.err
}
