package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/pso/apis/config/v1alpha1"
	"github.com/mihai-snyk/pso/apis/config/validation"
	"github.com/mihai-snyk/pso/pkg/pso/benchmarks"
	"github.com/mihai-snyk/pso/pkg/pso/framework"
)

type options struct {
	configFile      string
	benchmark       string
	iterations      int32
	swarmSize       int32
	maximize        bool
	seed            uint64
	plotDir         string
	convergencePlot string
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", o.configFile, "Path to a SwarmOptimizerArgs YAML file. Flags override its values.")
	fs.StringVar(&o.benchmark, "benchmark", v1alpha1.DefaultBenchmark, fmt.Sprintf("Objective function to optimize, one of %v.", benchmarks.Names()))
	fs.Int32Var(&o.iterations, "iterations", v1alpha1.DefaultIterations, "Number of iterations.")
	fs.Int32Var(&o.swarmSize, "swarm-size", v1alpha1.DefaultSwarmSize, "Number of particles.")
	fs.BoolVar(&o.maximize, "maximize", false, "Maximize the objective. Defaults to the benchmark's direction.")
	fs.Uint64Var(&o.seed, "seed", 0, "Seed for a reproducible run. Unset means a random run.")
	fs.StringVar(&o.plotDir, "plot-dir", o.plotDir, "Directory to render the swarm of every iteration into.")
	fs.StringVar(&o.convergencePlot, "convergence-plot", o.convergencePlot, "File to render the global best history into.")
}

// loadArgs reads the config file, applies the flags that were set
// explicitly, and fills the rest from the benchmark and the defaults.
func (o *options) loadArgs(fs *pflag.FlagSet) (*v1alpha1.SwarmOptimizerArgs, framework.Problem, error) {
	args := &v1alpha1.SwarmOptimizerArgs{}
	if o.configFile != "" {
		data, err := os.ReadFile(o.configFile)
		if err != nil {
			return nil, nil, err
		}
		if err := yaml.UnmarshalStrict(data, args); err != nil {
			return nil, nil, fmt.Errorf("decoding %s: %w", o.configFile, err)
		}
	}

	if fs.Changed("benchmark") || args.Benchmark == "" {
		args.Benchmark = o.benchmark
	}
	if fs.Changed("iterations") {
		args.Iterations = ptr.To(o.iterations)
	}
	if fs.Changed("swarm-size") {
		args.SwarmSize = ptr.To(o.swarmSize)
	}
	if fs.Changed("maximize") {
		args.Maximize = ptr.To(o.maximize)
	}
	if fs.Changed("seed") {
		args.Seed = ptr.To(o.seed)
	}

	problem, err := benchmarks.ByName(args.Benchmark)
	if err != nil {
		return nil, nil, err
	}
	if len(args.PositionsBounds) == 0 {
		for _, b := range problem.Bounds() {
			args.PositionsBounds = append(args.PositionsBounds, v1alpha1.Bound{Min: b.L, Max: b.H})
		}
	}
	if args.Maximize == nil {
		args.Maximize = ptr.To(problem.Maximize())
	}
	v1alpha1.SetDefaults_SwarmOptimizerArgs(args)

	if err := validation.ValidateSwarmOptimizerArgs(field.NewPath("swarmOptimizerArgs"), args); err != nil {
		return nil, nil, err
	}
	if want := len(problem.Bounds()); len(args.PositionsBounds) != want {
		return nil, nil, fmt.Errorf("benchmark %s needs %d dimensions, got %d", problem.Name(), want, len(args.PositionsBounds))
	}
	return args, problem, nil
}

func toFramework(bounds []v1alpha1.Bound) []framework.Bounds {
	b := make([]framework.Bounds, len(bounds))
	for i, v := range bounds {
		b[i] = framework.Bounds{L: v.Min, H: v.Max}
	}
	return b
}
