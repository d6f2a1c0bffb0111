package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/pso/pkg/pso/algorithms"
	"github.com/mihai-snyk/pso/pkg/pso/framework"
	"github.com/mihai-snyk/pso/pkg/pso/util"
)

func main() {
	o := &options{}
	fs := pflag.CommandLine
	o.addFlags(fs)

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)
	pflag.Parse()
	defer klog.Flush()

	logger := klog.Background().WithName("pso")
	ctx := klog.NewContext(context.Background(), logger)
	if err := o.run(ctx, fs, os.Stdout); err != nil {
		logger.Error(err, "Optimization failed")
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
}

func (o *options) run(ctx context.Context, fs *pflag.FlagSet, out io.Writer) error {
	logger := klog.FromContext(ctx)

	args, problem, err := o.loadArgs(fs)
	if err != nil {
		return err
	}
	logger.V(2).Info("Loaded configuration", "args", args)

	var r framework.Rand = framework.DefaultRand{}
	if args.Seed != nil {
		r = rand.New(rand.NewPCG(*args.Seed, *args.Seed))
	}

	evaluations := int64(0)
	fitness := problem.Fitness()
	counted := func(x []float64) (float64, error) {
		evaluations++
		return fitness(x)
	}

	pso, err := algorithms.NewOptimizer(
		ptr.Deref(args.UseWeightDecay, true),
		int(*args.SwarmSize),
		toFramework(args.PositionsBounds),
		toFramework(args.VelocitiesBounds),
		counted,
		algorithms.WithCoefficients(*args.C1, *args.C2),
		algorithms.WithInertia(*args.W),
		algorithms.WithRand(r),
	)
	if err != nil {
		return err
	}

	var observer algorithms.Observer
	var plotter *util.SwarmPlotter
	if o.plotDir != "" {
		plotter = util.NewSwarmPlotter(o.plotDir, problem, *args.Maximize)
		observer = plotter
	}

	start := time.Now()
	if err := pso.Optimize(ctx, int(*args.Iterations), *args.Maximize, observer); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if plotter != nil {
		if err := plotter.Err(); err != nil {
			return err
		}
	}
	if o.convergencePlot != "" {
		if err := writeConvergence(o.convergencePlot, pso.GlobalBestHistory(), problem.Name()); err != nil {
			return err
		}
	}

	best, _ := pso.GlobalBest()
	fmt.Fprintf(out, "Best fitness: %v - best positions: %v\n", best.Fitness, best.Position)
	fmt.Fprintf(out, "Evaluated %s points of %s in %s\n", humanize.Comma(evaluations), problem.Name(), elapsed.Round(time.Millisecond))
	return nil
}

func writeConvergence(path string, history []algorithms.State, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return util.PlotConvergence(f, history, name)
}
