package benchmarks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mihai-snyk/pso/pkg/pso/framework"
)

var registry = map[string]func() framework.Problem{
	"himmelblau":        func() framework.Problem { return NewHimmelblau() },
	"eggholder":         func() framework.Problem { return NewEggholder() },
	"sphere":            func() framework.Problem { return NewSphere(2) },
	"shiftedparaboloid": func() framework.Problem { return NewShiftedParaboloid() },
}

// ByName returns the benchmark registered under name, case-insensitively.
func ByName(name string) (framework.Problem, error) {
	newProblem, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown benchmark %q, want one of %v", name, Names())
	}
	return newProblem(), nil
}

// Names lists the registered benchmarks in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
