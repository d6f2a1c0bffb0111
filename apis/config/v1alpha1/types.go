/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupName is the group name used in this package
const GroupName = "pso.x-k8s.io"

// SchemeGroupVersion is group version used to describe SwarmOptimizerArgs
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

// Kind is the kind expected in SwarmOptimizerArgs files
const Kind = "SwarmOptimizerArgs"

// SwarmOptimizerArgs holds the arguments used to configure a particle swarm
// optimization run.
type SwarmOptimizerArgs struct {
	metav1.TypeMeta `json:",inline"`

	// Benchmark is the name of the objective function to optimize
	Benchmark string `json:"benchmark,omitempty"`

	// UseWeightDecay decays the inertia weight linearly from 0.9 to 0.4
	// instead of using W
	UseWeightDecay *bool `json:"useWeightDecay,omitempty"`

	// SwarmSize is the number of particles
	SwarmSize *int32 `json:"swarmSize,omitempty"`

	// Iterations is the number of iterations to run
	Iterations *int32 `json:"iterations,omitempty"`

	// Maximize selects maximization instead of minimization.
	// Defaults to the direction of the benchmark.
	Maximize *bool `json:"maximize,omitempty"`

	// PositionsBounds holds one range per dimension.
	// Defaults to the bounds of the benchmark.
	PositionsBounds []Bound `json:"positionsBounds,omitempty"`

	// VelocitiesBounds holds one range per dimension.
	// Defaults to a fraction of each position range.
	VelocitiesBounds []Bound `json:"velocitiesBounds,omitempty"`

	// C1 is the cognitive coefficient
	C1 *float64 `json:"c1,omitempty"`
	// C2 is the social coefficient
	C2 *float64 `json:"c2,omitempty"`
	// W is the fixed inertia weight, used when UseWeightDecay is false
	W *float64 `json:"w,omitempty"`

	// Seed makes the run reproducible when set
	Seed *uint64 `json:"seed,omitempty"`
}

// Bound is an inclusive range on one dimension
type Bound struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
