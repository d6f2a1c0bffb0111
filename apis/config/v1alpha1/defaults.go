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
	"k8s.io/utils/ptr"
)

var (
	DefaultBenchmark      = "himmelblau"
	DefaultUseWeightDecay = true
	DefaultSwarmSize      = int32(20)
	DefaultIterations     = int32(50)
	DefaultC1             = 2.0
	DefaultC2             = 2.0
	DefaultW              = 0.9

	// DefaultVelocityFraction of each position range bounds the speed on
	// that dimension, in both directions.
	DefaultVelocityFraction = 0.2
)

// SetDefaults_SwarmOptimizerArgs sets the default parameters for a run.
// Maximize and PositionsBounds depend on the benchmark and are left to the
// caller.
func SetDefaults_SwarmOptimizerArgs(obj *SwarmOptimizerArgs) {
	if obj.APIVersion == "" {
		obj.APIVersion = SchemeGroupVersion.String()
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}
	if obj.Benchmark == "" {
		obj.Benchmark = DefaultBenchmark
	}
	if obj.UseWeightDecay == nil {
		obj.UseWeightDecay = ptr.To(DefaultUseWeightDecay)
	}
	if obj.SwarmSize == nil {
		obj.SwarmSize = ptr.To(DefaultSwarmSize)
	}
	if obj.Iterations == nil {
		obj.Iterations = ptr.To(DefaultIterations)
	}
	if obj.C1 == nil {
		obj.C1 = ptr.To(DefaultC1)
	}
	if obj.C2 == nil {
		obj.C2 = ptr.To(DefaultC2)
	}
	if obj.W == nil {
		obj.W = ptr.To(DefaultW)
	}
	if len(obj.VelocitiesBounds) == 0 && len(obj.PositionsBounds) > 0 {
		obj.VelocitiesBounds = make([]Bound, len(obj.PositionsBounds))
		for i, b := range obj.PositionsBounds {
			v := (b.Max - b.Min) * DefaultVelocityFraction
			obj.VelocitiesBounds[i] = Bound{Min: -v, Max: v}
		}
	}
}
