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

package validation

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/pso/apis/config/v1alpha1"
)

// ValidateSwarmOptimizerArgs validates defaulted SwarmOptimizerArgs.
func ValidateSwarmOptimizerArgs(path *field.Path, args *v1alpha1.SwarmOptimizerArgs) error {
	var allErrs field.ErrorList

	if args.APIVersion != v1alpha1.SchemeGroupVersion.String() {
		allErrs = append(allErrs, field.NotSupported(path.Child("apiVersion"), args.APIVersion, []string{v1alpha1.SchemeGroupVersion.String()}))
	}
	if args.Kind != v1alpha1.Kind {
		allErrs = append(allErrs, field.NotSupported(path.Child("kind"), args.Kind, []string{v1alpha1.Kind}))
	}
	if args.SwarmSize == nil || *args.SwarmSize <= 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("swarmSize"), deref(args.SwarmSize), "must be greater than 0"))
	}
	if args.Iterations == nil || *args.Iterations <= 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("iterations"), deref(args.Iterations), "must be greater than 0"))
	}
	allErrs = append(allErrs, validateCoefficient(path.Child("c1"), args.C1)...)
	allErrs = append(allErrs, validateCoefficient(path.Child("c2"), args.C2)...)

	if len(args.PositionsBounds) == 0 {
		allErrs = append(allErrs, field.Required(path.Child("positionsBounds"), "at least one dimension is required"))
	}
	allErrs = append(allErrs, validateBounds(path.Child("positionsBounds"), args.PositionsBounds)...)
	allErrs = append(allErrs, validateBounds(path.Child("velocitiesBounds"), args.VelocitiesBounds)...)
	if len(args.VelocitiesBounds) != len(args.PositionsBounds) {
		allErrs = append(allErrs, field.Invalid(path.Child("velocitiesBounds"), len(args.VelocitiesBounds),
			fmt.Sprintf("must have the same number of dimensions as positionsBounds (%d)", len(args.PositionsBounds))))
	}

	return allErrs.ToAggregate()
}

func validateBounds(path *field.Path, bounds []v1alpha1.Bound) field.ErrorList {
	var allErrs field.ErrorList
	for i, b := range bounds {
		if b.Min > b.Max {
			allErrs = append(allErrs, field.Invalid(path.Index(i), b, "min must be less than or equal to max"))
		}
	}
	return allErrs
}

func validateCoefficient(path *field.Path, c *float64) field.ErrorList {
	if c != nil && *c < 0 {
		return field.ErrorList{field.Invalid(path, *c, "must be greater than or equal to 0")}
	}
	return nil
}

func deref(v *int32) any {
	if v == nil {
		return nil
	}
	return *v
}
