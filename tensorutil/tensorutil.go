// Copyright 2025 Grove ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensorutil provides structural helpers for federated-learning
// model plumbing: nested-structure equality checks, deterministic
// orderings of named variables and mappings, a non-finite guard for
// gradient-like structures, scalar detection, and shape comparison.
//
// # Overview
//
//   - CheckNestedEqual: structural + value equality over nested tensors
//   - ToVarDict: insertion-ordered mapping of variables by stripped name
//   - ToODict: lexically sorted ordered mapping from any string-keyed map
//   - ZeroAllIfAnyNonFinite: zero a whole structure when any element is
//     NaN or Inf, as a deferred conditional
//   - IsScalar: true iff every declared dimension equals 1
//   - SameDimension, SameShape: comparison over partially known shapes
//
// # Guarding aggregated updates
//
//	import (
//	    "github.com/grove-ml/grove/nest"
//	    "github.com/grove-ml/grove/tensorutil"
//	)
//
//	func apply(delta nest.Value) nest.Value {
//	    guarded := tensorutil.ZeroAllIfAnyNonFinite(delta).Value()
//	    if guarded.Flag != 0 {
//	        // The whole update was replaced with zeros.
//	    }
//	    return guarded.Structure
//	}
package tensorutil

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/grove-ml/grove/internal/graph"
	"github.com/grove-ml/grove/internal/nest"
	"github.com/grove-ml/grove/internal/tensor"
	"github.com/grove-ml/grove/internal/tensorutil"
	"github.com/grove-ml/grove/internal/typecheck"
)

// ErrTypeMismatch is the sentinel wrapped by errors reporting a value that
// does not satisfy a required type or capability.
var ErrTypeMismatch = typecheck.ErrTypeMismatch

// Naming errors.
var (
	// ErrBadName reports a variable name without the ":0" suffix.
	ErrBadName = tensorutil.ErrBadName
	// ErrDuplicateName reports two variables stripping to the same name.
	ErrDuplicateName = tensorutil.ErrDuplicateName
)

// GuardResult is the outcome of the non-finite guard.
type GuardResult = tensorutil.GuardResult

// CheckNestedEqual fails unless x and y are same-structured nested values
// with pairwise-equal leaves under eq. A nil eq compares tensors by
// dtype, shape, and contents. Structure mismatches are reported before
// any leaf comparison; the first unequal pair short-circuits the walk.
func CheckNestedEqual(x, y nest.Value, eq func(a, b *tensor.RawTensor) bool) error {
	return tensorutil.CheckNestedEqual(x, y, eq)
}

// ToVarDict builds an insertion-ordered mapping from stripped variable
// name to variable, preserving input order.
func ToVarDict(variables []*graph.Variable) (*orderedmap.OrderedMap[string, *graph.Variable], error) {
	return tensorutil.ToVarDict(variables)
}

// ToODict converts d to an insertion-ordered mapping with lexically
// sorted string keys. Already-ordered mappings are returned unchanged.
func ToODict[V any](d any) (*orderedmap.OrderedMap[string, V], error) {
	return tensorutil.ToODict[V](d)
}

// ZeroAllIfAnyNonFinite guards a gradient-like structure: the returned
// deferred expression realizes to the original structure and flag 0 when
// all elements are finite, or a same-shaped all-zero structure and flag 1
// otherwise.
func ZeroAllIfAnyNonFinite(structure nest.Value) *graph.Expr[GuardResult] {
	return tensorutil.ZeroAllIfAnyNonFinite(structure)
}

// IsScalar reports whether v is a scalar tensor, i.e. every declared
// dimension equals 1. Values without the tensor capability fail with a
// type error.
func IsScalar(v any) (bool, error) {
	return tensorutil.IsScalar(v)
}

// SameDimension reports whether two dimension sizes are the same: both
// unknown, or both known and equal.
func SameDimension(x, y tensor.Dim) bool {
	return tensorutil.SameDimension(x, y)
}

// SameShape reports whether two partial shapes are the same, per
// SameDimension over every dimension pair when rank is known.
func SameShape(x, y tensor.PartialShape) bool {
	return tensorutil.SameShape(x, y)
}
