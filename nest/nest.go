// Copyright 2025 Grove ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nest provides arbitrarily nested structures of tensors:
// ordered sequences and string-keyed mappings whose leaves are tensors.
//
// # Overview
//
// Structures are traversed in a canonical deterministic order: list
// elements positionally, map entries in lexically sorted key order.
//
// # Basic Usage
//
//	import (
//	    "github.com/grove-ml/grove/nest"
//	    "github.com/grove-ml/grove/tensor"
//	)
//
//	func main() {
//	    grads := nest.ListOf(
//	        nest.TensorOf(tensor.Vector[float32](0.1, 0.2)),
//	        nest.NewMap().Set("bias", nest.TensorOf(tensor.Vector[float32](0.3))),
//	    )
//	    leaves := nest.Flatten(grads)
//	    _ = leaves
//	}
package nest

import (
	"github.com/grove-ml/grove/internal/nest"
	"github.com/grove-ml/grove/internal/tensor"
)

// Value is one node of a nested tensor structure: a Leaf, a List, or a *Map.
type Value = nest.Value

// Leaf wraps a single tensor.
type Leaf = nest.Leaf

// List is an ordered sequence of nested values.
type List = nest.List

// Map is a string-keyed collection of nested values with insertion-ordered
// iteration and sorted-key canonical traversal.
type Map = nest.Map

// Structure errors.
var (
	// ErrStructureMismatch reports two structures that disagree in nesting.
	ErrStructureMismatch = nest.ErrStructureMismatch
	// ErrValueMismatch is the sentinel wrapped by ValueMismatchError.
	ErrValueMismatch = nest.ErrValueMismatch
)

// ValueMismatchError carries the first pair of corresponding leaves that
// failed an equality predicate.
type ValueMismatchError = nest.ValueMismatchError

// TensorOf wraps a tensor as a structure leaf.
func TensorOf(t *tensor.RawTensor) Leaf {
	return nest.TensorOf(t)
}

// ListOf builds a List from the given elements.
func ListOf(elems ...Value) List {
	return nest.ListOf(elems...)
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return nest.NewMap()
}

// Flatten returns the structure's leaf tensors in canonical order.
func Flatten(v Value) []*tensor.RawTensor {
	return nest.Flatten(v)
}

// MapLeaves returns a structure with the same nesting as v and every leaf
// replaced by f(leaf).
func MapLeaves(f func(*tensor.RawTensor) *tensor.RawTensor, v Value) Value {
	return nest.MapLeaves(f, v)
}

// AssertSameStructure fails with ErrStructureMismatch if x and y differ in
// container arrangement, length, or key set at any level.
func AssertSameStructure(x, y Value) error {
	return nest.AssertSameStructure(x, y)
}

// CheckEqual fails unless x and y are same-structured with pairwise-equal
// leaves under eq. A nil eq compares tensors by dtype, shape, and contents.
func CheckEqual(x, y Value, eq func(a, b *tensor.RawTensor) bool) error {
	return nest.CheckEqual(x, y, eq)
}
