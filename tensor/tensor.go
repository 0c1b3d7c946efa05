// Copyright 2025 Grove ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/grove-ml/grove/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the fully known dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Shaped is the capability a value must have to be treated as a tensor by
// shape-inspecting utilities.
type Shaped = tensor.Shaped

// RawTensor is a dense, runtime-typed tensor value.
type RawTensor = tensor.RawTensor

// Dim is a dimension size that may be unknown.
type Dim = tensor.Dim

// PartialShape is a shape whose dimensions, or rank, may be unknown.
type PartialShape = tensor.PartialShape

// Creation functions

// NewRaw creates a zero-initialized tensor with the given shape and dtype.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32)
func Zeros(shape Shape, dtype DataType) *RawTensor {
	return tensor.Zeros(shape, dtype)
}

// ZerosLike creates a zero-filled tensor with the same shape and dtype as t.
func ZerosLike(t *RawTensor) *RawTensor {
	return tensor.ZerosLike(t)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full(tensor.Shape{3, 3}, float32(3.14))
func Full[T DType](shape Shape, value T) *RawTensor {
	return tensor.Full(shape, value)
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar[T DType](value T) *RawTensor {
	return tensor.Scalar(value)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Vector creates a rank-1 tensor from the given values.
func Vector[T DType](data ...T) *RawTensor {
	return tensor.Vector(data...)
}

// Partial shape constructors

// KnownDim returns a dimension with a fixed size.
func KnownDim(size int) Dim {
	return tensor.KnownDim(size)
}

// UnknownDim returns a dimension whose size is not constrained.
func UnknownDim() Dim {
	return tensor.UnknownDim()
}

// MakePartialShape returns a shape with known rank and the given dimensions.
func MakePartialShape(dims ...Dim) PartialShape {
	return tensor.MakePartialShape(dims...)
}

// PartialFromShape converts a fully known Shape into a PartialShape.
func PartialFromShape(s Shape) PartialShape {
	return tensor.PartialFromShape(s)
}

// UnknownPartialShape returns the shape with unknown rank.
func UnknownPartialShape() PartialShape {
	return tensor.UnknownPartialShape()
}

// Whole-tensor scans

// AllFinite reports whether every element of t is finite (neither NaN nor
// Inf). Non-floating-point tensors are trivially finite.
func AllFinite(t *RawTensor) bool {
	return tensor.AllFinite(t)
}

// ReduceSum sums all elements of t into a rank-0 tensor of the same dtype.
func ReduceSum(t *RawTensor) (*RawTensor, error) {
	return tensor.ReduceSum(t)
}

// AddInPlace adds other into t element-wise. Shapes and dtypes must match.
func AddInPlace(t, other *RawTensor) error {
	return tensor.AddInPlace(t, other)
}
