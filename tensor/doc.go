// Copyright 2025 Grove ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor types underlying the Grove
// federated-learning utilities.
//
// # Overview
//
// This package provides:
//   - RawTensor: a dense, runtime-typed tensor value
//   - Shape: fully known dimensions
//   - Dim and PartialShape: dimensions and shapes with unknown components
//   - Creation helpers (Zeros, Full, FromSlice, Vector, Scalar)
//   - Whole-tensor scans (AllFinite, ReduceSum)
//
// # Basic Usage
//
//	import "github.com/grove-ml/grove/tensor"
//
//	func main() {
//	    grads, _ := tensor.FromSlice([]float32{0.1, 0.2, 0.3}, tensor.Shape{3})
//	    if !tensor.AllFinite(grads) {
//	        grads = tensor.ZerosLike(grads)
//	    }
//	}
//
// # Supported Data Types
//
// The package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers)
//   - bool (boolean masks)
//
// Only floating-point tensors can hold non-finite values; AllFinite is
// trivially true for the other types.
package tensor
