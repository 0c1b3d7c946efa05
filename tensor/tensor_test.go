// Copyright 2025 Grove ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"math"
	"testing"

	"github.com/grove-ml/grove/tensor"
)

// TestRawTensorAPI verifies the RawTensor alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 6*4 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}

	clone := raw.Clone()
	if clone == nil || !clone.Equal(raw) {
		t.Error("Clone() should equal the original")
	}
}

// TestCreationAPI verifies the creation helpers through the public API.
func TestCreationAPI(t *testing.T) {
	z := tensor.Zeros(tensor.Shape{3}, tensor.Float64)
	if !tensor.AllFinite(z) {
		t.Error("zeros are finite")
	}

	v := tensor.Vector(1.0, math.NaN())
	if tensor.AllFinite(v) {
		t.Error("NaN vector must not be finite")
	}

	zl := tensor.ZerosLike(v)
	if !tensor.AllFinite(zl) || !zl.Shape().Equal(v.Shape()) {
		t.Error("ZerosLike should be a finite same-shaped tensor")
	}

	sum, err := tensor.ReduceSum(tensor.Vector[float32](1, 2, 3))
	if err != nil {
		t.Fatalf("ReduceSum failed: %v", err)
	}
	if got := sum.AsFloat32()[0]; got != 6 {
		t.Errorf("ReduceSum = %v, want 6", got)
	}
}

// TestPartialShapeAPI verifies the partial-shape constructors.
func TestPartialShapeAPI(t *testing.T) {
	s := tensor.MakePartialShape(tensor.KnownDim(3), tensor.UnknownDim())
	if !s.RankKnown() || s.Rank() != 2 {
		t.Errorf("expected known rank 2, got %v", s)
	}
	if tensor.UnknownPartialShape().RankKnown() {
		t.Error("unknown shape must have unknown rank")
	}
	if tensor.PartialFromShape(tensor.Shape{5}).Dims()[0].Size() != 5 {
		t.Error("PartialFromShape should carry dimension sizes")
	}
}
