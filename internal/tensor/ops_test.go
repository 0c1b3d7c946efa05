package tensor

import (
	"math"
	"testing"
)

// Creation tests

func TestZeros(t *testing.T) {
	z := Zeros(Shape{2, 3}, Float32)
	assertEqualShape(t, Shape{2, 3}, z.Shape(), "Zeros shape")
	if z.DType() != Float32 {
		t.Errorf("Zeros dtype = %s, want float32", z.DType())
	}
	for i, v := range z.AsFloat32() {
		if v != 0 {
			t.Errorf("Zeros element %d = %v, want 0", i, v)
		}
	}
}

func TestZerosLike(t *testing.T) {
	src := Full(Shape{4}, float64(2.5))
	z := ZerosLike(src)
	assertEqualShape(t, src.Shape(), z.Shape(), "ZerosLike shape")
	if z.DType() != src.DType() {
		t.Errorf("ZerosLike dtype = %s, want %s", z.DType(), src.DType())
	}
	for i, v := range z.AsFloat64() {
		if v != 0 {
			t.Errorf("ZerosLike element %d = %v, want 0", i, v)
		}
	}
	// Source must be untouched.
	if src.AsFloat64()[0] != 2.5 {
		t.Error("ZerosLike modified its input")
	}
}

func TestFull(t *testing.T) {
	f := Full(Shape{3}, int32(7))
	for i, v := range f.AsInt32() {
		if v != 7 {
			t.Errorf("Full element %d = %v, want 7", i, v)
		}
	}
}

func TestScalar(t *testing.T) {
	s := Scalar(float32(1.5))
	assertEqualShape(t, Shape{}, s.Shape(), "Scalar shape")
	if s.NumElements() != 1 {
		t.Errorf("Scalar NumElements = %d, want 1", s.NumElements())
	}
	if got := s.AsFloat32()[0]; got != 1.5 {
		t.Errorf("Scalar value = %v, want 1.5", got)
	}
}

func TestFromSlice(t *testing.T) {
	raw, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	assertEqualShape(t, Shape{2, 3}, raw.Shape(), "FromSlice shape")
	if got := raw.AsFloat32()[4]; got != 5 {
		t.Errorf("FromSlice element 4 = %v, want 5", got)
	}

	if _, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3}); err == nil {
		t.Error("FromSlice with mismatched length should fail")
	}
}

func TestVector(t *testing.T) {
	v := Vector[int64](10, 20, 30)
	assertEqualShape(t, Shape{3}, v.Shape(), "Vector shape")
	if got := v.AsInt64()[2]; got != 30 {
		t.Errorf("Vector element 2 = %v, want 30", got)
	}
}

// RawTensor tests

func TestRawTensorEqual(t *testing.T) {
	a, _ := FromSlice([]float32{1, 2, 3}, Shape{3})
	b, _ := FromSlice([]float32{1, 2, 3}, Shape{3})
	c, _ := FromSlice([]float32{1, 2, 4}, Shape{3})
	d, _ := FromSlice([]float32{1, 2, 3}, Shape{3, 1})

	if !a.Equal(b) {
		t.Error("identical tensors should be equal")
	}
	if a.Equal(c) {
		t.Error("tensors with different contents should not be equal")
	}
	if a.Equal(d) {
		t.Error("tensors with different shapes should not be equal")
	}
	if a.Equal(nil) {
		t.Error("tensor should not equal nil")
	}

	i32 := Vector[int32](1)
	i64 := Vector[int64](1)
	if i32.Equal(i64) {
		t.Error("tensors with different dtypes should not be equal")
	}
}

func TestRawTensorEqualNaN(t *testing.T) {
	// Equal compares representation, so NaN == NaN bit-for-bit.
	nan := float32(math.NaN())
	a := Vector(nan, 1)
	b := Vector(nan, 1)
	if !a.Equal(b) {
		t.Error("bit-identical NaN tensors should be equal")
	}
}

func TestRawTensorClone(t *testing.T) {
	a := Vector[float32](1, 2, 3)
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone should equal original")
	}
	b.AsFloat32()[0] = 99
	if a.AsFloat32()[0] != 1 {
		t.Error("modifying a clone should not affect the original")
	}
}

// AllFinite tests

func TestAllFinite(t *testing.T) {
	tests := []struct {
		name string
		raw  *RawTensor
		want bool
	}{
		{"finite float32", Vector[float32](1, 2, 3), true},
		{"nan float32", Vector(float32(math.NaN()), 1), false},
		{"inf float32", Vector(float32(math.Inf(1)), 1), false},
		{"neg inf float64", Vector(math.Inf(-1), 0), false},
		{"nan float64", Vector(math.NaN()), false},
		{"finite float64", Vector(1.5, -2.5), true},
		{"int32 trivially finite", Vector[int32](1, 2), true},
		{"bool trivially finite", Vector(true, false), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllFinite(tt.raw); got != tt.want {
				t.Errorf("AllFinite = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllFiniteLarge(t *testing.T) {
	// Exercise the parallel scan path.
	n := 1 << 20
	data := make([]float64, n)
	raw, err := FromSlice(data, Shape{n})
	if err != nil {
		t.Fatal(err)
	}
	if !AllFinite(raw) {
		t.Error("all-zero tensor should be finite")
	}

	raw.AsFloat64()[n-1] = math.NaN()
	if AllFinite(raw) {
		t.Error("tensor with trailing NaN should not be finite")
	}
}

// ReduceSum tests

func TestReduceSum(t *testing.T) {
	sum, err := ReduceSum(Vector[float32](1, 2, 3.5))
	if err != nil {
		t.Fatalf("ReduceSum failed: %v", err)
	}
	assertEqualShape(t, Shape{}, sum.Shape(), "ReduceSum shape")
	if got := sum.AsFloat32()[0]; got != 6.5 {
		t.Errorf("ReduceSum = %v, want 6.5", got)
	}

	isum, err := ReduceSum(Vector[int64](10, -3))
	if err != nil {
		t.Fatalf("ReduceSum failed: %v", err)
	}
	if got := isum.AsInt64()[0]; got != 7 {
		t.Errorf("ReduceSum = %v, want 7", got)
	}

	if _, err := ReduceSum(Vector(true)); err == nil {
		t.Error("ReduceSum over bool should fail")
	}
}

// AddInPlace tests

func TestAddInPlace(t *testing.T) {
	dst := Vector[float64](1, 2)
	src := Vector[float64](10, 20)
	if err := AddInPlace(dst, src); err != nil {
		t.Fatalf("AddInPlace failed: %v", err)
	}
	if got := dst.AsFloat64(); got[0] != 11 || got[1] != 22 {
		t.Errorf("AddInPlace result = %v, want [11 22]", got)
	}

	if err := AddInPlace(dst, Vector[float64](1)); err == nil {
		t.Error("AddInPlace with shape mismatch should fail")
	}
	if err := AddInPlace(dst, Vector[float32](1, 2)); err == nil {
		t.Error("AddInPlace with dtype mismatch should fail")
	}
	if err := AddInPlace(Vector(true), Vector(false)); err == nil {
		t.Error("AddInPlace over bool should fail")
	}
}
