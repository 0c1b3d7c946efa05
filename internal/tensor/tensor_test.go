package tensor

import (
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Uint8, "uint8"},
		{Bool, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestDataTypeIsFloat(t *testing.T) {
	tests := []struct {
		dtype DataType
		want  bool
	}{
		{Float32, true},
		{Float64, true},
		{Int32, false},
		{Int64, false},
		{Uint8, false},
		{Bool, false},
	}

	for _, tt := range tests {
		if got := tt.dtype.IsFloat(); got != tt.want {
			t.Errorf("%s.IsFloat() = %v, want %v", tt.dtype, got, tt.want)
		}
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{1, 1, 1}, 1},  // Ones
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	validShapes := []Shape{
		{},
		{1},
		{3, 4},
		{2, 3, 4},
	}

	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{0},
		{3, 0},
		{-1},
		{3, -4},
	}

	for _, s := range invalidShapes {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should fail but didn't", s)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3}, Shape{3, 1}, false},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{4}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.expected) {
			t.Errorf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.expected)
				break
			}
		}
	}
}

// Partial shape tests

func TestDim(t *testing.T) {
	known := KnownDim(3)
	if !known.Known() || known.Size() != 3 {
		t.Errorf("KnownDim(3) = %v, want known size 3", known)
	}
	if known.String() != "3" {
		t.Errorf("KnownDim(3).String() = %q, want %q", known.String(), "3")
	}

	unknown := UnknownDim()
	if unknown.Known() {
		t.Error("UnknownDim().Known() should be false")
	}
	if unknown.String() != "?" {
		t.Errorf("UnknownDim().String() = %q, want %q", unknown.String(), "?")
	}

	var zero Dim
	if zero.Known() {
		t.Error("zero Dim should be unknown")
	}
}

func TestPartialShape(t *testing.T) {
	s := MakePartialShape(KnownDim(3), UnknownDim(), KnownDim(5))
	if !s.RankKnown() || s.Rank() != 3 {
		t.Errorf("expected known rank 3, got %v", s)
	}
	if got := s.String(); got != "[3 ? 5]" {
		t.Errorf("String() = %q, want %q", got, "[3 ? 5]")
	}

	u := UnknownPartialShape()
	if u.RankKnown() {
		t.Error("UnknownPartialShape().RankKnown() should be false")
	}
	if u.Dims() != nil {
		t.Error("unknown-rank shape should have nil Dims()")
	}
	if got := u.String(); got != "<unknown>" {
		t.Errorf("String() = %q, want %q", got, "<unknown>")
	}

	scalar := MakePartialShape()
	if !scalar.RankKnown() || scalar.Rank() != 0 {
		t.Errorf("rank-0 shape should have known rank 0, got %v", scalar)
	}
}

func TestPartialFromShape(t *testing.T) {
	s := PartialFromShape(Shape{2, 7})
	if !s.RankKnown() || s.Rank() != 2 {
		t.Fatalf("expected known rank 2, got %v", s)
	}
	dims := s.Dims()
	if !dims[0].Known() || dims[0].Size() != 2 || !dims[1].Known() || dims[1].Size() != 7 {
		t.Errorf("PartialFromShape dims = %v, want [2 7]", s)
	}
}
