package tensor

import (
	"fmt"
	"math"

	"github.com/grove-ml/grove/internal/parallel"
)

// scanConfig controls parallelism for whole-buffer element scans.
var scanConfig = parallel.DefaultConfig()

// AllFinite reports whether every element of the tensor is finite
// (neither NaN nor Inf). Non-floating-point tensors are trivially finite.
func AllFinite(t *RawTensor) bool {
	switch t.DType() {
	case Float32:
		data := t.AsFloat32()
		return parallel.AllOf(len(data), func(i int) bool {
			v := float64(data[i])
			return !math.IsNaN(v) && !math.IsInf(v, 0)
		}, scanConfig)
	case Float64:
		data := t.AsFloat64()
		return parallel.AllOf(len(data), func(i int) bool {
			return !math.IsNaN(data[i]) && !math.IsInf(data[i], 0)
		}, scanConfig)
	default:
		return true
	}
}

// ReduceSum sums all elements of the tensor into a rank-0 tensor of the
// same dtype. Bool tensors cannot be summed.
func ReduceSum(t *RawTensor) (*RawTensor, error) {
	switch t.DType() {
	case Float32:
		var sum float32
		for _, v := range t.AsFloat32() {
			sum += v
		}
		return Scalar(sum), nil
	case Float64:
		var sum float64
		for _, v := range t.AsFloat64() {
			sum += v
		}
		return Scalar(sum), nil
	case Int32:
		var sum int32
		for _, v := range t.AsInt32() {
			sum += v
		}
		return Scalar(sum), nil
	case Int64:
		var sum int64
		for _, v := range t.AsInt64() {
			sum += v
		}
		return Scalar(sum), nil
	case Uint8:
		var sum uint8
		for _, v := range t.AsUint8() {
			sum += v
		}
		return Scalar(sum), nil
	default:
		return nil, fmt.Errorf("cannot sum %s tensor", t.DType())
	}
}

// AddInPlace adds other into t element-wise. Shapes and dtypes must match.
func AddInPlace(t, other *RawTensor) error {
	if t.DType() != other.DType() {
		return fmt.Errorf("dtype mismatch: %s vs %s", t.DType(), other.DType())
	}
	if !t.Shape().Equal(other.Shape()) {
		return fmt.Errorf("shape mismatch: %v vs %v", t.Shape(), other.Shape())
	}
	switch t.DType() {
	case Float32:
		dst, src := t.AsFloat32(), other.AsFloat32()
		for i := range dst {
			dst[i] += src[i]
		}
	case Float64:
		dst, src := t.AsFloat64(), other.AsFloat64()
		for i := range dst {
			dst[i] += src[i]
		}
	case Int32:
		dst, src := t.AsInt32(), other.AsInt32()
		for i := range dst {
			dst[i] += src[i]
		}
	case Int64:
		dst, src := t.AsInt64(), other.AsInt64()
		for i := range dst {
			dst[i] += src[i]
		}
	case Uint8:
		dst, src := t.AsUint8(), other.AsUint8()
		for i := range dst {
			dst[i] += src[i]
		}
	default:
		return fmt.Errorf("cannot add %s tensors", t.DType())
	}
	return nil
}
