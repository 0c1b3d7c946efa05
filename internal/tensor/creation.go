package tensor

import "fmt"

// Zeros creates a tensor of the given shape and dtype filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(Shape{3, 4}, Float32)
func Zeros(shape Shape, dtype DataType) *RawTensor {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	// Data is already zero-initialized by make()
	return raw
}

// ZerosLike creates a zero-filled tensor with the same shape and dtype
// as the given tensor.
func ZerosLike(t *RawTensor) *RawTensor {
	return Zeros(t.Shape(), t.DType())
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, float32(3.14))
func Full[T DType](shape Shape, value T) *RawTensor {
	raw := Zeros(shape, inferDataType(value))
	fill(raw, value)
	return raw
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar[T DType](value T) *RawTensor {
	return Full(Shape{}, value)
}

// FromSlice creates a tensor from a Go slice.
// The slice length must match the number of elements implied by the shape.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(data) != raw.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, raw.NumElements())
	}
	copy(typedData[T](raw), data)
	return raw, nil
}

// Vector creates a rank-1 tensor from the given values.
func Vector[T DType](data ...T) *RawTensor {
	raw, err := FromSlice(data, Shape{len(data)})
	if err != nil {
		panic(err) // Rank-1 shape always matches len(data)
	}
	return raw
}

// fill sets every element of the tensor to value.
func fill[T DType](raw *RawTensor, value T) {
	data := typedData[T](raw)
	for i := range data {
		data[i] = value
	}
}

// typedData returns the tensor's buffer as []T.
// Panics if T does not match the tensor's dtype.
func typedData[T DType](raw *RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(raw.AsFloat32()).([]T)
	case float64:
		return any(raw.AsFloat64()).([]T)
	case int32:
		return any(raw.AsInt32()).([]T)
	case int64:
		return any(raw.AsInt64()).([]T)
	case uint8:
		return any(raw.AsUint8()).([]T)
	case bool:
		return any(raw.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}
