package graph

import (
	"fmt"

	"github.com/grove-ml/grove/internal/tensor"
)

// Collection tags a variable with a lifecycle role, mirroring the usual
// split between checkpointed model state and evaluation-local state.
type Collection int

// Variable collections.
const (
	// GlobalVariables holds model state included in checkpoints.
	GlobalVariables Collection = iota
	// LocalVariables holds evaluation-local state excluded from checkpoints.
	LocalVariables
	// TrainableVariables holds parameters updated by an optimizer.
	TrainableVariables
)

// String returns a human-readable collection name.
func (c Collection) String() string {
	switch c {
	case GlobalVariables:
		return "global"
	case LocalVariables:
		return "local"
	case TrainableVariables:
		return "trainable"
	default:
		return "unknown"
	}
}

// Variable is a named tensor with collection tags. Session-owned variables
// carry the ":0" device-slot suffix, one logical slot per variable.
type Variable struct {
	name        string // Full name, with ":0" suffix when session-owned
	value       *tensor.RawTensor
	collections []Collection
}

// NewVariable returns a free-standing variable not owned by any session.
// The name is used verbatim: unlike Session.GetOrCreate, no device-slot
// suffix is appended, and no uniqueness is enforced.
func NewVariable(name string, value *tensor.RawTensor, collections ...Collection) *Variable {
	return &Variable{
		name:        name,
		value:       value,
		collections: append([]Collection(nil), collections...),
	}
}

// Name returns the variable's full name. Session-owned variables always
// carry the ":0" device-slot suffix.
func (v *Variable) Name() string {
	return v.name
}

// Shape returns the variable's shape, satisfying tensor.Shaped.
func (v *Variable) Shape() tensor.Shape {
	return v.value.Shape()
}

// DType returns the variable's data type.
func (v *Variable) DType() tensor.DataType {
	return v.value.DType()
}

// Value returns the tensor holding the variable's current value.
// The tensor is the live backing store: assignments are visible through it.
func (v *Variable) Value() *tensor.RawTensor {
	return v.value
}

// In reports whether the variable belongs to the given collection.
func (v *Variable) In(c Collection) bool {
	for _, have := range v.collections {
		if have == c {
			return true
		}
	}
	return false
}

// Assign replaces the variable's value in place.
func (v *Variable) Assign(t *tensor.RawTensor) error {
	if t.DType() != v.DType() {
		return fmt.Errorf("assign to %s: dtype mismatch: %s vs %s", v.name, t.DType(), v.DType())
	}
	if !t.Shape().Equal(v.Shape()) {
		return fmt.Errorf("assign to %s: shape mismatch: %v vs %v", v.name, t.Shape(), v.Shape())
	}
	copy(v.value.Data(), t.Data())
	return nil
}

// AssignAdd adds delta to the variable's value in place.
func (v *Variable) AssignAdd(delta *tensor.RawTensor) error {
	if err := tensor.AddInPlace(v.value, delta); err != nil {
		return fmt.Errorf("assign-add to %s: %w", v.name, err)
	}
	return nil
}
