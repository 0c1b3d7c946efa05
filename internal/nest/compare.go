package nest

import (
	"errors"
	"fmt"

	"github.com/grove-ml/grove/internal/tensor"
)

// ErrStructureMismatch reports that two nested structures disagree in
// container arrangement, length, or key set at some level.
var ErrStructureMismatch = errors.New("structure mismatch")

// ErrValueMismatch is the sentinel wrapped by ValueMismatchError.
var ErrValueMismatch = errors.New("value mismatch")

// ValueMismatchError carries the first pair of corresponding leaves that
// failed the equality predicate.
type ValueMismatchError struct {
	X, Y *tensor.RawTensor
}

func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("value mismatch: %s != %s", e.X, e.Y)
}

func (e *ValueMismatchError) Unwrap() error {
	return ErrValueMismatch
}

// AssertSameStructure fails with ErrStructureMismatch if x and y differ in
// nesting: different node kinds, list lengths, or map key sets at any
// level. Leaf tensors are not compared.
func AssertSameStructure(x, y Value) error {
	return sameStructure(x, y, "$")
}

func sameStructure(x, y Value, path string) error {
	switch xv := x.(type) {
	case Leaf:
		if _, ok := y.(Leaf); !ok {
			return mismatch(path, "leaf", y)
		}
		return nil
	case List:
		yv, ok := y.(List)
		if !ok {
			return mismatch(path, "list", y)
		}
		if len(xv.Elems) != len(yv.Elems) {
			return fmt.Errorf("%w at %s: list length %d vs %d",
				ErrStructureMismatch, path, len(xv.Elems), len(yv.Elems))
		}
		for i := range xv.Elems {
			if err := sameStructure(xv.Elems[i], yv.Elems[i], fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	case *Map:
		yv, ok := y.(*Map)
		if !ok {
			return mismatch(path, "map", y)
		}
		xKeys, yKeys := xv.sortedKeys(), yv.sortedKeys()
		if len(xKeys) != len(yKeys) {
			return fmt.Errorf("%w at %s: map size %d vs %d",
				ErrStructureMismatch, path, len(xKeys), len(yKeys))
		}
		for i, key := range xKeys {
			if key != yKeys[i] {
				return fmt.Errorf("%w at %s: key %q vs %q",
					ErrStructureMismatch, path, key, yKeys[i])
			}
			xe, _ := xv.Get(key)
			ye, _ := yv.Get(key)
			if err := sameStructure(xe, ye, fmt.Sprintf("%s.%s", path, key)); err != nil {
				return err
			}
		}
		return nil
	case nil:
		if y != nil {
			return mismatch(path, "empty", y)
		}
		return nil
	default:
		panic(fmt.Sprintf("unknown structure node %T", x))
	}
}

func mismatch(path, want string, got Value) error {
	return fmt.Errorf("%w at %s: %s vs %s", ErrStructureMismatch, path, want, kind(got))
}

func kind(v Value) string {
	switch v.(type) {
	case Leaf:
		return "leaf"
	case List:
		return "list"
	case *Map:
		return "map"
	case nil:
		return "empty"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// CheckEqual fails unless x and y are same-structured and every pair of
// corresponding leaves satisfies eq. A nil eq compares tensors by dtype,
// shape, and contents. The check short-circuits: it reports the first
// unequal pair as a ValueMismatchError and compares nothing after it.
func CheckEqual(x, y Value, eq func(a, b *tensor.RawTensor) bool) error {
	if err := AssertSameStructure(x, y); err != nil {
		return err
	}
	if eq == nil {
		eq = (*tensor.RawTensor).Equal
	}
	flatX := Flatten(x)
	flatY := Flatten(y)
	for i := range flatX {
		if !eq(flatX[i], flatY[i]) {
			return &ValueMismatchError{X: flatX[i], Y: flatY[i]}
		}
	}
	return nil
}
