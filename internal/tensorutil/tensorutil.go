// Package tensorutil provides the structural helpers used across the
// Grove federated-learning utilities: nested-structure equality checks,
// deterministic orderings of named variables and mappings, a non-finite
// guard for gradient-like structures, and shape comparison helpers.
//
// Each function is a stateless utility operating on caller-supplied
// values; nothing is cached or mutated across calls.
package tensorutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/grove-ml/grove/internal/graph"
	"github.com/grove-ml/grove/internal/nest"
	"github.com/grove-ml/grove/internal/tensor"
	"github.com/grove-ml/grove/internal/typecheck"
)

// ErrBadName reports a variable name that does not end with the ":0"
// device-slot suffix.
var ErrBadName = errors.New("bad variable name")

// ErrDuplicateName reports two variables resolving to the same name after
// the device-slot suffix is stripped.
var ErrDuplicateName = errors.New("duplicate variable name")

// deviceSlotSuffix is the trailing device-slot marker variable names must
// carry; it is stripped before names are used as keys.
const deviceSlotSuffix = ":0"

// CheckNestedEqual fails unless x and y are same-structured nested values
// with pairwise-equal leaves under eq. A nil eq compares tensors by dtype,
// shape, and contents.
//
// Structure is validated first: two structures that disagree in nesting
// fail with nest.ErrStructureMismatch before any leaf is compared. The
// leaf walk short-circuits, reporting the first unequal pair as a
// nest.ValueMismatchError.
func CheckNestedEqual(x, y nest.Value, eq func(a, b *tensor.RawTensor) bool) error {
	return nest.CheckEqual(x, y, eq)
}

// ToVarDict builds an insertion-ordered mapping from variable name to
// variable, keyed by name with the ":0" suffix stripped.
//
// The original iteration order is preserved, never sorted: downstream
// consumers pair the mapping positionally with separately-ordered value
// lists. Each variable must be non-nil, carry the ":0" suffix, and strip
// to a name no other variable in the input strips to.
func ToVarDict(variables []*graph.Variable) (*orderedmap.OrderedMap[string, *graph.Variable], error) {
	out := orderedmap.New[string, *graph.Variable]()
	for i, v := range variables {
		if v == nil {
			return nil, fmt.Errorf("variable %d: %w", i, typecheck.Expected("a variable", v))
		}
		name := v.Name()
		if !strings.HasSuffix(name, deviceSlotSuffix) {
			return nil, fmt.Errorf("%w: variable has unexpected name %q", ErrBadName, name)
		}
		name = strings.TrimSuffix(name, deviceSlotSuffix)
		if _, seen := out.Get(name); seen {
			return nil, fmt.Errorf("%w: found multiple variables with the name %q", ErrDuplicateName, name)
		}
		out.Set(name, v)
	}
	return out, nil
}

// ToODict converts d to an insertion-ordered mapping with lexically sorted
// string keys. A mapping that is already ordered is returned unchanged;
// this is the identity on its own output. Anything that is not a
// string-keyed mapping fails with a type error.
//
// Contrast with ToVarDict: here sorted order, not input order, defines
// determinism.
func ToODict[V any](d any) (*orderedmap.OrderedMap[string, V], error) {
	switch m := d.(type) {
	case *orderedmap.OrderedMap[string, V]:
		return m, nil
	case map[string]V:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := orderedmap.New[string, V]()
		for _, k := range keys {
			out.Set(k, m[k])
		}
		return out, nil
	default:
		return nil, typecheck.Expected("a string-keyed mapping", d)
	}
}

// IsScalar reports whether v is a scalar tensor, i.e. every declared
// dimension equals 1. A rank-0 shape is vacuously scalar. Values without
// the tensor capability (tensor.Shaped) fail with a type error.
func IsScalar(v any) (bool, error) {
	shaped, ok := v.(tensor.Shaped)
	if !ok {
		return false, typecheck.Expected("a tensor", v)
	}
	for _, dim := range shaped.Shape() {
		if dim != 1 {
			return false, nil
		}
	}
	return true, nil
}
