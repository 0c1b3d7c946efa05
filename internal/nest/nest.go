// Package nest implements arbitrarily nested structures of tensors:
// ordered sequences and string-keyed mappings whose leaves are tensors.
//
// Structures are traversed in a canonical deterministic order: list
// elements in positional order, map entries in lexically sorted key order.
// Two structures are "same-structured" when they agree on container kind,
// length, and key set at every level; leaf values are not compared.
package nest

import (
	"fmt"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/grove-ml/grove/internal/tensor"
)

// Value is one node of a nested tensor structure: a Leaf, a List, or a *Map.
type Value interface {
	isValue()
}

// Leaf wraps a single tensor.
type Leaf struct {
	Tensor *tensor.RawTensor
}

func (Leaf) isValue() {}

// TensorOf wraps a tensor as a structure leaf.
func TensorOf(t *tensor.RawTensor) Leaf {
	return Leaf{Tensor: t}
}

// List is an ordered sequence of nested values.
type List struct {
	Elems []Value
}

func (List) isValue() {}

// ListOf builds a List from the given elements.
func ListOf(elems ...Value) List {
	return List{Elems: elems}
}

// Map is a string-keyed collection of nested values. Insertion order is
// preserved for iteration via Keys; canonical traversal uses sorted keys.
type Map struct {
	entries *orderedmap.OrderedMap[string, Value]
}

func (*Map) isValue() {}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{entries: orderedmap.New[string, Value]()}
}

// Set stores v under key, replacing any previous entry.
// Returns the map to allow chained construction.
func (m *Map) Set(key string, v Value) *Map {
	m.entries.Set(key, v)
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	return m.entries.Get(key)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.entries.Len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// sortedKeys returns the keys in canonical (lexically sorted) order.
func (m *Map) sortedKeys() []string {
	keys := m.Keys()
	sort.Strings(keys)
	return keys
}

// Flatten returns the structure's leaf tensors in canonical order.
func Flatten(v Value) []*tensor.RawTensor {
	var out []*tensor.RawTensor
	walk(v, func(t *tensor.RawTensor) {
		out = append(out, t)
	})
	return out
}

func walk(v Value, visit func(*tensor.RawTensor)) {
	switch node := v.(type) {
	case Leaf:
		visit(node.Tensor)
	case List:
		for _, elem := range node.Elems {
			walk(elem, visit)
		}
	case *Map:
		for _, key := range node.sortedKeys() {
			elem, _ := node.Get(key)
			walk(elem, visit)
		}
	case nil:
		// Empty structure: nothing to visit.
	default:
		panic(fmt.Sprintf("unknown structure node %T", v))
	}
}

// MapLeaves returns a structure with the same nesting as v and every leaf
// tensor replaced by f(leaf). Map insertion order is preserved.
func MapLeaves(f func(*tensor.RawTensor) *tensor.RawTensor, v Value) Value {
	switch node := v.(type) {
	case Leaf:
		return Leaf{Tensor: f(node.Tensor)}
	case List:
		elems := make([]Value, len(node.Elems))
		for i, elem := range node.Elems {
			elems[i] = MapLeaves(f, elem)
		}
		return List{Elems: elems}
	case *Map:
		out := NewMap()
		for _, key := range node.Keys() {
			elem, _ := node.Get(key)
			out.Set(key, MapLeaves(f, elem))
		}
		return out
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("unknown structure node %T", v))
	}
}
