package tensor

import (
	"fmt"
	"strings"
)

// Dim is a single dimension size that may be unknown (unconstrained).
// The zero value is an unknown dimension.
type Dim struct {
	size  int
	known bool
}

// KnownDim returns a dimension with a fixed size.
func KnownDim(size int) Dim {
	return Dim{size: size, known: true}
}

// UnknownDim returns a dimension whose size is not constrained.
func UnknownDim() Dim {
	return Dim{}
}

// Known reports whether the dimension size is fixed.
func (d Dim) Known() bool {
	return d.known
}

// Size returns the dimension size. Only meaningful when Known() is true.
func (d Dim) Size() int {
	return d.size
}

// String returns the size, or "?" for an unknown dimension.
func (d Dim) String() string {
	if !d.known {
		return "?"
	}
	return fmt.Sprintf("%d", d.size)
}

// PartialShape is a tensor shape where individual dimensions, or the rank
// itself, may be unknown. A rank-0 PartialShape (a scalar) is a known rank
// and is distinct from an unknown rank.
type PartialShape struct {
	dims        []Dim
	unknownRank bool
}

// MakePartialShape returns a shape with known rank and the given dimensions.
func MakePartialShape(dims ...Dim) PartialShape {
	out := make([]Dim, len(dims))
	copy(out, dims)
	return PartialShape{dims: out}
}

// PartialFromShape converts a fully known Shape.
func PartialFromShape(s Shape) PartialShape {
	dims := make([]Dim, len(s))
	for i, d := range s {
		dims[i] = KnownDim(d)
	}
	return PartialShape{dims: dims}
}

// UnknownPartialShape returns the shape with unknown rank.
func UnknownPartialShape() PartialShape {
	return PartialShape{unknownRank: true}
}

// RankKnown reports whether the number of dimensions is known.
func (s PartialShape) RankKnown() bool {
	return !s.unknownRank
}

// Rank returns the number of dimensions. Only meaningful when RankKnown().
func (s PartialShape) Rank() int {
	return len(s.dims)
}

// Dims returns the per-dimension info. Nil when the rank is unknown.
func (s PartialShape) Dims() []Dim {
	if s.unknownRank {
		return nil
	}
	return s.dims
}

// String renders the shape as e.g. "[3 ? 5]", or "<unknown>" for unknown rank.
func (s PartialShape) String() string {
	if s.unknownRank {
		return "<unknown>"
	}
	parts := make([]string, len(s.dims))
	for i, d := range s.dims {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
