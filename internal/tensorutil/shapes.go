package tensorutil

import "github.com/grove-ml/grove/internal/tensor"

// SameDimension reports whether two dimension sizes are the same: both
// unknown, or both known with the same value. A known and an unknown
// dimension are never the same.
func SameDimension(x, y tensor.Dim) bool {
	if !x.Known() {
		return !y.Known()
	}
	return y.Known() && x.Size() == y.Size()
}

// SameShape reports whether two partial shapes are the same. Shapes of
// different rank are never the same; an unknown rank equals only another
// unknown rank. With rank known, every corresponding dimension pair must
// satisfy SameDimension. A rank-0 shape is a known rank, distinct from an
// unknown rank.
func SameShape(x, y tensor.PartialShape) bool {
	if x.RankKnown() != y.RankKnown() {
		return false
	}
	if !x.RankKnown() {
		return true
	}
	if x.Rank() != y.Rank() {
		return false
	}
	xd, yd := x.Dims(), y.Dims()
	for i := range xd {
		if !SameDimension(xd[i], yd[i]) {
			return false
		}
	}
	return true
}
