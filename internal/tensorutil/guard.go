package tensorutil

import (
	"github.com/grove-ml/grove/internal/graph"
	"github.com/grove-ml/grove/internal/nest"
	"github.com/grove-ml/grove/internal/tensor"
)

// GuardResult is the outcome of the non-finite guard: the (possibly
// zeroed) structure and a flag recording whether zeroing happened.
type GuardResult struct {
	Structure nest.Value
	// Flag is 0 when every element was finite and the structure passed
	// through unchanged, 1 when the structure was replaced with zeros.
	Flag int32
}

// ZeroAllIfAnyNonFinite guards a gradient-like structure against NaN and
// Inf contamination. The returned expression realizes to the original
// structure and flag 0 when every leaf element is finite, or to a
// same-shaped all-zero structure and flag 1 when any element is not.
// An empty structure passes through unchanged with flag 0.
//
// The result is deferred: both outcomes are constructed as branches of a
// graph.Cond up front, and the finiteness predicate runs only when the
// expression is realized. This keeps the guard usable as a single unit
// inside a larger deferred computation, where the predicate's value is
// not known at construction time.
func ZeroAllIfAnyNonFinite(structure nest.Value) *graph.Expr[GuardResult] {
	flat := nest.Flatten(structure)
	if len(flat) == 0 {
		return graph.Const(GuardResult{Structure: structure, Flag: 0})
	}

	// AND-reduction of per-leaf finiteness, deferred to realization time.
	allFinite := graph.Defer(func() bool {
		ok := true
		for _, leaf := range flat {
			ok = ok && tensor.AllFinite(leaf)
		}
		return ok
	})

	passThrough := graph.Const(GuardResult{Structure: structure, Flag: 0})
	zeroed := graph.Defer(func() GuardResult {
		return GuardResult{Structure: nest.MapLeaves(tensor.ZerosLike, structure), Flag: 1}
	})

	return graph.Cond(allFinite, passThrough, zeroed)
}
