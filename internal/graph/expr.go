// Package graph provides the deferred-execution and variable primitives
// the Grove utilities build on: memoized expressions, a deferred
// conditional, and session-scoped variables tagged by collection.
package graph

import "sync"

// Expr is a deferred computation producing a value of type T.
// The computation runs at most once: the first Value call realizes it and
// later calls return the memoized result.
type Expr[T any] struct {
	mu       sync.Mutex
	compute  func() T
	value    T
	realized bool
}

// Defer wraps a computation without running it.
func Defer[T any](f func() T) *Expr[T] {
	return &Expr[T]{compute: f}
}

// Const wraps an already-computed value.
func Const[T any](v T) *Expr[T] {
	return &Expr[T]{value: v, realized: true}
}

// Value realizes the expression and returns its result.
// Thread-safe: concurrent callers observe a single evaluation.
func (e *Expr[T]) Value() T {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.realized {
		e.value = e.compute()
		e.realized = true
		e.compute = nil
	}
	return e.value
}

// Realized reports whether the expression has been evaluated.
func (e *Expr[T]) Realized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.realized
}

// Cond is a deferred two-branch conditional. Both branch expressions are
// constructed up front; which one evaluates is decided only when the
// result is realized, by the predicate's value at that time. The branch
// not taken is never evaluated.
func Cond[T any](pred *Expr[bool], onTrue, onFalse *Expr[T]) *Expr[T] {
	return Defer(func() T {
		if pred.Value() {
			return onTrue.Value()
		}
		return onFalse.Value()
	})
}
