// Copyright 2025 Grove ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides Grove's deferred-execution and variable
// primitives: memoized expressions, a deferred conditional, and
// session-scoped variables tagged by collection.
//
// # Basic Usage
//
//	import (
//	    "github.com/grove-ml/grove/graph"
//	    "github.com/grove-ml/grove/tensor"
//	)
//
//	func main() {
//	    sess := graph.NewSession()
//	    acc, _ := sess.GetOrCreate("seen/sum", tensor.Shape{}, tensor.Float32, graph.VarOptions{
//	        Collections: []graph.Collection{graph.LocalVariables},
//	    })
//	    _ = acc.AssignAdd(tensor.Scalar(float32(3)))
//	}
package graph

import (
	"github.com/grove-ml/grove/internal/graph"
	"github.com/grove-ml/grove/internal/tensor"
)

// Expr is a deferred computation producing a value of type T.
// The computation runs at most once; the result is memoized.
type Expr[T any] = graph.Expr[T]

// Defer wraps a computation without running it.
func Defer[T any](f func() T) *Expr[T] {
	return graph.Defer(f)
}

// Const wraps an already-computed value.
func Const[T any](v T) *Expr[T] {
	return graph.Const(v)
}

// Cond is a deferred two-branch conditional: both branches are constructed
// up front, the predicate decides at realization time, and the branch not
// taken is never evaluated.
func Cond[T any](pred *Expr[bool], onTrue, onFalse *Expr[T]) *Expr[T] {
	return graph.Cond(pred, onTrue, onFalse)
}

// Collection tags a variable with a lifecycle role.
type Collection = graph.Collection

// Variable collections.
const (
	// GlobalVariables holds model state included in checkpoints.
	GlobalVariables Collection = graph.GlobalVariables
	// LocalVariables holds evaluation-local state excluded from checkpoints.
	LocalVariables Collection = graph.LocalVariables
	// TrainableVariables holds parameters updated by an optimizer.
	TrainableVariables Collection = graph.TrainableVariables
)

// Variable is a named tensor owned by a Session.
type Variable = graph.Variable

// VarOptions configures variable creation.
type VarOptions = graph.VarOptions

// Session owns the variables of one evaluation context. Variable creation
// is idempotent by name.
type Session = graph.Session

// NewSession returns an empty session.
func NewSession() *Session {
	return graph.NewSession()
}

// NewVariable returns a free-standing variable not owned by any session.
func NewVariable(name string, value *tensor.RawTensor, collections ...Collection) *Variable {
	return graph.NewVariable(name, value, collections...)
}
