// Copyright 2025 Grove ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics provides streaming evaluation metrics backed by
// session-scoped accumulator variables.
//
// # Basic Usage
//
//	import (
//	    "github.com/grove-ml/grove/graph"
//	    "github.com/grove-ml/grove/metrics"
//	    "github.com/grove-ml/grove/tensor"
//	)
//
//	func main() {
//	    sess := graph.NewSession()
//	    losses := tensor.Vector[float32](0.3, 0.1)
//
//	    total, update, _ := metrics.Sum(sess, losses, "loss")
//	    _ = update() // per minibatch
//	    _ = total.Value()
//	}
package metrics

import (
	"github.com/grove-ml/grove/internal/graph"
	"github.com/grove-ml/grove/internal/metrics"
	"github.com/grove-ml/grove/internal/tensor"
)

// UpdateOp advances a metric by one batch when invoked.
type UpdateOp = metrics.UpdateOp

// Sum establishes, idempotently under name, a scalar accumulator variable
// in the session's Local collection and returns it with an update op that
// adds the sum of values to the accumulator. values must be rank-1.
func Sum(sess *graph.Session, values *tensor.RawTensor, name string) (*graph.Variable, UpdateOp, error) {
	return metrics.Sum(sess, values, name)
}
