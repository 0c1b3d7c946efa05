// Package metrics implements streaming evaluation metrics backed by
// session-scoped accumulator variables.
package metrics

import (
	"fmt"

	"github.com/grove-ml/grove/internal/graph"
	"github.com/grove-ml/grove/internal/tensor"
)

// defaultSumScope names the accumulator when the caller does not.
const defaultSumScope = "metrics_sum"

// UpdateOp advances a metric by one batch when invoked.
type UpdateOp func() error

// Sum is a streaming sum metric: it establishes, idempotently under the
// given scope name, a scalar accumulator variable and returns it together
// with an update op that adds the sum of values to the accumulator.
//
// The accumulator lives in the session's Local collection, is not
// trainable, and starts at zero. Calling Sum again with the same name
// reuses the variable rather than creating a second one. The update op
// re-reads values on every invocation, so callers can refill the tensor
// between invocations.
//
// values must be rank-1 and of a summable dtype.
func Sum(sess *graph.Session, values *tensor.RawTensor, name string) (*graph.Variable, UpdateOp, error) {
	if len(values.Shape()) != 1 {
		return nil, nil, fmt.Errorf("metrics.Sum requires a rank-1 tensor, got shape %v", values.Shape())
	}
	if values.DType() == tensor.Bool {
		return nil, nil, fmt.Errorf("metrics.Sum cannot sum %s values", values.DType())
	}
	if name == "" {
		name = defaultSumScope
	}

	acc, err := sess.GetOrCreate(name+"/sum", tensor.Shape{}, values.DType(), graph.VarOptions{
		Collections: []graph.Collection{graph.LocalVariables},
	})
	if err != nil {
		return nil, nil, err
	}

	update := func() error {
		total, err := tensor.ReduceSum(values)
		if err != nil {
			return err
		}
		return acc.AssignAdd(total)
	}
	return acc, update, nil
}
