package graph

import (
	"fmt"
	"strings"
	"sync"

	"github.com/grove-ml/grove/internal/tensor"
)

// deviceSlotSuffix is appended to every variable name: one logical device
// slot per variable.
const deviceSlotSuffix = ":0"

// VarOptions configures variable creation.
type VarOptions struct {
	// Collections the variable is registered in.
	// Empty defaults to {GlobalVariables}.
	Collections []Collection
}

// Session owns the variables of one evaluation context. Variable creation
// is idempotent by name: requesting an existing name returns the existing
// variable. Variables live exactly as long as the Session.
type Session struct {
	mu    sync.Mutex
	vars  map[string]*Variable
	order []string // Full names in creation order
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{vars: make(map[string]*Variable)}
}

// GetOrCreate returns the variable registered under name, creating it
// zero-initialized if absent. The name is the logical name without the
// ":0" suffix; the session appends the suffix. On reuse the requested
// shape and dtype must agree with the existing variable.
func (s *Session) GetOrCreate(name string, shape tensor.Shape, dtype tensor.DataType, opts VarOptions) (*Variable, error) {
	if name == "" {
		return nil, fmt.Errorf("variable name must not be empty")
	}
	if strings.Contains(name, ":") {
		return nil, fmt.Errorf("variable name %q must not contain a device slot; the session appends %q", name, deviceSlotSuffix)
	}
	full := name + deviceSlotSuffix

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.vars[full]; ok {
		if v.DType() != dtype {
			return nil, fmt.Errorf("variable %s exists with dtype %s, requested %s", full, v.DType(), dtype)
		}
		if !v.Shape().Equal(shape) {
			return nil, fmt.Errorf("variable %s exists with shape %v, requested %v", full, v.Shape(), shape)
		}
		return v, nil
	}

	value, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, fmt.Errorf("create variable %s: %w", full, err)
	}

	collections := opts.Collections
	if len(collections) == 0 {
		collections = []Collection{GlobalVariables}
	}

	v := &Variable{
		name:        full,
		value:       value,
		collections: append([]Collection(nil), collections...),
	}
	s.vars[full] = v
	s.order = append(s.order, full)
	return v, nil
}

// Variables returns all variables in creation order.
func (s *Session) Variables() []*Variable {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Variable, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.vars[name])
	}
	return out
}

// Collection returns the variables tagged with c, in creation order.
func (s *Session) Collection(c Collection) []*Variable {
	var out []*Variable
	for _, v := range s.Variables() {
		if v.In(c) {
			out = append(out, v)
		}
	}
	return out
}
