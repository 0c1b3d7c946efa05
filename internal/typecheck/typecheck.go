// Package typecheck provides shared helpers for reporting capability and
// type errors across the Grove utility packages.
package typecheck

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is the sentinel wrapped by every error reporting a value
// that does not satisfy a required type or capability.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeString returns a readable name for the dynamic type of v.
func TypeString(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// Expected returns a type-mismatch error naming what was required and what
// was actually supplied.
func Expected(what string, got any) error {
	return fmt.Errorf("%w: expected %s, found %s", ErrTypeMismatch, what, TypeString(got))
}
