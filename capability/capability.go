// SPDX-License-Identifier: MIT

package capability

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for capability validation.
var (
	// ErrNilOps is returned when a container is created without a capability.
	ErrNilOps = errors.New("capability: ops is nil")

	// ErrNilCompare is returned when a Funcs capability carries no CompareFn.
	ErrNilCompare = errors.New("capability: compare function is nil")
)

// Ops is the copy/compare/destroy set a container requires to manage
// values of type T.
type Ops[T any] interface {
	// Copy returns a value the container may own independently of v.
	Copy(v T) T

	// Compare returns a negative number, zero or a positive number when a
	// orders before, equal to, or after b.
	Compare(a, b T) int

	// Destroy releases a copy previously produced by Copy.
	Destroy(v T)
}

// ordered serves any constraints.Ordered type.
type ordered[T constraints.Ordered] struct{}

func (ordered[T]) Copy(v T) T { return v }

func (ordered[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (ordered[T]) Destroy(T) {}

// Ordered returns Ops for an ordered scalar type. Copy is the identity and
// Destroy is a no-op.
func Ordered[T constraints.Ordered]() Ops[T] {
	return ordered[T]{}
}

// Funcs adapts plain functions to Ops. A nil CopyFn behaves as the identity
// and a nil DestroyFn as a no-op; CompareFn is mandatory.
type Funcs[T any] struct {
	CopyFn    func(T) T
	CompareFn func(a, b T) int
	DestroyFn func(T)
}

// Copy implements Ops.
func (f Funcs[T]) Copy(v T) T {
	if f.CopyFn == nil {
		return v
	}

	return f.CopyFn(v)
}

// Compare implements Ops. The result of CompareFn is clamped with Sign.
func (f Funcs[T]) Compare(a, b T) int {
	return Sign(f.CompareFn(a, b))
}

// Destroy implements Ops.
func (f Funcs[T]) Destroy(v T) {
	if f.DestroyFn != nil {
		f.DestroyFn(v)
	}
}

// Validate reports ErrNilOps for a nil capability and ErrNilCompare for a
// Funcs value missing its comparison.
func Validate[T any](ops Ops[T]) error {
	if ops == nil {
		return ErrNilOps
	}
	switch f := ops.(type) {
	case Funcs[T]:
		if f.CompareFn == nil {
			return ErrNilCompare
		}
	case *Funcs[T]:
		if f == nil {
			return ErrNilOps
		}
		if f.CompareFn == nil {
			return ErrNilCompare
		}
	}

	return nil
}

// Sign clamps a comparison result into {-1, 0, 1}.
func Sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

// IsSorted reports whether s is non-decreasing under ops.Compare, or
// non-increasing when descending is true. Empty and single-element slices
// are sorted.
func IsSorted[T any](ops Ops[T], s []T, descending bool) bool {
	for i := 1; i < len(s); i++ {
		c := ops.Compare(s[i-1], s[i])
		if descending {
			c = -c
		}
		if c > 0 {
			return false
		}
	}

	return true
}
