// SPDX-License-Identifier: MIT

// Package list provides a singly linked list whose nodes own copies of the
// values inserted into them. It backs the neighbor lists of core.Graph.
//
// Values are copied on Insert and destroyed on Delete/Destroy through the
// capability supplied at construction. Iteration goes through All, a
// restartable read-only sequence; nodes are never exposed.
//
// List is not safe for concurrent use.
package list

import (
	"iter"

	"github.com/katalvlaran/lvcontainers/capability"
)

type node[T any] struct {
	val  T
	next *node[T]
}

// List is a singly linked list of owned T values.
type List[T any] struct {
	head *node[T]
	ops  capability.Ops[T]
	n    int
}

// New creates an empty list managing its values through ops.
// Returns capability.ErrNilOps (or ErrNilCompare) for an unusable capability.
func New[T any](ops capability.Ops[T]) (*List[T], error) {
	if err := capability.Validate(ops); err != nil {
		return nil, err
	}

	return &List[T]{ops: ops}, nil
}

// Insert stores a copy of v at the head of the list.
// Complexity: O(1).
func (l *List[T]) Insert(v T) {
	l.head = &node[T]{val: l.ops.Copy(v), next: l.head}
	l.n++
}

// Contains reports whether a value comparing equal to v is stored.
// Complexity: O(n).
func (l *List[T]) Contains(v T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if l.ops.Compare(cur.val, v) == 0 {
			return true
		}
	}

	return false
}

// Delete removes the first value comparing equal to v, destroying the stored
// copy. Deleting an absent value is a no-op and reports false.
// Complexity: O(n).
func (l *List[T]) Delete(v T) bool {
	for prev := &l.head; *prev != nil; prev = &(*prev).next {
		cur := *prev
		if l.ops.Compare(cur.val, v) == 0 {
			*prev = cur.next
			l.ops.Destroy(cur.val)
			l.n--

			return true
		}
	}

	return false
}

// Len returns the number of stored values.
func (l *List[T]) Len() int { return l.n }

// IsEmpty reports whether the list holds no values.
func (l *List[T]) IsEmpty() bool { return l.n == 0 }

// All yields the stored values from head to tail. The sequence may be ranged
// over any number of times; callers must not mutate the list while ranging.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.val) {
				return
			}
		}
	}
}

// Destroy releases every stored value and empties the list.
func (l *List[T]) Destroy() {
	for cur := l.head; cur != nil; {
		next := cur.next
		l.ops.Destroy(cur.val)
		cur.next = nil
		cur = next
	}
	l.head = nil
	l.n = 0
}
