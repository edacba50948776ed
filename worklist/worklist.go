// SPDX-License-Identifier: MIT

package worklist

import (
	"github.com/gammazero/deque"

	"github.com/katalvlaran/lvcontainers/capability"
)

// Queue is a first-in first-out work-list.
type Queue[T any] struct {
	dq  deque.Deque[T]
	ops capability.Ops[T]
}

// NewQueue creates an empty queue managing values through ops.
func NewQueue[T any](ops capability.Ops[T]) (*Queue[T], error) {
	if err := capability.Validate(ops); err != nil {
		return nil, err
	}

	return &Queue[T]{ops: ops}, nil
}

// Push appends a copy of v at the tail.
func (q *Queue[T]) Push(v T) { q.dq.PushBack(q.ops.Copy(v)) }

// Pop removes and returns the head value.
func (q *Queue[T]) Pop() (T, bool) {
	if q.dq.Len() == 0 {
		var zero T
		return zero, false
	}

	return q.dq.PopFront(), true
}

// Peek returns the head value without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.dq.Len() == 0 {
		var zero T
		return zero, false
	}

	return q.dq.Front(), true
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return q.dq.Len() }

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool { return q.dq.Len() == 0 }

// Destroy releases every queued value.
func (q *Queue[T]) Destroy() {
	for q.dq.Len() > 0 {
		q.ops.Destroy(q.dq.PopFront())
	}
}

// Stack is a last-in first-out work-list.
type Stack[T any] struct {
	dq  deque.Deque[T]
	ops capability.Ops[T]
}

// NewStack creates an empty stack managing values through ops.
func NewStack[T any](ops capability.Ops[T]) (*Stack[T], error) {
	if err := capability.Validate(ops); err != nil {
		return nil, err
	}

	return &Stack[T]{ops: ops}, nil
}

// Push places a copy of v on top.
func (s *Stack[T]) Push(v T) { s.dq.PushBack(s.ops.Copy(v)) }

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, bool) {
	if s.dq.Len() == 0 {
		var zero T
		return zero, false
	}

	return s.dq.PopBack(), true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.dq.Len() == 0 {
		var zero T
		return zero, false
	}

	return s.dq.Back(), true
}

// Len returns the number of stacked values.
func (s *Stack[T]) Len() int { return s.dq.Len() }

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool { return s.dq.Len() == 0 }

// Destroy releases every stacked value.
func (s *Stack[T]) Destroy() {
	for s.dq.Len() > 0 {
		s.ops.Destroy(s.dq.PopBack())
	}
}
