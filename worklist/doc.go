// SPDX-License-Identifier: MIT

// Package worklist provides the FIFO queue and LIFO stack that traversal
// engines drain while walking a graph.
//
// Both containers sit on a ring-buffer deque (github.com/gammazero/deque),
// take a capability copy of every pushed value and destroy whatever is still
// stored when Destroy is called. A value returned from Pop belongs to the
// caller.
//
// Pop and Peek on an empty work-list return the zero value and false; this is
// an expected outcome, not an error.
//
// Neither type is safe for concurrent use.
package worklist
