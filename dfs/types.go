// SPDX-License-Identifier: MIT

package dfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvcontainers/capability"
)

// VertexState represents the visitation state of a vertex during cycle detection.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// Connected, Components or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange indicates that src or dest is not a vertex of the graph.
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Edge is a work-list item: the vertex To reached from From.
// The search is seeded with Edge{src, src}.
type Edge struct {
	From, To int
}

// edgeOps orders edges by From, then To.
var edgeOps = capability.Funcs[Edge]{
	CompareFn: func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	},
}

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, src, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// Logger receives debug records for search start and finish.
	Logger *slog.Logger

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex,
	// with its depth in the DFS tree. Returning an error aborts traversal.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops the tree from growing beyond this depth.
	// Zero means no limit.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor before
	// it is pushed. Return true to traverse it, false to skip it.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - a logger that discards everything
//   - No visit hook
//   - No depth limit (MaxDepth = 0)
//   - No neighbor filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *DFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit returns an Option that installs fn as a discovery hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits the DFS tree to depth limit.
// A limit of 0 means no limit; a negative limit is an ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters edges curr→neighbor.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}
