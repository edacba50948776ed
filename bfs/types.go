// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexOutOfRange is returned when src or dest is not a vertex of the graph.
	ErrVertexOutOfRange = errors.New("bfs: vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger receives debug records for search start and finish.
	Logger *slog.Logger

	// OnEnqueue is called when a vertex is discovered and enqueued.
	// Receives the vertex and its depth from the source.
	OnEnqueue func(v, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - a logger that discards everything
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		Logger:         slog.New(slog.DiscardHandler),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
