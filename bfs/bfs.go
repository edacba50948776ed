// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvcontainers/capability"
	"github.com/katalvlaran/lvcontainers/core"
	"github.com/katalvlaran/lvcontainers/internal/telemetry"
	"github.com/katalvlaran/lvcontainers/worklist"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue *worklist.Queue[int]
	res   *core.SearchResult
}

// BFS runs breadth-first search on g starting from src,
// applying any number of functional Options.
//
// A vertex is discovered at most once: the first vertex that reaches it
// becomes its parent and its distance is the parent's plus one. The source
// is its own parent at distance 0.
//
// Returns ErrGraphNil or ErrVertexOutOfRange for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. On error the partial result is returned.
func BFS(g *core.Graph, src int, opts ...Option) (res *core.SearchResult, err error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: source %d of %d", ErrVertexOutOfRange, src, g.VertexCount())
	}

	ctx, span := telemetry.StartSearch(o.Ctx, "bfs", src, g.VertexCount())
	queue, _ := worklist.NewQueue(capability.Ordered[int]())
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   ctx,
		queue: queue,
		res:   core.NewSearchResult(g, src),
	}
	defer func() {
		w.queue.Destroy()
		span.End(len(w.res.Order), err)
		o.Logger.Debug("bfs finished",
			slog.Int("src", src),
			slog.Int("visited", len(w.res.Order)),
			slog.Any("err", err))
	}()

	// Seed queue with the source, its own parent
	w.enqueue(src, 0, src)

	return w.res, w.loop()
}

// Connected reports whether src and dest lie in the same component of g.
func Connected(g *core.Graph, src, dest int, opts ...Option) (bool, error) {
	if g != nil && !g.HasVertex(dest) {
		return false, fmt.Errorf("%w: destination %d of %d", ErrVertexOutOfRange, dest, g.VertexCount())
	}
	res, err := BFS(g, src, opts...)
	if err != nil {
		return false, err
	}

	return res.Reachable(dest), nil
}

// enqueue marks v discovered at depth d with the given parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Visit(v, parent, d)
	w.opts.OnEnqueue(v, d)
	w.queue.Push(v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.IsEmpty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, depth := w.dequeue()
		if err := w.visit(v, depth); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(v, depth); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first vertex, invokes OnDequeue, and returns it with its depth.
func (w *walker) dequeue() (int, int) {
	v, _ := w.queue.Pop()
	depth := w.res.Info[v].Distance
	w.opts.OnDequeue(v, depth)

	return v, depth
}

// visit calls OnVisit.
func (w *walker) visit(v, depth int) error {
	if err := w.opts.OnVisit(v, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each
// undiscovered neighbor of v.
func (w *walker) enqueueNeighbors(v, depth int) error {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for nbr := range w.graph.Neighbors(v) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.res.Visited(nbr) || !w.opts.FilterNeighbor(v, nbr) {
			continue
		}
		w.enqueue(nbr, next, v)
	}

	return nil
}
