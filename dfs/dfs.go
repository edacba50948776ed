// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvcontainers/core"
	"github.com/katalvlaran/lvcontainers/internal/telemetry"
	"github.com/katalvlaran/lvcontainers/worklist"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph           // underlying graph
	opts  DFSOptions            // traversal options
	ctx   context.Context       // span-carrying context
	stack *worklist.Stack[Edge] // pending edges
	res   *core.SearchResult    // result collector
}

// newWalker prepares a walker over g whose result is rooted at src.
func newWalker(ctx context.Context, g *core.Graph, src int, o DFSOptions) *dfsWalker {
	stack, _ := worklist.NewStack[Edge](edgeOps)

	return &dfsWalker{
		graph: g,
		opts:  o,
		ctx:   ctx,
		stack: stack,
		res:   core.NewSearchResult(g, src),
	}
}

// buildOptions applies opts over the defaults and validates g.
func buildOptions(g *core.Graph, opts []Option) (DFSOptions, error) {
	if g == nil {
		return DFSOptions{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}

// DFS performs an iterative depth-first search on g from src.
//
// The work-list holds edges rather than vertices: popping an edge whose sink
// is already visited discards it; otherwise the sink is visited with the
// edge's From as parent, at depth 0 for the seed edge and at the parent's
// depth plus one for every other edge, and all of its incident edges are pushed.
// Distances are therefore DFS-tree depths, not shortest paths.
//
// Returns ErrGraphNil, ErrVertexOutOfRange, ErrOptionViolation, the context
// error, or a wrapped OnVisit error. On error the partial result is returned.
func DFS(g *core.Graph, src int, opts ...Option) (res *core.SearchResult, err error) {
	// 1. Validate input graph and options
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: source %d of %d", ErrVertexOutOfRange, src, g.VertexCount())
	}

	// 2. Prepare walker and instrumentation
	ctx, span := telemetry.StartSearch(o.Ctx, "dfs", src, g.VertexCount())
	w := newWalker(ctx, g, src, o)
	defer func() {
		w.stack.Destroy()
		span.End(len(w.res.Order), err)
		o.Logger.Debug("dfs finished",
			slog.Int("src", src),
			slog.Int("visited", len(w.res.Order)),
			slog.Any("err", err))
	}()

	// 3. Traverse from the seed edge
	return w.res, w.traverse(src)
}

// Connected reports whether src and dest lie in the same component of g.
func Connected(g *core.Graph, src, dest int, opts ...Option) (bool, error) {
	if g != nil && !g.HasVertex(dest) {
		return false, fmt.Errorf("%w: destination %d of %d", ErrVertexOutOfRange, dest, g.VertexCount())
	}
	res, err := DFS(g, src, opts...)
	if err != nil {
		return false, err
	}

	return res.Reachable(dest), nil
}

// traverse seeds the stack with (root, root) and drains it.
func (w *dfsWalker) traverse(root int) error {
	w.stack.Push(Edge{From: root, To: root})

	for !w.stack.IsEmpty() {
		// 1. Cancellation check
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		// 2. Pop and discard edges into visited sinks
		e, _ := w.stack.Pop()
		sink := e.To
		if w.res.Visited(sink) {
			continue
		}

		// 3. Depth: 0 for the seed, parent depth + 1 otherwise
		depth := 0
		if !(sink == e.From && e.From == root) {
			depth = w.res.Info[e.From].Distance + 1
		}

		// 4. Visit and run the hook
		w.res.Visit(sink, e.From, depth)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(sink, depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", sink, err)
			}
		}

		// 5. Depth limit: the sink is a leaf
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}

		// 6. Push every incident edge
		for n := range w.graph.Neighbors(sink) {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(sink, n) {
				continue
			}
			w.stack.Push(Edge{From: sink, To: n})
		}
	}

	return nil
}
