// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvcontainers/capability"
	"github.com/katalvlaran/lvcontainers/core"
	"github.com/katalvlaran/lvcontainers/heap"
	"github.com/katalvlaran/lvcontainers/internal/telemetry"
)

// Dijkstra computes unit-weight shortest distances from src to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance).
//  3. g must contain src (ErrVertexNotFound).
//
// Every edge weighs 1, so on the same graph the distances equal those of a
// breadth-first search. The context error is returned on cancellation,
// together with the partial result.
//
// Complexity:
//
//   - Time:  O(V·(V + E)); each relaxation locates its vertex by linear scan.
//   - Space: O(V)
func Dijkstra(g *core.Graph, src int, opts ...Option) (res *Result, err error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate src exists in the graph
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("%w: source %d of %d", ErrVertexNotFound, src, g.VertexCount())
	}

	// 4) Prepare the runner: frontier heap, visited and parent slices.
	ctx, span := telemetry.StartSearch(cfg.Ctx, "dijkstra", src, g.VertexCount())
	r, err := newRunner(ctx, g, src, cfg)
	if err != nil {
		span.End(0, err)
		return nil, err
	}
	defer func() {
		r.pq.Destroy()
		span.End(len(r.res.Order), err)
		cfg.Logger.Debug("dijkstra finished",
			slog.Int("src", src),
			slog.Int("finalised", len(r.res.Order)),
			slog.Any("err", err))
	}()

	// 5) Seed the frontier and run the main loop.
	r.init()

	return &Result{SearchResult: r.res}, r.process()
}

// Distance returns the unit-weight shortest distance between src and dest,
// or Unreachable when they are not connected.
func Distance(g *core.Graph, src, dest int, opts ...Option) (int, error) {
	if g != nil && !g.HasVertex(dest) {
		return Unreachable, fmt.Errorf("%w: destination %d of %d", ErrVertexNotFound, dest, g.VertexCount())
	}
	res, err := Dijkstra(g, src, opts...)
	if err != nil {
		return Unreachable, err
	}

	return res.Distance(dest), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph          // The input graph; read-only within Dijkstra.
	ctx     context.Context      // Span-carrying context for cancellation.
	options Options              // Configuration options.
	src     int                  // Source vertex.
	pq      *heap.Heap[int, int] // Min-heap keyed by tentative distance, valued by vertex.
	visited []bool               // Tracks if a vertex's distance is finalised.
	parent  []int                // Predecessor recorded at relaxation time.
	res     *core.SearchResult   // Finalised vertices.
}

// newRunner allocates per-call state sized to g.
func newRunner(ctx context.Context, g *core.Graph, src int, cfg Options) (*runner, error) {
	n := g.VertexCount()
	pq, err := heap.New(n, heap.Min, capability.Ordered[int](), capability.Ordered[int](),
		heap.WithLogger(cfg.Logger))
	if err != nil {
		return nil, fmt.Errorf("dijkstra: frontier: %w", err)
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = core.NoParent
	}

	return &runner{
		g:       g,
		ctx:     ctx,
		options: cfg,
		src:     src,
		pq:      pq,
		visited: make([]bool, n),
		parent:  parent,
		res:     core.NewSearchResult(g, src),
	}, nil
}

// init inserts one frontier entry per vertex: key 0 for the source, Infinity otherwise.
func (r *runner) init() {
	for v := 0; v < r.g.VertexCount(); v++ {
		key := Infinity
		if v == r.src {
			key = 0
		}
		r.pq.Insert(key, v)
	}
	r.parent[r.src] = r.src
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// vertex with the minimum tentative distance, finalises it, and relaxes its
// unvisited neighbors.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all vertices extracted).
//   - The minimum key is Infinity: every remaining vertex is unreachable.
//   - The minimum key exceeds MaxDistance.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		// 1) Cancellation check (once per extraction)
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		// 2) Pop the smallest-distance entry.
		e, _ := r.pq.ExtractMinOrMax()
		u, d := e.Value, e.Key

		// 3) Infinite or over-limit keys finalise nothing; neither does anything after them.
		if d == Infinity || d > r.options.MaxDistance {
			r.options.Logger.Debug("dijkstra frontier exhausted",
				slog.Int("remaining", r.pq.Len()+1))
			break
		}

		// 4) Mark u as visited. Its shortest distance d is now final.
		r.visited[u] = true
		r.res.Visit(u, r.parent[u], d)

		// 5) Relax all edges out of u.
		r.relax(u, d)
	}

	return nil
}

// relax offers d+1 to every unvisited neighbor of u still in the frontier.
// A neighbor's key and parent change only on a strict improvement.
func (r *runner) relax(u, d int) {
	next := d + 1
	for v := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		i := r.pq.IndexByValue(v)
		if i == heap.NotFound {
			continue
		}
		cur, _ := r.pq.At(i)
		if next >= cur.Key {
			continue
		}
		r.pq.DecreaseKey(i, next)
		r.parent[v] = u
	}
}
