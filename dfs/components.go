// SPDX-License-Identifier: MIT

package dfs

import (
	"log/slog"

	"github.com/katalvlaran/lvcontainers/core"
	"github.com/katalvlaran/lvcontainers/internal/telemetry"
)

// Components partitions g into connected components by restarting the
// edge-driven DFS from every vertex not yet visited, in ascending order.
// Each component lists its vertices in discovery order; components are
// ordered by their smallest vertex. Isolated vertices form singleton
// components. A graph with no vertices has no components.
//
// Only WithContext, WithLogger and WithFilterNeighbor are meaningful here;
// a MaxDepth limit is honored per tree.
func Components(g *core.Graph, opts ...Option) (comps [][]int, err error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	if g.VertexCount() == 0 {
		return nil, nil
	}

	ctx, span := telemetry.StartSearch(o.Ctx, "components", 0, g.VertexCount())
	o.OnVisit = nil
	w := newWalker(ctx, g, 0, o)
	defer func() {
		w.stack.Destroy()
		span.End(len(w.res.Order), err)
		o.Logger.Debug("components finished",
			slog.Int("vertices", g.VertexCount()),
			slog.Int("components", len(comps)))
	}()

	for v := 0; v < g.VertexCount(); v++ {
		if w.res.Visited(v) {
			continue
		}
		start := len(w.res.Order)
		if err = w.traverse(v); err != nil {
			return comps, err
		}
		comps = append(comps, append([]int(nil), w.res.Order[start:]...))
	}

	return comps, nil
}
