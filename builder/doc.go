// SPDX-License-Identifier: MIT

// Package builder assembles deterministic core.Graph fixtures from small
// topology constructors: paths, cycles, stars, wheels, complete and complete
// bipartite graphs, grids and seeded random sparse graphs.
//
// Each Constructor reserves a contiguous block of vertex indices and emits
// edges inside that block, so composing several constructors in BuildGraph
// yields their disjoint union. Vertex numbering follows call order:
//
//	g, err := builder.BuildGraph(nil, nil,
//	    builder.Path(3),   // vertices 0..2
//	    builder.Cycle(4),  // vertices 3..6
//	)
//
// Determinism: the same constructors, options and seed always produce the
// same graph with the same adjacency order.
package builder
