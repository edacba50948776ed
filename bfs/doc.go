// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source.
//   - Returns a *core.SearchResult: one SearchInfo per vertex (parent,
//     distance, visited flag) plus the discovery Order.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a vertex is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are taken in adjacency-list order (most recently added edge
//	first), so the visit sequence is reproducible for a given build order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (queue plus the per-call SearchInfo slice)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
//	ok, err := bfs.Connected(g, 2, 6)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if src or dest is not a vertex.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ctx.Err()            on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
