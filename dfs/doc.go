// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search, connected components and cycle
// detection on an undirected core.Graph.
//
// What:
//
//   - DFS: iterative search driven by a LIFO stack of Edge{From, To}
//     work items, seeded with Edge{src, src}. Supports:
//   - a discovery hook (OnVisit) that may abort the search
//   - cancellation via context.Context
//   - depth limiting and neighbor filtering
//   - Connected: reachability between two vertices.
//   - Components: forest traversal restarting from every unvisited vertex.
//   - DetectCycles: back-edge cycle enumeration with three-color marking
//     (White, Gray, Black) and canonical rotation for deduplication.
//
// Complexity:
//
//   - DFS, Components:  Time O(V+E), Memory O(V+E) (the stack holds edges)
//   - DetectCycles:     Time O(V+E + C·L²), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrVertexOutOfRange  if src or dest is not a vertex.
//   - ErrOptionViolation   for a negative MaxDepth.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs
