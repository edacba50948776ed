// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// undirected core.Graph whose edges all weigh 1.
//
// Overview:
//
//   - The frontier is a Min heap.Heap[int, int] keyed by tentative distance
//     and valued by vertex. It is seeded with every vertex: key 0 for the
//     source and Infinity for the rest.
//   - Each step extracts the minimum, finalises it, and offers distance+1 to
//     its unvisited neighbors through IndexByValue, At and a strictly-less
//     DecreaseKey. The parent is recorded when a key improves.
//   - A vertex whose key is still Infinity when extracted is unreachable;
//     the loop stops there.
//
// Since weights are uniform the distances match a breadth-first search; the
// package exists to exercise the heap's decrease-key path.
//
// Usage:
//
//	d, err := dijkstra.Distance(g, 2, 6)        // Unreachable (-1) if disconnected
//	res, err := dijkstra.Dijkstra(g, 2,
//	    dijkstra.WithContext(ctx),
//	    dijkstra.WithMaxDistance(3),
//	)
//	path, err := res.PathTo(6)
//
// Errors:
//
//   - ErrNilGraph        if g is nil.
//   - ErrVertexNotFound  if src or dest is not a vertex.
//   - ErrBadMaxDistance  if WithMaxDistance got a negative value.
//   - ctx.Err()          on cancellation.
package dijkstra
