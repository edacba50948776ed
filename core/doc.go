// SPDX-License-Identifier: MIT

// Package core provides the undirected adjacency-list Graph the traversal
// engines (bfs, dfs, dijkstra) run on, plus the per-search bookkeeping they
// share.
//
// The Graph G = (V,E) has a fixed vertex count chosen at construction:
//
//   - Vertices are dense integer labels 0..VertexCount()-1.
//   - Each vertex owns one neighbor list (list.List[int]).
//   - Edges are undirected: u appears in v's list iff v appears in u's list.
//   - Adding an edge that already exists is a no-op; EdgeCount counts each
//     unordered pair once.
//
// Label seam
//
//	A Graph is either LabelInt (the default, labels are the indices
//	themselves) or LabelGeneric. Generic labels are handled by Labeled[L],
//	which keeps a bijective label→index map: a label is bound to the next
//	free index on first use by AddEdge and never rebound. Once every index
//	is bound, new labels are rejected with ErrLabelSpaceFull.
//
// Core Methods:
//
//	NewGraph(n, opts...) (*Graph, error)   // O(n)
//	AddEdge(u, v int) error                // O(deg(u)+deg(v))
//	HasEdge(u, v int) bool                 // O(deg(u))
//	OutDegree(v int) (int, error)          // O(1)
//	Neighbors(v int) iter.Seq[int]         // O(deg(v)) per pass
//	VertexCount() int / EdgeCount() int    // O(1)
//	Destroy()                              // O(V+E)
//
// Search bookkeeping:
//
//	SearchInfo is one record per vertex {Vertex, Parent, Distance, Visited}.
//	Visited is the only reachability signal; Parent and Distance hold the
//	NoParent/Infinite fill values until a vertex is visited. SearchResult
//	wraps the slice with Reachable, DistanceTo and PathTo.
//
// Errors:
//
//	ErrBadVertexCount    – negative vertex count
//	ErrVertexOutOfRange  – label outside 0..VertexCount()-1
//	ErrLabelSpaceFull    – Labeled graph has no free index for a new label
//	ErrLabelNotFound     – Labeled query on a label never bound
//	ErrNoPath            – PathTo on an unvisited destination
//
// Graph is not safe for concurrent use. Callers must not mutate a graph while
// a search is running on it.
package core
