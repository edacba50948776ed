// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// LabelKind returns the label kind chosen at construction.
func (g *Graph) LabelKind() LabelKind { return g.labelKind }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.nedge }

// HasVertex reports whether v is a valid vertex label.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adjacency) }

// AddEdge connects u and v. Each side is inserted only if absent, and the
// edge count grows only when v was new in u's list, so repeating an edge is
// a no-op. A self-loop (u == v) is stored once.
//
// Returns ErrVertexOutOfRange if either label is invalid.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) AddEdge(u, v int) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return fmt.Errorf("%w: edge (%d,%d) on %d vertices", ErrVertexOutOfRange, u, v, len(g.adjacency))
	}

	added := false
	if !g.adjacency[u].Contains(v) {
		g.adjacency[u].Insert(v)
		added = true
	}
	if !g.adjacency[v].Contains(u) {
		g.adjacency[v].Insert(u)
	}

	if !added {
		g.log.Debug("duplicate edge ignored", slog.Int("u", u), slog.Int("v", v))
		return nil
	}
	g.nedge++

	return nil
}

// HasEdge reports whether v is in u's neighbor list. Invalid labels report false.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) {
		return false
	}

	return g.adjacency[u].Contains(v)
}

// OutDegree returns the size of v's neighbor list.
// Returns ErrVertexOutOfRange for an invalid label.
func (g *Graph) OutDegree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return g.adjacency[v].Len(), nil
}

// Neighbors yields the neighbor labels of v, most recently added first.
// An invalid label yields nothing. The sequence is restartable; the graph
// must not be mutated while it is being ranged over.
func (g *Graph) Neighbors(v int) iter.Seq[int] {
	if !g.HasVertex(v) {
		return func(func(int) bool) {}
	}

	return g.adjacency[v].All()
}

// Destroy releases every neighbor list. The graph has no vertices afterwards.
func (g *Graph) Destroy() {
	for _, l := range g.adjacency {
		l.Destroy()
	}
	g.adjacency = nil
	g.nedge = 0
}

// String renders vertex/edge totals and every non-empty neighbor list with
// neighbors sorted ascending.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "vertices: %d, edges: %d", g.VertexCount(), g.EdgeCount())
	for v, l := range g.adjacency {
		if l.IsEmpty() {
			continue
		}
		nbrs := slices.Sorted(l.All())
		fmt.Fprintf(&b, "\n%d: %v", v, nbrs)
	}

	return b.String()
}
