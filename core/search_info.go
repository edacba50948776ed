// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
)

// Fill values for unvisited SearchInfo records. They share a value, so they
// must never be used to test reachability; use SearchInfo.Visited.
const (
	// NoParent is the Parent of a vertex that has not been visited.
	NoParent = -1
	// Infinite is the Distance of a vertex that has not been visited.
	Infinite = -1
)

// SearchInfo is the per-vertex record a search fills in.
type SearchInfo struct {
	Vertex   int
	Parent   int
	Distance int
	Visited  bool
}

// NewSearchInfo allocates one unvisited record per vertex of g.
func NewSearchInfo(g *Graph) []SearchInfo {
	info := make([]SearchInfo, g.VertexCount())
	for v := range info {
		info[v] = SearchInfo{Vertex: v, Parent: NoParent, Distance: Infinite}
	}

	return info
}

// SearchResult is the outcome of a single search from Source.
type SearchResult struct {
	// Source is the vertex the search started from.
	Source int

	// Info holds one record per vertex, indexed by vertex label.
	Info []SearchInfo

	// Order lists vertices in the order they were visited.
	Order []int
}

// NewSearchResult prepares an empty result for a search of g from src.
func NewSearchResult(g *Graph, src int) *SearchResult {
	return &SearchResult{
		Source: src,
		Info:   NewSearchInfo(g),
		Order:  make([]int, 0, g.VertexCount()),
	}
}

// Visit marks v visited with the given parent and distance and appends it to Order.
func (r *SearchResult) Visit(v, parent, distance int) {
	r.Info[v].Parent = parent
	r.Info[v].Distance = distance
	r.Info[v].Visited = true
	r.Order = append(r.Order, v)
}

// Visited reports whether v was reached. Out-of-range labels report false.
func (r *SearchResult) Visited(v int) bool {
	return v >= 0 && v < len(r.Info) && r.Info[v].Visited
}

// Reachable reports whether dest is connected to Source.
func (r *SearchResult) Reachable(dest int) bool { return r.Visited(dest) }

// DistanceTo returns the distance recorded for dest, or false if unreached.
func (r *SearchResult) DistanceTo(dest int) (int, bool) {
	if !r.Visited(dest) {
		return Infinite, false
	}

	return r.Info[dest].Distance, true
}

// ParentOf returns the parent recorded for v, or false if unreached.
// The source is its own parent.
func (r *SearchResult) ParentOf(v int) (int, bool) {
	if !r.Visited(v) {
		return NoParent, false
	}

	return r.Info[v].Parent, true
}

// PathTo walks parent links from dest back to Source and returns the path
// Source → dest. Returns ErrNoPath if dest was not reached.
func (r *SearchResult) PathTo(dest int) ([]int, error) {
	if !r.Visited(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}

	path := []int{dest}
	for cur := dest; cur != r.Source && len(path) <= len(r.Info); {
		cur = r.Info[cur].Parent
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
