// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvcontainers/capability"
	"github.com/katalvlaran/lvcontainers/list"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count was requested.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex label outside 0..VertexCount()-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLabelSpaceFull indicates every index of a Labeled graph is bound.
	ErrLabelSpaceFull = errors.New("core: no free vertex index for label")

	// ErrLabelNotFound indicates a Labeled query on an unbound label.
	ErrLabelNotFound = errors.New("core: label not found")

	// ErrNoPath indicates the destination was not reached by a search.
	ErrNoPath = errors.New("core: no path to vertex")
)

// LabelKind tells how vertex labels map to adjacency indices.
type LabelKind int

const (
	// LabelInt graphs use the labels 0..n-1 directly as indices.
	LabelInt LabelKind = iota
	// LabelGeneric graphs are addressed through Labeled[L].
	LabelGeneric
)

// String returns "int" or "generic".
func (k LabelKind) String() string {
	if k == LabelGeneric {
		return "generic"
	}

	return "int"
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLabelKind sets the label kind of the graph.
func WithLabelKind(k LabelKind) GraphOption {
	return func(g *Graph) { g.labelKind = k }
}

// WithLogger sets the logger receiving debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// Graph is an undirected graph stored as one neighbor list per vertex.
type Graph struct {
	labelKind LabelKind
	nedge     int

	// adjacency[v] holds the neighbor labels of v.
	adjacency []*list.List[int]

	log *slog.Logger
}

// NewGraph creates a graph with vertexCount vertices and no edges.
// Returns ErrBadVertexCount if vertexCount < 0.
// Complexity: O(vertexCount).
func NewGraph(vertexCount int, opts ...GraphOption) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}

	g := &Graph{
		labelKind: LabelInt,
		adjacency: make([]*list.List[int], vertexCount),
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	ops := capability.Ordered[int]()
	for v := range g.adjacency {
		l, err := list.New(ops)
		if err != nil {
			return nil, err
		}
		g.adjacency[v] = l
	}

	return g, nil
}
