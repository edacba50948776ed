// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcontainers/core"
)

// Plan collects the vertex blocks and edges emitted by constructors before
// the graph is allocated.
type Plan struct {
	n     int
	edges [][2]int
}

// Reserve claims k fresh vertex indices and returns the first.
func (p *Plan) Reserve(k int) int {
	base := p.n
	p.n += k

	return base
}

// Edge records the undirected edge (u, v).
func (p *Plan) Edge(u, v int) { p.edges = append(p.edges, [2]int{u, v}) }

// Constructor adds one topology to a Plan. Constructors validate their
// parameters first and return sentinel errors; they never panic.
type Constructor func(p *Plan, cfg builderConfig) error

// BuildGraph resolves bopts, runs every constructor in order, then creates a
// core.Graph sized to the reserved vertices (with gopts) and inserts the
// planned edges in emission order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidProbability, ...), wrapped.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	var p Plan
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&p, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(p.n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for _, e := range p.edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
