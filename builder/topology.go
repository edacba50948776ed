// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodBipartite    = "CompleteBipartite"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathNodes  = 1
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
)

func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}

// Path builds P_n: edges i–(i+1) for i in [0, n-1). n ≥ 1.
func Path(n int) Constructor {
	return func(p *Plan, _ builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		base := p.Reserve(n)
		for i := 1; i < n; i++ {
			p.Edge(base+i-1, base+i)
		}

		return nil
	}
}

// Cycle builds C_n: a path closed by (n-1)–0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(p *Plan, _ builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		base := p.Reserve(n)
		for i := 0; i < n; i++ {
			p.Edge(base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Star builds a center (the block's first vertex) with n-1 leaves. n ≥ 2.
func Star(n int) Constructor {
	return func(p *Plan, _ builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		base := p.Reserve(n)
		for i := 1; i < n; i++ {
			p.Edge(base, base+i)
		}

		return nil
	}
}

// Wheel builds W_n: a cycle on the last n-1 vertices plus spokes from the
// first. n ≥ 4.
func Wheel(n int) Constructor {
	return func(p *Plan, _ builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		base := p.Reserve(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			p.Edge(base+1+i, base+1+(i+1)%rim)
		}
		for i := 1; i < n; i++ {
			p.Edge(base, base+i)
		}

		return nil
	}
}

// Complete builds K_n. n ≥ 1.
func Complete(n int) Constructor {
	return func(p *Plan, _ builderConfig) error {
		if n < 1 {
			return tooFew(methodComplete, "n", n, 1)
		}
		base := p.Reserve(n)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				p.Edge(base+u, base+v)
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}: the first n1 vertices on the left,
// the next n2 on the right. n1, n2 ≥ 1.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(p *Plan, _ builderConfig) error {
		if n1 < 1 {
			return tooFew(methodBipartite, "n1", n1, 1)
		}
		if n2 < 1 {
			return tooFew(methodBipartite, "n2", n2, 1)
		}
		base := p.Reserve(n1 + n2)
		for u := 0; u < n1; u++ {
			for v := 0; v < n2; v++ {
				p.Edge(base+u, base+n1+v)
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid; cell (r,c) is vertex
// base + r*cols + c. rows, cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(p *Plan, _ builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ 1): %w",
				methodGrid, rows, cols, ErrTooFewVertices)
		}
		base := p.Reserve(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					p.Edge(id, id+1)
				}
				if r+1 < rows {
					p.Edge(id, id+cols)
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n, p) graph: every unordered pair
// u < v is joined with probability p. n ≥ 1, 0 ≤ p ≤ 1. A random source is
// required unless p is 0 or 1.
func RandomSparse(n int, prob float64) Constructor {
	return func(p *Plan, cfg builderConfig) error {
		if n < 1 {
			return tooFew(methodRandomSparse, "n", n, 1)
		}
		if prob < 0 || prob > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, prob, ErrInvalidProbability)
		}
		if cfg.rng == nil && prob > 0 && prob < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		base := p.Reserve(n)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if prob == 1 || (prob > 0 && cfg.rng.Float64() < prob) {
					p.Edge(base+u, base+v)
				}
			}
		}

		return nil
	}
}
