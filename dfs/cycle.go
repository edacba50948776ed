// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvcontainers/core"
)

// DetectCycles inspects the undirected graph g for cycles closed by back edges.
// Exactly one cycle is reported per back edge, so the result is a cycle basis
// of g, not every simple cycle (K4 yields 3 of its 7).
// Returns (true, cycles, nil) if any cycles are found; if none, returns
// (false, nil, nil). Each cycle is closed ([v0, ..., v0]) and canonical:
// the lexicographically smallest rotation of either direction. A self-loop
// is the cycle [v, v]. The list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L²)  (C = #cycles, L = longest cycle)
//   - Memory: O(V)             (recursion stack, state and path)
func DetectCycles(g *core.Graph) (bool, [][]int, error) {
	// 1) Nil graph is an error, not a cycle-free graph
	if g == nil {
		return false, nil, ErrGraphNil
	}

	// 2) Prepare visitation state
	n := g.VertexCount()
	d := &cycleDetector{
		graph: g,
		state: make([]int, n),
		path:  make([]int, 0, n),
		seen:  make(map[string]struct{}),
	}

	// 3) Launch DFS from each unvisited vertex
	for v := 0; v < n; v++ {
		if d.state[v] == White {
			d.visit(v, core.NoParent)
		}
	}

	// 4) Sort cycles lexicographically for a deterministic output order
	slices.SortFunc(d.cycles, slices.Compare[[]int])

	if len(d.cycles) == 0 {
		return false, nil, nil
	}

	return true, d.cycles, nil
}

// cycleDetector holds the three-color state for DetectCycles.
type cycleDetector struct {
	graph  *core.Graph
	state  []int               // White, Gray or Black per vertex
	path   []int               // current DFS path, for cycle reconstruction
	seen   map[string]struct{} // canonical cycle signatures
	cycles [][]int
}

// visit performs recursive DFS from v. The edge back to parent is the tree
// edge itself and is skipped; any other edge into a Gray vertex closes a cycle.
func (d *cycleDetector) visit(v, parent int) {
	// 1) Mark Gray and push onto the path
	d.state[v] = Gray
	d.path = append(d.path, v)

	// 2) Explore each neighbor
	for nbr := range d.graph.Neighbors(v) {
		if nbr == parent && nbr != v {
			continue
		}
		switch d.state[nbr] {
		case White:
			d.visit(nbr, v)
		case Gray:
			d.record(nbr)
		}
	}

	// 3) Backtrack
	d.path = d.path[:len(d.path)-1]
	d.state[v] = Black
}

// record extracts the cycle from start to the top of the path, closes it,
// and keeps it if its canonical form is new.
func (d *cycleDetector) record(start int) {
	idx := slices.Index(d.path, start)
	closed := canonical(d.path[idx:])

	sig := fmt.Sprint(closed)
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, closed)
}

// canonical returns the smallest rotation of base or of its reversal,
// closed by repeating its first vertex.
func canonical(base []int) []int {
	fwd := minimalRotation(base)
	rev := slices.Clone(base)
	slices.Reverse(rev)
	bwd := minimalRotation(rev)

	pick := fwd
	if slices.Compare(bwd, fwd) < 0 {
		pick = bwd
	}

	return append(pick, pick[0])
}

// minimalRotation returns a fresh copy of the lexicographically smallest rotation of s.
func minimalRotation(s []int) []int {
	best := slices.Clone(s)
	rot := make([]int, len(s))
	for k := 1; k < len(s); k++ {
		copy(rot, s[k:])
		copy(rot[len(s)-k:], s[:k])
		if slices.Compare(rot, best) < 0 {
			copy(best, rot)
		}
	}

	return best
}
