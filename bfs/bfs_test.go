// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/lvcontainers/bfs"
	"github.com/katalvlaran/lvcontainers/core"
)

// mustGraph builds an n-vertex graph from an edge list or fails the test.
func mustGraph(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatalf("NewGraph(%d): %v", n, err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustGraph(t, 3)
	// source out of range
	for _, src := range []int{-1, 3} {
		if _, err := bfs.BFS(g, src); !errors.Is(err, bfs.ErrVertexOutOfRange) {
			t.Errorf("src %d: want ErrVertexOutOfRange, got %v", src, err)
		}
	}
	// destination out of range
	if _, err := bfs.Connected(g, 0, 7); !errors.Is(err, bfs.ErrVertexOutOfRange) {
		t.Errorf("dest 7: want ErrVertexOutOfRange, got %v", err)
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	res, err := bfs.BFS(mustGraph(t, 1), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d, ok := res.DistanceTo(0); !ok || d != 0 {
		t.Errorf("DistanceTo(0) = %d,%v; want 0,true", d, ok)
	}
	if p, _ := res.ParentOf(0); p != 0 {
		t.Errorf("source parent = %d; want itself", p)
	}
}

// TestScenario runs the reference 20-vertex graph.
func TestScenario(t *testing.T) {
	g := mustGraph(t, 20,
		[2]int{0, 3}, [2]int{0, 5}, [2]int{0, 8}, [2]int{0, 8},
		[2]int{2, 3}, [2]int{2, 6}, [2]int{2, 5}, [2]int{7, 1})

	tests := []struct {
		src, dest int
		want      bool
	}{
		{2, 6, true},
		{2, 7, false},
		{2, 8, true},
		{7, 1, true},
		{4, 4, true},
		{4, 0, false},
	}
	for _, tc := range tests {
		got, err := bfs.Connected(g, tc.src, tc.dest)
		if err != nil {
			t.Fatalf("Connected(%d,%d): %v", tc.src, tc.dest, err)
		}
		if got != tc.want {
			t.Errorf("Connected(%d,%d) = %v; want %v", tc.src, tc.dest, got, tc.want)
		}
	}

	res, _ := bfs.BFS(g, 2)
	// 2 → 5 → 0 → 8
	if d, _ := res.DistanceTo(8); d != 3 {
		t.Errorf("DistanceTo(8) = %d; want 3", d)
	}
	if _, ok := res.DistanceTo(7); ok {
		t.Errorf("7 must be unreachable from 2")
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 0–1–2–3–0 undirected cycle
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Must start at 0
	if res.Order[0] != 0 {
		t.Errorf("first vertex = %d; want 0", res.Order[0])
	}
	// Next two must be 1 and 3 in any order
	layer1 := map[int]bool{res.Order[1]: true, res.Order[2]: true}
	if !layer1[1] || !layer1[3] {
		t.Errorf("depth-1 layer = %v; want {1,3}", res.Order[1:3])
	}
	// Finally 2
	if res.Order[3] != 2 {
		t.Errorf("last vertex = %d; want 2", res.Order[3])
	}

	for v, want := range []int{0, 1, 2, 1} {
		if got, _ := res.DistanceTo(v); got != want {
			t.Errorf("DistanceTo(%d) = %d; want %d", v, got, want)
		}
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the source.
func TestBFS_Disconnected(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{2, 3})

	res0, _ := bfs.BFS(g, 0)
	if !reflect.DeepEqual(res0.Order, []int{0, 1}) {
		t.Errorf("From 0: got %v; want [0 1]", res0.Order)
	}
	res2, _ := bfs.BFS(g, 2)
	if !reflect.DeepEqual(res2.Order, []int{2, 3}) {
		t.Errorf("From 2: got %v; want [2 3]", res2.Order)
	}
	if res2.Info[0].Visited || res2.Info[0].Parent != core.NoParent {
		t.Errorf("vertex 0 must stay unvisited: %+v", res2.Info[0])
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	// depth = 1 should only visit 0,1
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	// depth = 0 => explicit no limit => visits all
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	// depth > graph size => same full traversal
	if res, _ := bfs.BFS(g, 0, bfs.WithMaxDepth(10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	// filter out 1→2
	res, _ := bfs.BFS(g, 0,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 1 && nbr == 2)
		}),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoopAndDuplicate ensures loops and repeated edges do not enqueue twice.
func TestBFS_SelfLoopAndDuplicate(t *testing.T) {
	g := mustGraph(t, 2, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0})
	res, _ := bfs.BFS(g, 0)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Duplicate: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})

	var enq, deq, vis []string
	entry := func(v, d int) string { return strconv.Itoa(v) + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(
		g, 0,
		bfs.WithOnEnqueue(func(v, d int) { enq = append(enq, entry(v, d)) }),
		bfs.WithOnDequeue(func(v, d int) { deq = append(deq, entry(v, d)) }),
		bfs.WithOnVisit(func(v, d int) error { vis = append(vis, entry(v, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"0@0", "1@1", "2@2"}
	for name, got := range map[string][]string{"OnEnqueue": enq, "OnDequeue": deq, "OnVisit": vis} {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s = %v; want %v", name, got, want)
		}
	}
}

// TestBFS_OnVisitError stops the search and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop here")

	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) || !strings.Contains(err.Error(), "at 1") {
		t.Errorf("want wrapped stop error at 1, got %v", err)
	}
}

// TestBFS_PathTo covers both trivial (src→src) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := mustGraph(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	res, _ := bfs.BFS(g, 0)
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo src: got %v; want [0]", path)
	}
	if path, _ := res.PathTo(3); !reflect.DeepEqual(path, []int{0, 1, 2, 3}) {
		t.Errorf("PathTo 3: got %v; want [0 1 2 3]", path)
	}
	if _, err := res.PathTo(4); !errors.Is(err, core.ErrNoPath) {
		t.Errorf("PathTo unreachable: want ErrNoPath, got %v", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := mustGraph(t, 101)
	// build a longer chain
	for i := 0; i < 100; i++ {
		_ = g.AddEdge(i, i+1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentReaders ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentReaders(t *testing.T) {
	g := mustGraph(t, 2, [2]int{0, 1})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, 0); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
