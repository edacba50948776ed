// SPDX-License-Identifier: MIT

// Package lvcontainers is a small toolkit of generic containers and
// unweighted graph searches.
//
// Every element-owning container is parameterized by a capability.Ops value
// that copies, compares and destroys elements, so stored data is always an
// independent copy that the container releases on removal or Destroy.
//
// Packages:
//
//	capability/  Ops[T] interface, Ordered[T] and Funcs[T] adapters
//	list/        singly linked list with owned elements, head insert
//	worklist/    FIFO Queue and LIFO Stack used by the searches
//	heap/        binary Min/Max heap with positional DecreaseKey
//	core/        fixed-size undirected Graph, Labeled[L] front-end, SearchResult
//	bfs/         breadth-first search with hooks, depth limit, cancellation
//	dfs/         depth-first search, connected components, cycle detection
//	dijkstra/    unit-weight shortest paths driven by a Min heap
//	builder/     deterministic topology constructors for tests and demos
//
// Quick example:
//
//	g, _ := core.NewGraph(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	res, _ := bfs.BFS(g, 0)
//	d, _ := res.DistanceTo(2) // 2
//
// Searches open an OpenTelemetry span and record duration and visit
// metrics through the global providers; without a configured provider these
// are no-ops.
package lvcontainers
