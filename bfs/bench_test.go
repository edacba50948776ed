// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvcontainers/bfs"
	"github.com/katalvlaran/lvcontainers/builder"
	"github.com/katalvlaran/lvcontainers/core"
)

func mustBuild(b *testing.B, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkBFS_Chain measures BFS on a linear chain graph of 10,001 vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	g := mustBuild(b, nil, builder.Path(10001))

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² nodes, 2*M*(M−1) edges).
func BenchmarkBFS_Grid(b *testing.B) {
	g := mustBuild(b, nil, builder.Grid(100, 100))

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	g := mustBuild(b, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(2000, 0.002))

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
