package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/socialpath/bfs"
	"github.com/katalvlaran/socialpath/core"
)

// BenchmarkSearch_Chain measures an unbounded Search on a linear chain.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph(core.WithDirected())
	for i := 0; i < N; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, "v0", 0)
	}
}

// BenchmarkPath_BinaryTree reconstructs a root-to-leaf walk on a complete binary tree.
func BenchmarkPath_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1
	g := core.NewGraph()
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := fmt.Sprintf("%d", i)
		for _, c := range []int{2 * i, 2*i + 1} {
			g.AddEdge(p, fmt.Sprintf("%d", c), 1)
			g.AddEdge(fmt.Sprintf("%d", c), p, 1)
		}
	}
	leaf := fmt.Sprintf("%d", nodeCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Path(g, "1", leaf)
	}
}
