// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import "github.com/katalvlaran/socialpath/core"

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexZ = "Z"
)

// buildTriangle returns an undirected-labelled graph with both directions
// of A–B, B–C and C–A inserted, mirroring what ingestion does for "G".
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	for _, e := range [][2]string{{VertexA, VertexB}, {VertexB, VertexC}, {VertexC, VertexA}} {
		g.AddEdge(e[0], e[1], core.DefaultWeight)
		g.AddEdge(e[1], e[0], core.DefaultWeight)
	}

	return g
}
