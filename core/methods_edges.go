// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion & enumeration.
//
// Determinism:
//   - Edges() and EdgePairs() walk vertices in insertion order, then each
//     vertex's neighbors in insertion order.
//
// Accounting:
//   - EdgeCount() counts AddEdge calls, not stored adjacencies.

package core

import "fmt"

// AddEdge registers a directed adjacency from→to with the given weight.
//
// Steps:
//  1. Ensure both endpoints via AddVertex (this may grow the vertex set).
//  2. Increment the edge counter unconditionally.
//  3. AddNeighbor on the source; a repeated pair keeps its first weight.
//
// AddEdge never mirrors: on an Undirected graph callers insert both
// directions themselves (textfmt.Read does this for "G" input).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) {
	src := g.AddVertex(from)
	dst := g.AddVertex(to)

	g.numEdges++
	src.AddNeighbor(dst, weight)
}

// HasEdge reports whether the directed adjacency from→to is stored.
func (g *Graph) HasEdge(from, to string) bool {
	v, ok := g.vertices[from]
	return ok && v.HasNeighbor(to)
}

// EdgeWeight returns the weight of from→to.
//
// Errors:
//   - ErrVertexNotFound (wrapped with the ID) if from is unknown.
//   - ErrEdgeNotFound if the adjacency is absent.
func (g *Graph) EdgeWeight(from, to string) (int64, error) {
	v, ok := g.vertices[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}

	return v.EdgeWeight(to)
}

// Edges returns every stored directed adjacency as a weighted triple.
// Undirected graphs list both directions as separate entries.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.numEdges)
	for _, id := range g.order {
		v := g.vertices[id]
		for _, to := range v.order {
			out = append(out, Edge{From: id, To: to, Weight: v.weights[to]})
		}
	}

	return out
}

// EdgePairs returns every stored directed adjacency as an unweighted pair.
// Complexity: O(V+E).
func (g *Graph) EdgePairs() [][2]string {
	out := make([][2]string, 0, g.numEdges)
	for _, id := range g.order {
		for _, to := range g.vertices[id].order {
			out = append(out, [2]string{id, to})
		}
	}

	return out
}

// EdgeCount returns the number of AddEdge calls made on the Graph.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.numEdges }
