// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and All() follow insertion order.

package core

import "iter"

// AddVertex inserts a vertex if missing and returns it (idempotent).
//
// Implementation:
//   - Stage 1: Look up id; if present, return the existing Vertex unchanged.
//   - Stage 2: Otherwise allocate a Vertex, register it, record its order,
//     and increment the vertex counter.
//
// Behavior highlights:
//   - Never fails. Any string, including "", is a valid identity.
//   - Repeated calls with the same id return the same *Vertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}

	v := newVertex(g, id)
	g.vertices[id] = v
	g.order = append(g.order, id)
	g.numVertices++

	return v
}

// Vertex returns the vertex with the given id, or (nil, false) if unknown.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// HasVertex reports whether the vertex ID exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// All returns a lazy sequence over every Vertex in insertion order.
// Each range over the sequence is a fresh pass.
func (g *Graph) All() iter.Seq[*Vertex] {
	return func(yield func(*Vertex) bool) {
		for _, id := range g.order {
			if !yield(g.vertices[id]) {
				return
			}
		}
	}
}

// VertexCount returns the number of distinct vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.numVertices }

// Kind returns the Graph's directed/undirected label.
func (g *Graph) Kind() Kind { return g.kind }

// Directed reports whether the Graph is labelled Directed.
func (g *Graph) Directed() bool { return g.kind == Directed }
