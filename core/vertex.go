// SPDX-License-Identifier: MIT
// File: vertex.go
// Role: Vertex identity and weighted adjacency.
//
// Determinism:
//   - Neighbors() and NeighborIDs() yield IDs in first-insertion order.
//
// Invariants:
//   - A neighbor ID appears at most once; the first recorded weight wins.
//   - Every neighbor belongs to the same Graph as the Vertex.

package core

import (
	"fmt"
	"iter"
	"strings"
)

// Vertex is a node with an immutable ID and a directed, weighted adjacency set.
//
// Neighbors are keyed by ID rather than by pointer, so two lookups for the
// same ID always hit the same entry.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	graph *Graph // owner; AddNeighbor only links vertices of the same Graph

	weights map[string]int64 // neighbor ID → edge weight
	order   []string         // neighbor IDs in insertion order
}

func newVertex(g *Graph, id string) *Vertex {
	return &Vertex{ID: id, graph: g, weights: make(map[string]int64)}
}

// AddNeighbor registers a directed adjacency from v to other with the given weight.
//
// Behavior highlights:
//   - If other is already a neighbor, the call is a silent no-op and the
//     existing weight is preserved.
//   - A nil other, or one owned by a different Graph, is ignored, so every
//     neighbor ID stays resolvable through the owning Graph.
//   - Graph.EdgeCount is not touched; use Graph.AddEdge for counted insertion.
//
// Complexity: O(1) amortized.
func (v *Vertex) AddNeighbor(other *Vertex, weight int64) {
	if other == nil || other.graph != v.graph {
		return
	}
	if _, ok := v.weights[other.ID]; ok {
		return
	}
	v.weights[other.ID] = weight
	v.order = append(v.order, other.ID)
}

// HasNeighbor reports whether v has an adjacency to id.
func (v *Vertex) HasNeighbor(id string) bool {
	_, ok := v.weights[id]
	return ok
}

// Neighbors returns a lazy sequence of neighbor IDs in insertion order.
// The sequence is restartable: each range over it starts from the beginning.
func (v *Vertex) Neighbors() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, id := range v.order {
			if !yield(id) {
				return
			}
		}
	}
}

// NeighborIDs returns a copy of the neighbor IDs in insertion order.
func (v *Vertex) NeighborIDs() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)

	return out
}

// Degree returns the number of distinct out-neighbors of v.
func (v *Vertex) Degree() int { return len(v.order) }

// EdgeWeight returns the weight of the adjacency v→id.
//
// Errors:
//   - ErrEdgeNotFound (wrapped with both IDs) if id is not a neighbor of v.
func (v *Vertex) EdgeWeight(id string) (int64, error) {
	w, ok := v.weights[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q -> %q", ErrEdgeNotFound, v.ID, id)
	}

	return w, nil
}

// String renders v as "<id> adjacent to [<neighbor ids>]".
func (v *Vertex) String() string {
	return fmt.Sprintf("%s adjacent to [%s]", v.ID, strings.Join(v.order, " "))
}
