// Package core provides the in-memory Graph and Vertex types that every other
// package in socialpath builds on.
//
// The Graph G = (V,E) is a plain adjacency structure:
//
//   - Storage is always directed: each Vertex owns a weighted adjacency set
//     keyed by neighbor ID (at most one entry per neighbor, first weight wins).
//   - Undirected semantics are simulated by inserting both directions; the
//     Graph's Kind (Undirected "G" / Directed "D") is a label fixed at
//     construction and consulted by ingestion and serialization only.
//   - Vertices are created on demand: AddEdge auto-creates missing endpoints.
//   - Nothing is ever removed. Vertices and edges only accumulate.
//
// Counters:
//
//	VertexCount()  number of distinct vertices (incremented once per new ID)
//	EdgeCount()    number of AddEdge calls, duplicates included
//
// The EdgeCount accounting counts insertion calls, not stored adjacencies, so
// AddEdge("A","B",1) twice yields EdgeCount()==2 while Edges() lists A→B once.
//
// Determinism:
//
//	Vertices(), All(), Edges() and Vertex.Neighbors() iterate in insertion
//	order, so traversal results are reproducible for a given build sequence.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph   // O(1)
//	AddVertex(id string) *Vertex           // O(1), idempotent
//	AddEdge(from, to string, weight int64) // O(1), auto-creates endpoints
//
//	// Query
//	Vertex(id string) (*Vertex, bool)      // O(1)
//	HasVertex(id string) bool              // O(1)
//	Vertices() []string                    // O(V)
//	All() iter.Seq[*Vertex]                // lazy, O(V) per pass
//	Edges() []Edge                         // O(V+E), weighted triples
//	EdgePairs() [][2]string                // O(V+E), unweighted pairs
//
//	// Vertex
//	AddNeighbor(other *Vertex, w int64)    // no-op when present or foreign
//	Neighbors() iter.Seq[string]           // lazy, insertion order
//	EdgeWeight(id string) (int64, error)   // ErrEdgeNotFound when absent
//
// Concurrency:
//
//	Graph is not safe for concurrent mutation. Build it from one goroutine,
//	then share it read-only, or guard it externally.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested adjacency does not exist.
package core
