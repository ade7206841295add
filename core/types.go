// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// DefaultWeight is the weight used for edges declared without one.
const DefaultWeight int64 = 1

// Kind labels a Graph as undirected or directed.
//
// Storage is directed in both cases; Kind only tells ingestion and
// serialization whether a logical edge stands for one or two adjacencies.
type Kind uint8

const (
	// Undirected graphs are written with the "G" token.
	Undirected Kind = iota
	// Directed graphs are written with the "D" token.
	Directed
)

// Token returns the single-letter text-format token for k.
func (k Kind) Token() string {
	if k == Directed {
		return "D"
	}

	return "G"
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Undirected:
		return "undirected"
	case Directed:
		return "directed"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps a text-format token ("G" or "D") to a Kind.
func ParseKind(token string) (Kind, bool) {
	switch token {
	case "G":
		return Undirected, true
	case "D":
		return Directed, true
	default:
		return Undirected, false
	}
}

// Edge is one stored directed adjacency From→To with its Weight.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithKind sets the Graph's Kind.
func WithKind(k Kind) GraphOption {
	return func(g *Graph) { g.kind = k }
}

// WithDirected is shorthand for WithKind(Directed).
func WithDirected() GraphOption {
	return WithKind(Directed)
}

// Graph owns a set of vertices and the directed adjacencies between them.
//
// vertices is the sole source of truth for membership; order records
// insertion so enumeration is deterministic. numVertices and numEdges are
// maintained alongside mutation and never recomputed.
type Graph struct {
	kind Kind

	vertices map[string]*Vertex // vertex ID → Vertex
	order    []string           // vertex IDs in insertion order

	numVertices int
	numEdges    int
}

// NewGraph creates an empty Graph. By default the Graph is Undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
