// Package socialpath models a directed or undirected graph built from
// vertex/edge lists and answers two breadth-first queries against it.
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    - Graph, Vertex and Edge: incremental construction and read API
//	bfs/     - count-bounded Search, ShortestPath history, reconstructed Path
//	textfmt/ - ingestion and serialization of the G/D edge-list format
//
// The cmd/socialpath binary wires them into a CLI.
//
// Quick example:
//
//	G
//	A,B,C
//	(A,B)
//	(B,C,5)
//
// describes an undirected path A–B–C. bfs.ShortestPath(g, "A", "C") yields
// [A B C]; bfs.Search(g, "A", 2) yields [A B].
package socialpath
