// Package bfs provides breadth-first search over a core.Graph.
//
// Three searches share one walker:
//
//   - Search(g, start, limit) returns vertex IDs in visitation order and
//     stops as soon as limit IDs have been emitted. limit bounds the NUMBER
//     OF VERTICES, not the depth; limit == 0 means no bound.
//   - ShortestPath(g, from, to) runs the same traversal and, the moment to is
//     discovered as a neighbor of the vertex being expanded, returns the
//     visitation order so far with to appended. The result is the traversal
//     history, not a predecessor-linked walk: it ends at to after the fewest
//     hops, but consecutive entries need not be adjacent. When to is never
//     discovered the full visitation order is returned without it.
//   - Path(g, from, to) tracks parent links and reconstructs the actual
//     minimum-hop walk from→…→to, or fails with ErrNoPath.
//
// Queue discipline
//
//	Every neighbor of an expanded vertex is enqueued, visited or not. A vertex
//	that was already visited is skipped when dequeued, so duplicate entries in
//	the queue are harmless and filtered there.
//
// Determinism
//
//	Neighbors are expanded in core insertion order, so results are
//	reproducible for a given construction sequence.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (the queue may hold one entry per adjacency)
//
// Usage
//
//	ids, err := bfs.Search(g, "you", 5)
//	hops, err := bfs.Path(g, "you", "them")
//	hist, err := bfs.ShortestPath(g, "you", "them",
//	    bfs.WithContext(ctx),
//	    bfs.WithLogger(logger),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if Search's start vertex does not exist.
//   - ErrVertexNotFound       if either ShortestPath/Path endpoint is missing.
//   - ErrOptionViolation      if limit is negative.
//   - ErrNoPath               if Path cannot reach the target.
//   - ErrNeighbors            if a queued vertex is missing from the graph.
//   - context errors and wrapped OnVisit errors.
package bfs
