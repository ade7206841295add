package bfs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/socialpath/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	log     *slog.Logger
	queue   []string
	visited map[string]bool
	order   []string
}

// stopFunc is consulted for every adjacency cur→nbr before nbr is enqueued.
// Returning true ends the walk immediately.
type stopFunc func(cur, nbr string) bool

func newWalker(g *core.Graph, o Options) *walker {
	n := g.VertexCount()
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		log:     o.Logger,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
	}
}

// Search runs a breadth-first traversal of g from startID and returns the
// visited vertex IDs in visitation order.
//
// limit bounds the number of IDs returned, not the traversal depth: the walk
// stops as soon as len(result) == limit, whatever BFS layer the last vertex
// belongs to. limit == 0 disables the bound. If fewer than limit vertices are
// reachable, all of them are returned. The first element is always startID.
func Search(g *core.Graph, startID string, limit int, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, limit)
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	w := newWalker(g, buildOptions(opts))
	w.queue = append(w.queue, startID)
	full := func() bool { return limit > 0 && len(w.order) == limit }
	if _, err := w.loop(full, nil); err != nil {
		return nil, err
	}
	w.log.Debug("bfs: search done", "start", startID, "limit", limit, "visited", len(w.order))

	return w.order, nil
}

// ShortestPath searches breadth-first from fromID until toID is discovered
// as a neighbor of the vertex being expanded.
//
// The returned slice is the visitation order up to that point with toID
// appended. Because discovery happens in frontier order, toID is reached in
// the fewest hops, but the slice is the traversal history and consecutive
// entries are not necessarily adjacent. Use Path for a reconstructed walk.
// If toID is unreachable, the complete visitation order is returned without
// toID and no error is reported; callers can check the last element.
func ShortestPath(g *core.Graph, fromID, toID string, opts ...Option) ([]string, error) {
	if err := checkEndpoints(g, fromID, toID); err != nil {
		return nil, err
	}

	w := newWalker(g, buildOptions(opts))
	w.queue = append(w.queue, fromID)
	found, err := w.loop(nil, func(_, nbr string) bool { return nbr == toID })
	if err != nil {
		return nil, err
	}
	if found {
		w.log.Debug("bfs: target discovered", "from", fromID, "to", toID, "visited", len(w.order))
		return append(w.order, toID), nil
	}
	w.log.Debug("bfs: target not reached", "from", fromID, "to", toID, "visited", len(w.order))

	return w.order, nil
}

// Path returns a minimum-hop walk fromID→…→toID reconstructed from BFS
// parent links. Every consecutive pair in the result is a stored adjacency.
// Path(g, a, a) is [a]. ErrNoPath is returned when toID is unreachable.
func Path(g *core.Graph, fromID, toID string, opts ...Option) ([]string, error) {
	if err := checkEndpoints(g, fromID, toID); err != nil {
		return nil, err
	}
	if fromID == toID {
		return []string{fromID}, nil
	}

	w := newWalker(g, buildOptions(opts))
	w.queue = append(w.queue, fromID)
	parent := make(map[string]string, g.VertexCount())
	found, err := w.loop(nil, func(cur, nbr string) bool {
		if _, seen := parent[nbr]; !seen && nbr != fromID {
			parent[nbr] = cur
		}
		return nbr == toID
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, fromID, toID)
	}

	// build reversed path
	path := []string{toID}
	for cur := toID; cur != fromID; {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse to get from → to
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func checkEndpoints(g *core.Graph, fromID, toID string) error {
	if g == nil {
		return ErrGraphNil
	}
	var missing []string
	for _, id := range []string{fromID, toID} {
		if !g.HasVertex(id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %q (searching %q -> %q)", ErrVertexNotFound, missing, fromID, toID)
	}

	return nil
}

// loop processes the queue until it drains, full reports true after a
// visit, stop reports true for an adjacency, or the context is cancelled.
// The bool result reports whether the walk ended early.
func (w *walker) loop(full func() bool, stop stopFunc) (bool, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		id := w.dequeue()
		if w.visited[id] {
			continue
		}
		if err := w.visit(id); err != nil {
			return false, err
		}
		if full != nil && full() {
			w.log.Debug("bfs: limit reached", "last", id)
			return true, nil
		}
		stopped, err := w.enqueueNeighbors(id, stop)
		if err != nil {
			return false, err
		}
		if stopped {
			return true, nil
		}
	}

	return false, nil
}

// dequeue pops the first queued ID.
func (w *walker) dequeue() string {
	id := w.queue[0]
	w.queue = w.queue[1:]
	return id
}

// visit marks id visited, records it in the order and calls OnVisit.
func (w *walker) visit(id string) error {
	w.visited[id] = true
	w.order = append(w.order, id)
	w.log.Debug("bfs: visit", "id", id, "n", len(w.order))
	if err := w.opts.OnVisit(id); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", id, err)
	}

	return nil
}

// enqueueNeighbors appends every neighbor of id to the queue, visited or
// not, unless stop ends the walk first. Returns ErrNeighbors if id cannot
// be resolved in the graph.
func (w *walker) enqueueNeighbors(id string, stop stopFunc) (bool, error) {
	v, ok := w.graph.Vertex(id)
	if !ok {
		return false, fmt.Errorf("%w: vertex %q not in graph", ErrNeighbors, id)
	}
	for nbr := range v.Neighbors() {
		if stop != nil && stop(id, nbr) {
			return true, nil
		}
		w.queue = append(w.queue, nbr)
	}

	return false, nil
}
