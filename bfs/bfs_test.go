package bfs_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialpath/bfs"
	"github.com/katalvlaran/socialpath/core"
)

// undirected inserts both directions of every pair, as "G" ingestion does.
func undirected(pairs ...[2]string) *core.Graph {
	g := core.NewGraph()
	for _, p := range pairs {
		g.AddEdge(p[0], p[1], core.DefaultWeight)
		g.AddEdge(p[1], p[0], core.DefaultWeight)
	}
	return g
}

// directed inserts exactly the given adjacencies.
func directed(pairs ...[2]string) *core.Graph {
	g := core.NewGraph(core.WithDirected())
	for _, p := range pairs {
		g.AddEdge(p[0], p[1], core.DefaultWeight)
	}
	return g
}

func assertOrder(t *testing.T, want, got []string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

// TestSearch_Errors verifies that invalid inputs are rejected before any search begins.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search(nil, "A", 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	g.AddVertex("A")

	_, err = bfs.Search(g, "missing", 3)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = bfs.Search(g, "A", -1)
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_CountBound shows that limit counts emitted vertices, not BFS layers.
func TestSearch_CountBound(t *testing.T) {
	// A has three depth-1 neighbors; limit 3 cuts the first layer short.
	g := directed([2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"A", "D"}, [2]string{"B", "E"})

	cases := []struct {
		limit int
		want  []string
	}{
		{1, []string{"A"}},
		{3, []string{"A", "B", "C"}},
		{4, []string{"A", "B", "C", "D"}},
		{5, []string{"A", "B", "C", "D", "E"}},
		{50, []string{"A", "B", "C", "D", "E"}},
		{0, []string{"A", "B", "C", "D", "E"}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("limit=%d", tc.limit), func(t *testing.T) {
			got, err := bfs.Search(g, "A", tc.limit)
			require.NoError(t, err)
			assertOrder(t, tc.want, got)
		})
	}
}

// TestSearch_LengthProperty checks len(result) == min(limit, reachable) and result[0] == start.
func TestSearch_LengthProperty(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"X", "Y"})
	const reachable = 4

	for limit := 1; limit <= 6; limit++ {
		got, err := bfs.Search(g, "A", limit)
		require.NoError(t, err)
		require.Len(t, got, min(limit, reachable))
		require.Equal(t, "A", got[0])
	}
}

// TestSearch_DuplicateEnqueueFiltered ensures a vertex reached twice is emitted once.
func TestSearch_DuplicateEnqueueFiltered(t *testing.T) {
	// diamond: D is discovered from both B and C
	g := directed([2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"}, [2]string{"D", "A"})

	got, err := bfs.Search(g, "A", 0)
	require.NoError(t, err)
	assertOrder(t, []string{"A", "B", "C", "D"}, got)
}

// TestSearch_Disconnected ensures only the start's component is explored.
func TestSearch_Disconnected(t *testing.T) {
	g := undirected([2]string{"X", "Y"}, [2]string{"P", "Q"})

	got, err := bfs.Search(g, "P", 10)
	require.NoError(t, err)
	assertOrder(t, []string{"P", "Q"}, got)
}

// TestShortestPath_Errors verifies lookup failures on either endpoint.
func TestShortestPath_Errors(t *testing.T) {
	g := undirected([2]string{"A", "B"})

	_, err := bfs.ShortestPath(g, "Z", "A")
	require.ErrorIs(t, err, bfs.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "Z")

	_, err = bfs.ShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, bfs.ErrVertexNotFound)

	_, err = bfs.ShortestPath(g, "Y", "Z")
	require.ErrorIs(t, err, bfs.ErrVertexNotFound)
	assert.Contains(t, err.Error(), `["Y" "Z"]`)

	_, err = bfs.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestShortestPath_History pins the traversal-history result shape.
func TestShortestPath_History(t *testing.T) {
	t.Run("direct neighbor", func(t *testing.T) {
		g := directed([2]string{"a", "b"})
		got, err := bfs.ShortestPath(g, "a", "b")
		require.NoError(t, err)
		assertOrder(t, []string{"a", "b"}, got)
	})

	t.Run("line", func(t *testing.T) {
		// G / A,B,C / (A,B) / (B,C,5)
		g := core.NewGraph()
		g.AddEdge("A", "B", 1)
		g.AddEdge("B", "A", 1)
		g.AddEdge("B", "C", 5)
		g.AddEdge("C", "B", 5)
		got, err := bfs.ShortestPath(g, "A", "C")
		require.NoError(t, err)
		assertOrder(t, []string{"A", "B", "C"}, got)
	})

	t.Run("history is not a walk", func(t *testing.T) {
		// B is a dead end visited before C discovers D.
		g := directed([2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"C", "D"})
		got, err := bfs.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		assertOrder(t, []string{"A", "B", "C", "D"}, got)
		assert.False(t, g.HasEdge("B", "C"))
	})

	t.Run("unreachable returns full visitation", func(t *testing.T) {
		g := directed([2]string{"A", "B"}, [2]string{"B", "C"})
		g.AddVertex("Z")
		got, err := bfs.ShortestPath(g, "A", "Z")
		require.NoError(t, err)
		assertOrder(t, []string{"A", "B", "C"}, got)
	})

	t.Run("same endpoints need a cycle back", func(t *testing.T) {
		g := undirected([2]string{"A", "B"})
		got, err := bfs.ShortestPath(g, "A", "A")
		require.NoError(t, err)
		assertOrder(t, []string{"A", "B", "A"}, got)
	})
}

// TestPath_Reconstructed verifies the predecessor-linked variant returns a valid walk.
func TestPath_Reconstructed(t *testing.T) {
	// Route1: A–B–C–D–K (4 hops), Route2: A–E–F–K (3 hops)
	g := undirected(
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "K"},
		[2]string{"A", "E"}, [2]string{"E", "F"}, [2]string{"F", "K"},
		[2]string{"C", "G"}, [2]string{"G", "H"},
	)

	got, err := bfs.Path(g, "A", "K")
	require.NoError(t, err)
	assertOrder(t, []string{"A", "E", "F", "K"}, got)
	for i := 0; i+1 < len(got); i++ {
		assert.True(t, g.HasEdge(got[i], got[i+1]), "%s->%s", got[i], got[i+1])
	}

	self, err := bfs.Path(g, "A", "A")
	require.NoError(t, err)
	assertOrder(t, []string{"A"}, self)
}

// TestPath_NoPath verifies ErrNoPath and endpoint validation.
func TestPath_NoPath(t *testing.T) {
	g := directed([2]string{"A", "B"})
	g.AddVertex("C")

	_, err := bfs.Path(g, "B", "A")
	require.ErrorIs(t, err, bfs.ErrNoPath)

	_, err = bfs.Path(g, "A", "C")
	require.ErrorIs(t, err, bfs.ErrNoPath)

	_, err = bfs.Path(g, "A", "nope")
	require.ErrorIs(t, err, bfs.ErrVertexNotFound)
}

// TestSearch_OnVisitAbort asserts that a hook error stops the traversal.
func TestSearch_OnVisitAbort(t *testing.T) {
	g := directed([2]string{"A", "B"}, [2]string{"B", "C"})
	stop := errors.New("stop here")

	var seen []string
	_, err := bfs.Search(g, "A", 0, bfs.WithOnVisit(func(id string) error {
		seen = append(seen, id)
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), `"B"`)
	assertOrder(t, []string{"A", "B"}, seen)
}

// TestSearch_Cancellation verifies that a cancelled context halts every search.
func TestSearch_Cancellation(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	for i := 0; i < 100; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Search(g, "v0", 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = bfs.ShortestPath(g, "v0", "v100", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = bfs.Path(g, "v0", "v100", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSearch_Logger checks that debug records reach a supplied logger.
func TestSearch_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := directed([2]string{"A", "B"})

	_, err := bfs.Search(g, "A", 1, bfs.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "bfs: visit")
	assert.Contains(t, buf.String(), "bfs: limit reached")
}

// TestSearch_ForeignNeighborNotFollowed ensures vertices of another graph never enter the walk.
func TestSearch_ForeignNeighborNotFollowed(t *testing.T) {
	g := core.NewGraph(core.WithDirected())
	stray := core.NewGraph()
	a := g.AddVertex("A")
	a.AddNeighbor(stray.AddVertex("ghost"), 1)
	g.AddEdge("A", "B", 1)

	var (
		got []string
		err error
	)
	require.NotPanics(t, func() { got, err = bfs.Search(g, "A", 0) })
	require.NoError(t, err)
	assertOrder(t, []string{"A", "B"}, got)

	require.NotPanics(t, func() { got, err = bfs.ShortestPath(g, "A", "B") })
	require.NoError(t, err)
	assertOrder(t, []string{"A", "B"}, got)

	require.NotPanics(t, func() { _, err = bfs.Path(g, "A", "B") })
	require.NoError(t, err)
}
