package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/socialpath/core"
)

// reserved characters cannot appear in an ID that must survive a round-trip.
const reserved = ",()\r\n"

// Write serializes g in the format Read accepts.
//
// Behavior highlights:
//   - Vertices and edges are written in core insertion order.
//   - The weight field is omitted when it equals core.DefaultWeight.
//   - For Undirected graphs, an adjacency b→a is skipped when a→b was already
//     written with the same weight, since Read restores both directions from
//     one line. For symmetric adjacency (what Read builds from G input),
//     reading the output back yields the same Edges() set.
//
// Errors:
//   - ErrNoEdges if g has no stored adjacency.
//   - ErrUnencodableID if an ID is padded with whitespace or contains a
//     comma, parenthesis or line break. The empty ID is representable.
//   - Any error from w.
func Write(w io.Writer, g *core.Graph) error {
	edges := g.Edges()
	if len(edges) == 0 {
		return ErrNoEdges
	}
	ids := g.Vertices()
	for _, id := range ids {
		if strings.TrimSpace(id) != id || strings.ContainsAny(id, reserved) {
			return fmt.Errorf("%w: %q", ErrUnencodableID, id)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, g.Kind().Token())
	fmt.Fprintln(bw, strings.Join(ids, ","))

	written := make(map[[2]string]int64)
	for _, e := range edges {
		if g.Kind() == core.Undirected {
			if prev, ok := written[[2]string{e.To, e.From}]; ok && prev == e.Weight {
				continue
			}
			written[[2]string{e.From, e.To}] = e.Weight
		}
		if e.Weight == core.DefaultWeight {
			fmt.Fprintf(bw, "(%s,%s)\n", e.From, e.To)
		} else {
			fmt.Fprintf(bw, "(%s,%s,%d)\n", e.From, e.To, e.Weight)
		}
	}

	return bw.Flush()
}
