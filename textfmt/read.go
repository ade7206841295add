package textfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/socialpath/core"
)

// maxLineSize bounds a single input line; the vertex line of a large graph
// can easily exceed bufio's default token size.
const maxLineSize = 16 << 20

// edgeCutset is stripped from both ends of an edge line before splitting.
const edgeCutset = "() \t\r"

// ReadFile opens path and ingests it with Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Read builds a Graph from the text format described in the package docs.
//
// Implementation:
//   - Stage 1: Read every line; fewer than 3 ⇒ ErrMalformedInput.
//   - Stage 2: Parse the type token into a core.Kind.
//   - Stage 3: AddVertex for each comma-separated ID on line 2 (duplicates collapse).
//   - Stage 4: Parse every remaining line as an edge and insert one (D) or
//     two (G) directed adjacencies.
//
// Behavior highlights:
//   - Vertex-line and edge IDs follow one rule: trimmed of surrounding
//     whitespace, kept even when empty ("A,,B" declares "A", "" and "B").
//   - A blank edge line has one field and fails with ErrBadEdgeSpec.
//   - Edge lines may reference vertices missing from line 2; AddEdge creates them.
func Read(r io.Reader) (*core.Graph, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: expected at least 3 lines, got %d", ErrMalformedInput, len(lines))
	}

	token := strings.TrimSpace(lines[0])
	kind, ok := core.ParseKind(token)
	if !ok {
		return nil, &ParseError{
			Line: 1,
			Text: lines[0],
			Err:  fmt.Errorf("%w: expected G or D, got %q", ErrBadGraphType, token),
		}
	}
	g := core.NewGraph(core.WithKind(kind))

	for _, id := range strings.Split(lines[1], ",") {
		g.AddVertex(strings.TrimSpace(id))
	}

	for i, line := range lines[2:] {
		from, to, weight, err := parseEdge(line)
		if err != nil {
			return nil, &ParseError{Line: i + 3, Text: line, Err: err}
		}
		g.AddEdge(from, to, weight)
		if kind == core.Undirected {
			g.AddEdge(to, from, weight)
		}
	}

	return g, nil
}

// parseEdge splits "(from,to)" or "(from,to,weight)".
func parseEdge(line string) (from, to string, weight int64, err error) {
	fields := strings.Split(strings.Trim(line, edgeCutset), ",")
	if len(fields) != 2 && len(fields) != 3 {
		return "", "", 0, fmt.Errorf("%w: expected 2 or 3 fields, got %d", ErrBadEdgeSpec, len(fields))
	}
	from, to = strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])

	weight = core.DefaultWeight
	if len(fields) == 3 {
		weight, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
		if err != nil {
			return "", "", 0, fmt.Errorf("%w: %w", ErrBadWeight, err)
		}
	}

	return from, to, weight, nil
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textfmt: read: %w", err)
	}

	return lines, nil
}
