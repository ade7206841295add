package textfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for ingestion and serialization.
var (
	// ErrMalformedInput indicates the source has fewer than 3 lines.
	ErrMalformedInput = errors.New("textfmt: malformed input")

	// ErrBadGraphType indicates line 1 is neither "G" nor "D".
	ErrBadGraphType = errors.New("textfmt: bad graph type")

	// ErrBadEdgeSpec indicates an edge line with the wrong field count.
	ErrBadEdgeSpec = errors.New("textfmt: bad edge specification")

	// ErrBadWeight indicates a non-integer weight field.
	ErrBadWeight = errors.New("textfmt: bad edge weight")

	// ErrNoEdges indicates Write was given a graph without edges; the
	// format requires at least one edge line.
	ErrNoEdges = errors.New("textfmt: graph has no edges")

	// ErrUnencodableID indicates a vertex ID that Write cannot represent.
	ErrUnencodableID = errors.New("textfmt: vertex ID cannot be encoded")
)

// ParseError reports a failure on a specific input line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line, trimmed of its line terminator
	Err  error  // one of the package sentinels, possibly wrapping a cause
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
