// Package textfmt reads and writes the line-oriented graph description
// consumed by socialpath:
//
//	<G|D>
//	id1,id2,id3,...
//	(idA,idB)
//	(idA,idB,weight)
//	...
//
// Line 1 is the graph type: G (undirected) or D (directed).
// Line 2 lists vertex IDs separated by commas.
// Every further line is one edge, with surrounding parentheses and
// whitespace stripped before splitting on commas. Weight defaults to 1.
//
// For G input each edge line inserts both directions with the same weight;
// for D input it inserts exactly the one given.
//
// Errors
//
//   - ErrMalformedInput  fewer than 3 lines.
//   - ErrBadGraphType    line 1 is not G or D.
//   - ErrBadEdgeSpec     an edge line (blank ones included) does not have
//     2 or 3 fields.
//   - ErrBadWeight       the weight field is not an integer.
//   - ErrNoEdges         Write was given a graph the format cannot express
//     because it has no edge line to emit.
//
// Line-level failures are returned as *ParseError, which carries the line
// number and text and unwraps to one of the sentinels above. Any error
// aborts ingestion; no partially built graph is returned.
package textfmt
