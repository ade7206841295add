package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialpath/bfs"
	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/textfmt"
)

func newSearchCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <graph-file> <start>",
		Short: "List up to --limit vertices in breadth-first order from start",
		Long:  "search emits vertices in visitation order and stops after --limit of them (a vertex count, not a depth). --limit 0 lists every reachable vertex.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Search.Limit
			}
			ids, err := bfs.Search(g, args[1], limit, bfs.WithContext(cmd.Context()), bfs.WithLogger(a.logger))
			if err != nil {
				return err
			}
			return a.printIDs(cmd.OutOrStdout(), ids)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of vertices to emit (default from config)")

	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var reconstruct bool
	cmd := &cobra.Command{
		Use:   "path <graph-file> <from> <to>",
		Short: "Search breadth-first from one vertex to another",
		Long: `By default path prints the breadth-first visitation order up to the moment <to>
is discovered, followed by <to>. If <to> is unreachable the full visitation
order is printed without it. With --reconstruct it prints the actual
fewest-hop walk and fails when no walk exists.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			search := bfs.ShortestPath
			if reconstruct {
				search = bfs.Path
			}
			ids, err := search(g, args[1], args[2], bfs.WithContext(cmd.Context()), bfs.WithLogger(a.logger))
			if err != nil {
				return err
			}
			return a.printIDs(cmd.OutOrStdout(), ids)
		},
	}
	cmd.Flags().BoolVar(&reconstruct, "reconstruct", false, "print the predecessor-linked walk instead of the visitation history")

	return cmd
}

func newVerticesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vertices <graph-file>",
		Short: "List vertex IDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			return a.printIDs(cmd.OutOrStdout(), g.Vertices())
		},
	}
}

func newEdgesCmd(a *app) *cobra.Command {
	var weighted bool
	cmd := &cobra.Command{
		Use:   "edges <graph-file>",
		Short: "List stored directed edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			return a.printEdges(cmd.OutOrStdout(), g, weighted)
		},
	}
	cmd.Flags().BoolVarP(&weighted, "weighted", "w", false, "include edge weights")

	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <graph-file>",
		Short: "Re-emit the graph as normalized text or Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			switch format {
			case "text":
				return textfmt.Write(cmd.OutOrStdout(), g)
			case "dot":
				return writeDOT(cmd.OutOrStdout(), g)
			default:
				return fmt.Errorf("unknown export format %q (want text or dot)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "export format (text, dot)")

	return cmd
}

func (a *app) printIDs(w io.Writer, ids []string) error {
	if a.cfg.Output.Format == "json" {
		return json.NewEncoder(w).Encode(ids)
	}
	_, err := fmt.Fprintln(w, strings.Join(ids, " "))
	return err
}

type edgeJSON struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight *int64 `json:"weight,omitempty"`
}

func (a *app) printEdges(w io.Writer, g *core.Graph, weighted bool) error {
	edges := g.Edges()
	if a.cfg.Output.Format == "json" {
		out := make([]edgeJSON, 0, len(edges))
		for _, e := range edges {
			item := edgeJSON{From: e.From, To: e.To}
			if weighted {
				weight := e.Weight
				item.Weight = &weight
			}
			out = append(out, item)
		}
		return json.NewEncoder(w).Encode(out)
	}

	for _, e := range edges {
		var err error
		if weighted {
			_, err = fmt.Fprintf(w, "%s %s %d\n", e.From, e.To, e.Weight)
		} else {
			_, err = fmt.Fprintf(w, "%s %s\n", e.From, e.To)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// writeDOT renders every stored adjacency as a directed DOT edge.
// Weights other than core.DefaultWeight become edge labels.
func writeDOT(w io.Writer, g *core.Graph) error {
	var b strings.Builder
	b.WriteString("digraph socialpath {\n")
	for _, id := range g.Vertices() {
		fmt.Fprintf(&b, "  %q;\n", id)
	}
	for _, e := range g.Edges() {
		if e.Weight == core.DefaultWeight {
			fmt.Fprintf(&b, "  %q -> %q;\n", e.From, e.To)
		} else {
			fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", e.From, e.To, fmt.Sprint(e.Weight))
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
