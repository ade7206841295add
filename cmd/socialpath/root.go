package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialpath/core"
	"github.com/katalvlaran/socialpath/internal/config"
	"github.com/katalvlaran/socialpath/internal/logging"
	"github.com/katalvlaran/socialpath/textfmt"
)

// app carries state resolved once in PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	output     string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "socialpath",
		Short:         "Query graphs described in the G/D edge-list format",
		Long:          `socialpath loads a graph from a text description (type line, vertex line, one "(from,to[,weight])" per edge) and answers breadth-first queries against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format (text, json)")

	root.AddCommand(
		newSearchCmd(a),
		newPathCmd(a),
		newVerticesCmd(a),
		newEdgesCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.output != "" {
		cfg.Output.Format = a.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// load ingests the graph file named on the command line.
func (a *app) load(path string) (*core.Graph, error) {
	g, err := textfmt.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("graph loaded",
		"path", path,
		"kind", g.Kind().String(),
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	return g, nil
}
