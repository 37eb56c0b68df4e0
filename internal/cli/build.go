package cli

import (
	"context"
	"fmt"
	stdio "io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cattree/pkg/io"
	"github.com/matzehuels/cattree/pkg/observability"
	"github.com/matzehuels/cattree/pkg/observability/prom"
	"github.com/matzehuels/cattree/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	source      sourceFlags
	format      string // output format override
	output      string // output file path (stdout if empty)
	homeOnly    bool   // keep only home page categories
	metricsFile string // Prometheus textfile to write after the run
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the ordered category tree and write it as JSON or YAML",
		Long: `Build queries the configured category source, orders the tree and
flags the home page categories.

A failing source is not fatal: the error is logged and an empty tree is
written, the same as a storefront would render.

Examples:
  cattree build -i categories.json
  cattree build --url https://cms.example.com/api/categories -H "Authorization: Bearer $TOKEN"
  cattree build --source redis --format yaml -o tree.yaml
  cattree build --home-only --metrics-file /var/lib/node_exporter/cattree.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json or yaml (default from config, or the -o extension)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.homeOnly, "home-only", false, "write only the categories shown on the home page")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics for this run to a textfile")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, stdout stdio.Writer, opts buildOpts) error {
	cfg, cfgPath, err := opts.source.load()
	if err != nil {
		return err
	}
	if cfgPath != "" {
		c.Logger.Debug("loaded config", "path", cfgPath)
	}

	runOpts := pipeline.OptionsFromConfig(cfg)
	runOpts.HomeOnly = opts.homeOnly
	switch {
	case opts.format != "":
		if runOpts.Format, err = io.ParseFormat(opts.format); err != nil {
			return fmt.Errorf("--format %q: %w", opts.format, err)
		}
	case opts.output != "":
		runOpts.Format = io.FormatFromPath(opts.output)
	}

	var reg *prometheus.Registry
	if opts.metricsFile != "" {
		reg = prometheus.NewRegistry()
		hooks, err := prom.New(reg)
		if err != nil {
			return err
		}
		hooks.Register()
		defer observability.Reset()
	}

	prog := newProgress(c.Logger)
	result, err := c.newRunner().Execute(ctx, runOpts)
	if err != nil {
		return err
	}

	if err := writeResult(stdout, result, runOpts.Format, opts.output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d categories", len(result.Nodes)))

	if result.Stats.TopLevel == 0 {
		printWarning("Source returned no categories")
	} else {
		printSuccess("Built category tree")
	}
	printStats(result.Stats)
	if opts.output != "" {
		printFile(opts.output)
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		printDetail("Metrics: %s", opts.metricsFile)
	}
	return nil
}

func writeResult(stdout stdio.Writer, result *pipeline.Result, format io.Format, output string) error {
	if output == "" {
		return pipeline.Export(stdout, result, format)
	}
	return io.ExportTree(result.Nodes, output, format)
}
