// Package pipeline runs the source → build → export flow for cattree.
//
// The CLI and any embedding program share this package so that source
// selection, logging and metrics behave the same everywhere.
//
// # Stages
//
//  1. Open: turn a [config.Source] into a [category.QueryFunc]
//  2. Build: run [category.Builder.FromQuery] with the configured policy
//  3. Export: write the nodes as JSON or YAML
//
// Building never fails: a broken source yields an empty tree and an error
// log line, exactly as [category.FromQuery] does. Only problems the caller
// can fix (bad options, unreachable configuration) are returned as errors.
//
// # Usage
//
//	cfg, _, err := config.Load("")
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.OptionsFromConfig(cfg))
//	if err != nil {
//	    return err
//	}
//	err = pipeline.Export(os.Stdout, result, io.FormatJSON)
package pipeline

import (
	"time"

	"github.com/matzehuels/cattree/pkg/category"
	"github.com/matzehuels/cattree/pkg/config"
	errs "github.com/matzehuels/cattree/pkg/errors"
	"github.com/matzehuels/cattree/pkg/io"
)

// Options contains all configuration for one run.
type Options struct {
	Source   config.Source
	Policy   category.Policy
	Format   io.Format
	HomeOnly bool // Keep only the top-level nodes flagged for the home page
}

// OptionsFromConfig maps a loaded configuration to run options.
func OptionsFromConfig(cfg config.Config) Options {
	format, err := io.ParseFormat(cfg.Output.Format)
	if err != nil {
		format = io.FormatJSON
	}
	return Options{
		Source: cfg.Source,
		Policy: cfg.Policy(),
		Format: format,
	}
}

// ValidateAndSetDefaults validates the options and fills unset fields.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = io.FormatJSON
	}
	if _, err := io.ParseFormat(string(o.Format)); err != nil {
		return errs.New(errs.ErrCodeInvalidInput, "unknown output format %q", o.Format)
	}
	cfg := config.Config{
		Source: o.Source,
		Home:   config.Home{Limit: o.Policy.HomeLimit, Default: o.Policy.DefaultHome},
		Output: config.Output{Format: string(o.Format)},
	}
	return cfg.Validate()
}

// Result is the outcome of one run.
type Result struct {
	RunID string
	Nodes []*category.Node
	Stats Stats
}

// Stats summarizes a run.
type Stats struct {
	Source   string
	TopLevel int
	Total    int
	Home     int
	Duration time.Duration
}
