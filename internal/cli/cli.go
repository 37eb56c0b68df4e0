// Package cli implements the cattree command-line interface.
//
// Commands:
//   - build: query a category source and write the ordered tree as JSON or YAML
//   - inspect: print the ordered tree as an indented outline
//   - config: show where the config file lives and what it resolves to
//   - version: print build information
//
// All commands support --verbose (-v) for debug-level logging. Status lines
// go to stderr so that build output can be piped.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cattree/pkg/buildinfo"
	"github.com/matzehuels/cattree/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "cattree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "cattree builds ordered category trees for storefronts",
		Long: `cattree turns the category list of a content source into an ordered tree.

Each category gets an order taken from its title ("3#" sorts third and is
pinned to the home page), children are sorted recursively, and top-level
categories are flagged for the home page.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
