package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cattree/pkg/pipeline"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the ordered category tree as an outline",
		Long: `Inspect builds the tree like build does and prints it as an indented
outline: order, name and id per line, with a star on home page categories.

Examples:
  cattree inspect -i categories.json
  cattree inspect --source mongo --home-limit 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, w io.Writer, flags sourceFlags) error {
	cfg, _, err := flags.load()
	if err != nil {
		return err
	}

	result, err := c.newRunner().Execute(ctx, pipeline.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}

	if len(result.Nodes) == 0 {
		printWarning("Source returned no categories")
		return nil
	}
	fmt.Fprint(w, renderOutline(result.Nodes))
	printStats(result.Stats)
	return nil
}
