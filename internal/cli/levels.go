package cli

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg/traverse"
	"github.com/crkarthik11/healthcare/pkg/observability"
)

type levelsOpts struct {
	roots  []string
	lookup string
}

// levelsCommand creates the levels command, which prints the breadth-first
// level of every node reachable from the roots.
func (c *CLI) levelsCommand() *cobra.Command {
	var opts levelsOpts

	cmd := &cobra.Command{
		Use:   "levels GRAPH",
		Short: "Assign breadth-first levels from root nodes",
		Long: `Levels prints every node reachable from the roots along edge direction with
its distance in hops from the nearest root. Roots are level 0; unreachable
nodes are not listed.`,
		Example: `  kgraph levels saved/graph.json.zst --root DB00945
  kgraph levels saved/graph.json.zst --root 22298006,57809008 --lookup saved/concepts.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLevels(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.roots, "root", nil, "root node id (repeatable or comma-separated)")
	cmd.Flags().StringVar(&opts.lookup, "lookup", "", "concept lookup for labels")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}

func (c *CLI) runLevels(ctx context.Context, w io.Writer, graphPath string, opts levelsOpts) error {
	for _, r := range opts.roots {
		if err := errors.ValidateNodeID(r); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "--root")
		}
	}
	g, err := c.loadGraph(graphPath)
	if err != nil {
		return err
	}
	lookup, err := c.loadLookup(opts.lookup)
	if err != nil {
		return err
	}
	for _, r := range opts.roots {
		if !g.HasNode(r) {
			printWarning("root %s is not in the graph", r)
		}
	}

	start := time.Now()
	levels := traverse.Levels(g, opts.roots)
	observability.Analysis().OnLevelsComplete(ctx, len(opts.roots), len(levels), time.Since(start))

	ids := slices.SortedFunc(maps.Keys(levels), func(a, b string) int {
		return cmp.Or(cmp.Compare(levels[a], levels[b]), cmp.Compare(a, b))
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, id := range ids {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", levels[id], id, lookup.NodeLabel(g, id))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	c.Logger.Infof("%d nodes reached, max level %d", len(levels), traverse.MaxLevel(levels))
	return nil
}
