package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg/traverse"
	"github.com/crkarthik11/healthcare/pkg/observability"
)

type chainsOpts struct {
	start  string
	lookup string
	strict bool
}

// chainsCommand creates the chains command, which prints the relation
// chains reachable from a start node in depth-first post-order.
func (c *CLI) chainsCommand() *cobra.Command {
	var opts chainsOpts

	cmd := &cobra.Command{
		Use:   "chains GRAPH",
		Short: "Enumerate relation chains from a start node",
		Long: `Chains walks out-edges depth-first from the start node, visiting each node
once, and prints one line per edge:

  Myocardial infarction -> Myocardial disease [Is a] Heart disease

Relation labels come from the lookup. An edge whose relationship type is
not in the lookup is reported and its subtree skipped; with --strict the
walk stops at the first such edge and the command fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runChains(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "start node id")
	cmd.Flags().StringVar(&opts.lookup, "lookup", "", "concept lookup for node and relation labels")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on the first unresolved relation")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("lookup")

	return cmd
}

func (c *CLI) runChains(ctx context.Context, w io.Writer, graphPath string, opts chainsOpts) error {
	g, err := c.loadGraph(graphPath)
	if err != nil {
		return err
	}
	if err := requireNode(g, opts.start, "start"); err != nil {
		return err
	}
	lookup, err := c.loadLookup(opts.lookup)
	if err != nil {
		return err
	}

	var chainOpts []traverse.Option
	if opts.strict {
		chainOpts = append(chainOpts, traverse.WithStrict())
	}

	start := time.Now()
	chains, err := traverse.Chains(g, opts.start, lookup, chainOpts...)
	unresolved := unresolvedErrors(err)
	observability.Analysis().OnChainsComplete(ctx, len(chains), len(unresolved), time.Since(start))

	if perr := traverse.PrintChains(w, chains); perr != nil {
		return perr
	}
	for _, u := range unresolved {
		printWarning("%s", errors.UserMessage(u))
	}
	if opts.strict && err != nil {
		return err
	}
	c.Logger.Infof("%d chains, %d unresolved relations", len(chains), len(unresolved))
	return nil
}

// unresolvedErrors flattens the joined error returned by traverse.Chains.
func unresolvedErrors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
