package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/observability"
	"github.com/crkarthik11/healthcare/pkg/render"
	"github.com/crkarthik11/healthcare/pkg/render/layout"
	"github.com/crkarthik11/healthcare/pkg/render/nodelink"
)

const (
	formatPNG = "png"
	formatSVG = "svg"
	formatDOT = "dot"
)

// validFormats is the set of supported output formats.
var validFormats = []string{formatPNG, formatSVG, formatDOT}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output base path; each format appends its extension
	lookup     string   // concept lookup for labels
	center     string   // ego center; empty renders the whole graph
	radius     int      // ego radius in out-edge hops
	highlights []string // highlighted node ids
	layout     string   // layout algorithm name
	formats    []string // png, svg, dot
	seed       int64    // layout seed
	wrap       int      // label column width
}

// renderCommand creates the render command for drawing a subgraph.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		radius: 1,
		layout: layout.Default,
		seed:   1,
		wrap:   render.DefaultWrapWidth,
	}

	cmd := &cobra.Command{
		Use:   "render GRAPH",
		Short: "Render a subgraph to PNG (and SVG or DOT)",
		Long: `Render draws a subgraph of a snapshot. With --center, the subgraph holds the
nodes within --radius out-edge hops of the center; otherwise the whole graph
is drawn.

With --highlight, nodes are colored by breadth-first level from the
highlighted nodes. Layouts: ` + strings.Join(layout.Names(), ", ") + `.`,
		Example: `  kgraph render saved/graph.json.zst --center DB00945 --radius 2 -o out/aspirin
  kgraph render saved/graph.json.zst --center 22298006 --highlight 22298006 \
      --lookup saved/concepts.json --layout kamada-kawai -f png,svg -o out/mi`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			opts.formats = formats
			if err := layout.Validate(opts.layout); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (extension added per format)")
	cmd.Flags().StringVar(&opts.lookup, "lookup", "", "concept lookup for labels")
	cmd.Flags().StringVar(&opts.center, "center", "", "render the neighborhood of this node")
	cmd.Flags().IntVar(&opts.radius, "radius", opts.radius, "neighborhood radius in hops (with --center)")
	cmd.Flags().StringSliceVar(&opts.highlights, "highlight", nil, "highlighted node id (repeatable or comma-separated)")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", opts.layout, "layout algorithm")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, dot (comma-separated)")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed for randomized layouts")
	cmd.Flags().IntVar(&opts.wrap, "wrap", opts.wrap, "label wrap width in characters")
	_ = cmd.MarkFlagRequired("output")

	_ = cmd.RegisterFlagCompletionFunc("layout", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return layout.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// parseFormats reads the --format list. Formats are matched without case
// and repeats are dropped, keeping the first occurrence. An empty list
// means PNG.
func parseFormats(s string) ([]string, error) {
	var formats []string
	for _, f := range parseList(strings.ToLower(s)) {
		if !slices.Contains(validFormats, f) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be one of %s)", f, strings.Join(validFormats, ", "))
		}
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		formats = []string{formatPNG}
	}
	return formats, nil
}

func (c *CLI) runRender(ctx context.Context, graphPath string, opts renderOpts) error {
	if err := errors.ValidateOutputPath(opts.output + "." + opts.formats[0]); err != nil {
		return err
	}
	g, err := c.loadGraph(graphPath)
	if err != nil {
		return err
	}
	lookup, err := c.loadLookup(opts.lookup)
	if err != nil {
		return err
	}

	sub, err := subgraph(g, opts)
	if err != nil {
		return err
	}
	c.Logger.Debug("subgraph selected", "nodes", sub.NodeCount(), "edges", sub.EdgeCount())

	ropts := []render.Option{
		render.WithHighlight(opts.highlights...),
		render.WithLayout(opts.layout),
		render.WithSeed(opts.seed),
		render.WithWrapWidth(opts.wrap),
		render.WithLogger(c.Logger),
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %d nodes (%s)...", sub.NodeCount(), opts.layout))
	spinner.Start()
	paths, err := c.renderFormats(ctx, sub, lookup, opts, ropts)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Rendered %d nodes, %d edges", sub.NodeCount(), sub.EdgeCount()))
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// subgraph selects the nodes to draw: the ego graph of --center, or all.
func subgraph(g *kg.Graph, opts renderOpts) (*kg.Graph, error) {
	if opts.center == "" {
		return g, nil
	}
	if err := requireNode(g, opts.center, "center"); err != nil {
		return nil, err
	}
	if opts.radius < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "--radius must not be negative")
	}
	return g.Ego(opts.center, opts.radius), nil
}

// renderFormats writes every requested format. A PNG-only request goes
// through render.Render; otherwise the scene is planned once and the sinks
// run concurrently over it.
func (c *CLI) renderFormats(ctx context.Context, sub *kg.Graph, lookup concept.Lookup, opts renderOpts, ropts []render.Option) ([]string, error) {
	if len(opts.formats) == 1 && opts.formats[0] == formatPNG {
		path, err := render.Render(ctx, sub, lookup, opts.output, ropts...)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	hooks := observability.Analysis()
	hooks.OnRenderStart(ctx, opts.layout, sub.NodeCount())
	start := time.Now()

	scene, err := render.Plan(sub, lookup, ropts...)
	if err != nil {
		hooks.OnRenderComplete(ctx, opts.layout, opts.formats, time.Since(start), err)
		return nil, err
	}

	paths := make([]string, len(opts.formats))
	eg, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.formats {
		path := opts.output + "." + format
		paths[i] = path
		eg.Go(func() error {
			return writeFormat(gctx, scene, format, path)
		})
	}
	err = eg.Wait()
	hooks.OnRenderComplete(ctx, opts.layout, opts.formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFormat(ctx context.Context, scene *render.Scene, format, path string) error {
	switch format {
	case formatPNG:
		return scene.SavePNG(path)
	case formatDOT:
		return writeFile(path, []byte(nodelink.ToDOT(scene)))
	case formatSVG:
		svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(scene))
		if err != nil {
			return err
		}
		return writeFile(path, svg)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s", format)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
