package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/crkarthik11/healthcare/pkg/cache"
	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/config"
	"github.com/crkarthik11/healthcare/pkg/errors"
	kgio "github.com/crkarthik11/healthcare/pkg/io"
	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/observability"
	"github.com/crkarthik11/healthcare/pkg/source"
	"github.com/crkarthik11/healthcare/pkg/source/geneontology"
	"github.com/crkarthik11/healthcare/pkg/source/snomed"
	"github.com/crkarthik11/healthcare/pkg/source/sources"
)

// snapshotTTL bounds how long a cached snapshot is reused even when no
// source file changed.
const snapshotTTL = 7 * 24 * time.Hour

// ingestOpts holds the command-line flags for the ingest command.
type ingestOpts struct {
	config      string // manifest path
	output      string // snapshot path, overrides the manifest
	noCache     bool   // always run the adapters
	metricsFile string // Prometheus textfile snapshot path
}

// ingestCommand creates the ingest command, which assembles the graph from
// the sources of a manifest and writes a snapshot.
func (c *CLI) ingestCommand() *cobra.Command {
	opts := ingestOpts{config: config.DefaultFile}

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Assemble the knowledge graph from the sources of a manifest",
		Long: `Ingest runs the source adapters listed in a kgraph.toml manifest, in order,
against one shared graph and writes the result as a snapshot.

Malformed records are logged and skipped. When neither the manifest nor any
source file changed since the last run, the cached snapshot is reused.`,
		Example: `  kgraph ingest -c kgraph.toml
  kgraph ingest -c kgraph.toml -o saved/graph.json.zst --no-cache`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runIngest(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", opts.config, "manifest file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "snapshot path (.json, .json.zst, .json.sz)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "ignore the snapshot cache")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write ingest metrics in Prometheus text format")

	return cmd
}

func (c *CLI) runIngest(ctx context.Context, opts ingestOpts) (err error) {
	registry := sources.Default(source.WithLogger(c.Logger))
	m, err := config.Load(opts.config, registry.Has)
	if err != nil {
		return err
	}

	output := m.Output
	if opts.output != "" {
		output = opts.output
	}
	if output == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "no output: set output in %s or pass -o", opts.config)
	}
	for _, path := range []string{output, m.Lookup, m.Descriptions, m.Definitions.Output} {
		if path == "" {
			continue
		}
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}
		if _, err := kgio.CodecFor(path); err != nil {
			return err
		}
	}

	if opts.metricsFile != "" {
		if err := errors.ValidateOutputPath(opts.metricsFile); err != nil {
			return err
		}
		reg := prometheus.NewRegistry()
		hooks := observability.NewPrometheusHooks(reg)
		observability.SetIngestHooks(hooks)
		observability.SetCacheHooks(hooks)
		defer func() {
			if werr := observability.WriteTextfile(opts.metricsFile, reg); werr != nil && err == nil {
				err = werr
			}
		}()
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key, err := cache.SourceKey(m.Raw(), m.SourcePaths()...)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	g, skipped, cached, err := c.assemble(ctx, store, key, registry, m)
	if err != nil {
		return err
	}

	if err := kgio.ExportGraph(output, g); err != nil {
		return err
	}
	printSuccess("Assembled graph in %s", prog.elapsed())
	printStats(g.NodeCount(), g.EdgeCount(), skipped, cached)
	printFile(output)

	if m.Lookup != "" {
		if err := c.writeLookup(ctx, store, key, m); err != nil {
			return err
		}
	}
	if m.Descriptions != "" {
		if err := c.writeDescriptions(ctx, m); err != nil {
			return err
		}
	}
	if m.Definitions.Output != "" {
		if err := c.writeDefinitions(ctx, m); err != nil {
			return err
		}
	}

	printNextStep("Next", fmt.Sprintf("kgraph render %s --center <id> -o subgraph", output))
	return nil
}

// assemble returns the cached snapshot for key, or runs every source of
// the manifest into a new graph and caches the result.
func (c *CLI) assemble(ctx context.Context, store cache.Cache, key string, registry *source.Registry, m *config.Manifest) (*kg.Graph, int, bool, error) {
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		g, err := decodeSnapshot(data)
		if err == nil {
			c.Logger.Debug("snapshot cache hit", "key", key)
			return g, 0, true, nil
		}
		c.Logger.Warn("discarding unreadable cached snapshot", "err", err)
	}

	g := kg.New()
	skipped := 0
	spinner := newSpinner(ctx, "Loading sources...")
	spinner.Start()
	defer spinner.Stop()
	for i, s := range m.Sources {
		if err := ctx.Err(); err != nil {
			return nil, 0, false, err
		}
		adapter, err := registry.Get(s.Kind)
		if err != nil {
			return nil, 0, false, err
		}

		spinner.Step(fmt.Sprintf("Loading %s (%d/%d) from %s...", s.Kind, i+1, len(m.Sources), s.Path))
		stats, err := adapter.Load(ctx, s.Path, g)
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("%s: %s", s.Kind, errors.UserMessage(err)))
			return nil, 0, false, err
		}
		var details []string
		if stats.Skipped > 0 {
			details = append(details, fmt.Sprintf("%d malformed records skipped", stats.Skipped))
		}
		spinner.Done(fmt.Sprintf("%s: %d records", s.Kind, stats.Records), details...)
		skipped += stats.Skipped
	}
	spinner.Stop()

	data, err := encodeSnapshot(g)
	if err != nil {
		return nil, 0, false, err
	}
	if err := store.Set(ctx, key, data, snapshotTTL); err != nil {
		c.Logger.Warn("could not cache snapshot", "err", err)
	}
	return g, skipped, false, nil
}

// writeLookup builds the concept lookup from the snomed-descriptions and
// gene-ontology sources and exports it to the manifest's lookup path.
func (c *CLI) writeLookup(ctx context.Context, store cache.Cache, key string, m *config.Manifest) error {
	lookupKey := "lookup:" + strings.TrimPrefix(key, "graph:")
	lookup := concept.Lookup{}

	if data, hit, err := store.Get(ctx, lookupKey); err == nil && hit {
		l, err := decodeLookup(data)
		if err == nil {
			lookup = l
		}
	}
	if len(lookup) == 0 {
		descs := m.SourcesOf("snomed-descriptions")
		terms := m.SourcesOf("gene-ontology")
		if len(descs) == 0 && len(terms) == 0 {
			printWarning("lookup requested but the manifest has no snomed-descriptions or gene-ontology source")
		}
		loaders := []struct {
			sources []config.Source
			load    func(context.Context, string, ...source.Option) (concept.Lookup, error)
		}{
			{terms, geneontology.LoadLookup},
			{descs, snomed.LoadLookup},
		}
		for _, l := range loaders {
			for _, s := range l.sources {
				part, err := l.load(ctx, s.Path, source.WithLogger(c.Logger))
				if err != nil {
					return err
				}
				lookup.Merge(part)
			}
		}
		if data, err := encodeLookup(lookup); err == nil {
			_ = store.Set(ctx, lookupKey, data, snapshotTTL)
		}
	}

	if err := kgio.ExportLookup(m.Lookup, lookup); err != nil {
		return err
	}
	printSuccess("Wrote %d concept labels", len(lookup))
	printFile(m.Lookup)
	return nil
}

// writeDescriptions exports the description id to term dictionary of every
// snomed-descriptions source.
func (c *CLI) writeDescriptions(ctx context.Context, m *config.Manifest) error {
	descs := m.SourcesOf("snomed-descriptions")
	if len(descs) == 0 {
		printWarning("descriptions requested but the manifest has no snomed-descriptions source")
	}
	terms := concept.Lookup{}
	for _, s := range descs {
		part, err := snomed.LoadDescriptionLookup(ctx, s.Path, source.WithLogger(c.Logger))
		if err != nil {
			return err
		}
		terms.Merge(part)
	}
	if err := kgio.ExportLookup(m.Descriptions, terms); err != nil {
		return err
	}
	printSuccess("Wrote %d description terms", len(terms))
	printFile(m.Descriptions)
	return nil
}

// writeDefinitions exports the concept id to text definition dictionary.
func (c *CLI) writeDefinitions(ctx context.Context, m *config.Manifest) error {
	defs, err := snomed.LoadTextDefinitions(ctx, m.Definitions.Source, source.WithLogger(c.Logger))
	if err != nil {
		return err
	}
	if err := kgio.ExportLookup(m.Definitions.Output, defs); err != nil {
		return err
	}
	printSuccess("Wrote %d text definitions", len(defs))
	printFile(m.Definitions.Output)
	return nil
}

// Cache entries are zstd-compressed JSON.

func compress(encode func(io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := kgio.CodecZstd.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if err := encode(zw); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte, decode func(io.Reader) error) error {
	r, err := kgio.CodecZstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer r.Close()
	return decode(r)
}

func encodeSnapshot(g *kg.Graph) ([]byte, error) {
	return compress(func(w io.Writer) error { return kgio.WriteGraph(w, g) })
}

func decodeSnapshot(data []byte) (*kg.Graph, error) {
	var g *kg.Graph
	err := decompress(data, func(r io.Reader) error {
		var err error
		g, err = kgio.ReadGraph(r)
		return err
	})
	return g, err
}

func encodeLookup(l concept.Lookup) ([]byte, error) {
	return compress(func(w io.Writer) error { return json.NewEncoder(w).Encode(l) })
}

func decodeLookup(data []byte) (concept.Lookup, error) {
	l := concept.Lookup{}
	err := decompress(data, func(r io.Reader) error { return json.NewDecoder(r).Decode(&l) })
	return l, err
}
