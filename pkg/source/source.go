// Package source defines the contract shared by the ontology source adapters.
//
// An [Adapter] reads one source file and merges its records into a shared
// [kg.Graph] through [kg.Graph.UpsertNode] and [kg.Graph.UpsertEdge]. Adapters
// only add: they never remove nodes or edges, and running them in any order
// yields the same node and edge set.
//
// # Error Policy
//
// Load returns an error only when the file itself cannot be read (missing
// file, I/O failure, truncated XML stream). A record that is malformed or
// missing a required field is logged, counted in [Stats.Skipped], reported
// to [observability.IngestHooks.OnRecordSkipped] and skipped; the pass
// continues. A source that contributes nothing is not an error.
//
// # Adapters
//
// Concrete adapters live in sub-packages:
//   - drugbank: carriers and drug-drug interactions from the DrugBank XML
//   - geneontology: terms, relationships and attributes from the GO OWL file
//   - snomed: concepts, descriptions and relationships from RF2 snapshots
package source

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/observability"
)

// Adapter merges the records of one source file into a graph.
type Adapter interface {
	// Name returns the adapter kind, e.g. "drugbank-carriers".
	Name() string
	// Load reads path and merges its records into g.
	Load(ctx context.Context, path string, g *kg.Graph) (Stats, error)
}

// Stats summarizes one Load call.
type Stats struct {
	Records int // records merged into the graph
	Skipped int // malformed records logged and skipped
}

// Options configures an adapter.
type Options struct {
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger used for progress and skipped records.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Pass tracks one Load call: it counts records, applies the skip policy and
// reports to the ingest hooks. Adapters create one with [Begin] and finish
// it with [Pass.Done].
type Pass struct {
	ctx    context.Context
	name   string
	logger *log.Logger
	start  time.Time
	stats  Stats
}

// Begin starts a pass for the adapter name reading path.
func Begin(ctx context.Context, name, path string, logger *log.Logger) *Pass {
	logger = logger.With("source", name)
	logger.Info("loading", "path", path)
	observability.Ingest().OnSourceStart(ctx, name, path)
	return &Pass{ctx: ctx, name: name, logger: logger, start: time.Now()}
}

// Logger returns the pass logger, tagged with the source name.
func (p *Pass) Logger() *log.Logger { return p.logger }

// Merged counts one record merged into the graph.
func (p *Pass) Merged() { p.stats.Records++ }

// Skip logs a malformed record and counts it. record identifies the record
// for the log line (an id, or a line number).
func (p *Pass) Skip(record string, err error) {
	p.stats.Skipped++
	p.logger.Warn("skipping record", "record", record, "err", err)
	observability.Ingest().OnRecordSkipped(p.ctx, p.name, err)
}

// Malformed is shorthand for skipping with a MALFORMED_RECORD error.
func (p *Pass) Malformed(record, format string, args ...any) {
	p.Skip(record, errors.New(errors.ErrCodeMalformedRecord, format, args...))
}

// Done finishes the pass, logging and reporting the outcome.
func (p *Pass) Done(err error) (Stats, error) {
	d := time.Since(p.start)
	observability.Ingest().OnSourceComplete(p.ctx, p.name, p.stats.Records, p.stats.Skipped, d, err)
	if err != nil {
		p.logger.Error("load failed", "err", err)
		return p.stats, err
	}
	p.logger.Info("loaded",
		"records", p.stats.Records,
		"skipped", p.stats.Skipped,
		"elapsed", d.Round(time.Millisecond))
	return p.stats, nil
}
