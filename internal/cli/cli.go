// Package cli implements the kgraph command-line interface.
//
// The CLI assembles the knowledge graph from the sources listed in a
// manifest, persists it as a snapshot, and runs the analyses over a loaded
// snapshot. It is built with cobra; progress and results are styled with
// lipgloss and logged through charmbracelet/log.
//
// # Commands
//
//   - ingest: run the source adapters of a kgraph.toml manifest and write
//     the graph snapshot (and optionally the concept lookup)
//   - levels: breadth-first levels from one or more root nodes
//   - chains: depth-first relation chains from a start node
//   - render: draw a subgraph as PNG and optionally SVG or DOT
//   - cache: manage the snapshot cache
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/crkarthik11/healthcare/pkg/buildinfo"
	"github.com/crkarthik11/healthcare/pkg/cache"
	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/errors"
	kgio "github.com/crkarthik11/healthcare/pkg/io"
	"github.com/crkarthik11/healthcare/pkg/kg"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "kgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
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
		Use:          appName,
		Short:        "kgraph builds and explores a biomedical knowledge graph",
		Long:         `kgraph merges DrugBank, Gene Ontology and SNOMED CT into one multi-relational graph, then assigns breadth-first levels, enumerates relation chains and renders subgraphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.ingestCommand())
	root.AddCommand(c.levelsCommand())
	root.AddCommand(c.chainsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/kgraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Loading
// =============================================================================

// loadGraph reads a graph snapshot.
func (c *CLI) loadGraph(path string) (*kg.Graph, error) {
	prog := newProgress(c.Logger)
	g, err := kgio.ImportGraph(path)
	if err != nil {
		return nil, err
	}
	prog.done("Loaded " + path)
	c.Logger.Debug("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

// loadLookup reads a concept lookup. An empty path yields an empty lookup,
// so labels fall back to node names and raw ids.
func (c *CLI) loadLookup(path string) (concept.Lookup, error) {
	if path == "" {
		return concept.Lookup{}, nil
	}
	l, err := kgio.ImportLookup(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("lookup loaded", "path", path, "entries", len(l))
	return l, nil
}

// requireNode validates id and checks that g contains it.
func requireNode(g *kg.Graph, id, flag string) error {
	if err := errors.ValidateNodeID(id); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "--%s", flag)
	}
	if !g.HasNode(id) {
		return errors.New(errors.ErrCodeNodeNotFound, "--%s %s: no such node in the graph", flag, id)
	}
	return nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseList splits a comma-separated flag value, dropping empty items.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
