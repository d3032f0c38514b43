package traverse

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/crkarthik11/healthcare/pkg/concept"
	kgerrors "github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
)

// Chain is one traversed edge reported by [Chains].
type Chain struct {
	// Path holds the node labels from the start node down to From.
	Path []string
	// Relation is the resolved label of the edge's relationship_type.
	Relation string
	// Target is the label of To.
	Target string

	From       string
	To         string
	RelationID string
}

// String formats the chain as "A -> B [relation] C".
func (c Chain) String() string {
	return fmt.Sprintf("%s [%s] %s", strings.Join(c.Path, " -> "), c.Relation, c.Target)
}

// Option configures [Chains].
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict stops the walk at the first unresolved relation instead of
// skipping that segment and continuing.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

var errStop = errors.New("stop")

// Chains enumerates relationship chains reachable from start.
//
// Node labels resolve through lookup, then the node's "name" attribute, then
// the raw id. Relation labels must resolve through lookup; failures are
// returned joined alongside every chain that could be emitted. With
// [WithStrict] the walk stops at the first failure and returns the chains
// emitted so far together with that error.
//
// A start node that is not in g yields no chains and no error.
func Chains(g *kg.Graph, start string, lookup concept.Lookup, opts ...Option) ([]Chain, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasNode(start) {
		return nil, nil
	}

	var (
		chains  []Chain
		errs    []error
		visited = make(map[string]bool)
		path    []string
	)

	var dfs func(id string) error
	dfs = func(id string) error {
		visited[id] = true
		path = append(path, lookup.NodeLabel(g, id))
		defer func() { path = path[:len(path)-1] }()

		for _, e := range g.OutEdges(id) {
			if visited[e.To] {
				continue
			}
			relID := e.Attrs.String(kg.AttrRelationshipType)
			relation, ok := lookup.Resolve(relID)
			if !ok {
				errs = append(errs, unresolved(e, relID))
				if o.strict {
					return errStop
				}
				continue
			}
			if err := dfs(e.To); err != nil {
				return err
			}
			chains = append(chains, Chain{
				Path:       slices.Clone(path),
				Relation:   relation,
				Target:     lookup.NodeLabel(g, e.To),
				From:       id,
				To:         e.To,
				RelationID: relID,
			})
		}
		return nil
	}

	_ = dfs(start)
	return chains, errors.Join(errs...)
}

func unresolved(e kg.Edge, relID string) error {
	if relID == "" {
		return kgerrors.New(kgerrors.ErrCodeUnresolvedRelation,
			"edge %s -> %s has no relationship_type", e.From, e.To)
	}
	return kgerrors.New(kgerrors.ErrCodeUnresolvedRelation,
		"relationship type %q on edge %s -> %s not in lookup", relID, e.From, e.To)
}

// PrintChains writes one line per chain to w.
func PrintChains(w io.Writer, chains []Chain) error {
	for _, c := range chains {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return err
		}
	}
	return nil
}
