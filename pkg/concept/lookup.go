// Package concept holds the id-to-label dictionary used for display.
//
// A [Lookup] maps a concept identifier (SNOMED concept id, relationship type
// id, GO term id...) to a human-readable label. It is purely presentational:
// nothing in the graph depends on it. A missing id is a lookup miss, and
// each caller decides whether a miss falls back to the raw id (display) or
// is an error (relation resolution in chain enumeration).
package concept

import (
	"maps"
	"slices"

	"github.com/crkarthik11/healthcare/pkg/kg"
)

// Lookup maps concept ids to labels. A nil Lookup is valid and empty.
type Lookup map[string]string

// Resolve returns the label for id and whether it was found.
// Empty labels are treated as misses.
func (l Lookup) Resolve(id string) (string, bool) {
	label, ok := l[id]
	if !ok || label == "" {
		return "", false
	}
	return label, true
}

// Label returns the label for id, or id itself on a miss.
func (l Lookup) Label(id string) string {
	if label, ok := l.Resolve(id); ok {
		return label
	}
	return id
}

// NodeLabel returns the display label for a graph node: the lookup entry
// for its id, then its "name" attribute, then the raw id.
func (l Lookup) NodeLabel(g *kg.Graph, id string) string {
	if label, ok := l.Resolve(id); ok {
		return label
	}
	if n, ok := g.Node(id); ok {
		if name := n.Name(); name != "" {
			return name
		}
	}
	return id
}

// Merge copies entries from other into l. Entries already in l are
// overwritten. l must not be nil.
func (l Lookup) Merge(other Lookup) {
	maps.Copy(l, other)
}

// IDs returns the lookup keys in sorted order.
func (l Lookup) IDs() []string {
	return slices.Sorted(maps.Keys(l))
}
