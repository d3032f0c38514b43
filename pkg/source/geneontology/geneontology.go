// Package geneontology loads Gene Ontology terms from the GO OWL (RDF/XML)
// release, e.g. go-basic.owl.
//
// One adapter covers three passes that can be enabled independently:
//   - Terms: one node per owl:Class with name, namespace, definition and
//     the obsolete flag
//   - Relationships: rdfs:subClassOf parents as "is_a" edges and
//     owl:Restriction axioms as edges typed by their property id
//   - Attributes: synonyms, cross-references, comment and subsets merged
//     into the term node
//
// The file is streamed once per Load regardless of how many passes run.
package geneontology

import (
	"context"
	"fmt"

	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/source"
)

// TypeTerm is the node type tag written for GO terms.
const TypeTerm = "go-term"

// Edge type tags. Restriction edges carry the property id (for example
// "BFO:0000050", part of) as their relationship_type.
const (
	TypeIsA          = "is_a"
	TypeRelationship = "relationship"
)

// Part selects the passes an [Adapter] runs.
type Part uint8

const (
	Terms Part = 1 << iota
	Relationships
	Attributes

	All = Terms | Relationships | Attributes
)

// Adapter loads GO terms into a graph.
type Adapter struct {
	parts Part
	opts  source.Options
}

// New creates an adapter running every pass.
func New(opts ...source.Option) *Adapter {
	return NewParts(All, opts...)
}

// NewParts creates an adapter running only the given passes.
func NewParts(parts Part, opts ...source.Option) *Adapter {
	return &Adapter{parts: parts, opts: source.NewOptions(opts...)}
}

// Name returns "gene-ontology".
func (*Adapter) Name() string { return "gene-ontology" }

// Load streams the OWL file at path into g.
func (a *Adapter) Load(ctx context.Context, path string, g *kg.Graph) (source.Stats, error) {
	pass := source.Begin(ctx, a.Name(), path, a.opts.Logger)
	pass.Logger().Debug("passes", "parts", a.parts)
	f, err := source.Open(path)
	if err != nil {
		return pass.Done(err)
	}
	defer f.Close()

	return pass.Done(eachClass(ctx, f, func(t *term) { a.merge(pass, t, g) }))
}

func (a *Adapter) merge(p *source.Pass, t *term, g *kg.Graph) {
	if t.ID == "" {
		p.Malformed(t.Name, "owl:Class without rdf:about")
		return
	}

	if a.parts&Terms != 0 {
		_ = g.UpsertNode(t.ID, kg.Attributes{
			kg.AttrName:  t.Name,
			kg.AttrType:  TypeTerm,
			"namespace":  t.Namespace,
			"definition": t.Definition,
			"obsolete":   t.Obsolete,
		})
	}

	if a.parts&Relationships != 0 {
		for _, parent := range t.Parents {
			_ = g.UpsertEdge(t.ID, parent, kg.Attributes{
				kg.AttrType:             TypeIsA,
				kg.AttrRelationshipType: TypeIsA,
			})
		}
		for _, rel := range t.Relations {
			_ = g.UpsertEdge(t.ID, rel.Target, kg.Attributes{
				kg.AttrType:             TypeRelationship,
				kg.AttrRelationshipType: rel.Property,
			})
		}
		for range t.Broken {
			p.Malformed(t.ID, "restriction without onProperty or someValuesFrom")
		}
	}

	if a.parts&Attributes != 0 {
		attrs := kg.Attributes{}
		if len(t.Synonyms) > 0 {
			attrs["synonyms"] = t.Synonyms
		}
		if len(t.Xrefs) > 0 {
			attrs["xrefs"] = t.Xrefs
		}
		if len(t.Subsets) > 0 {
			attrs["subsets"] = t.Subsets
		}
		if t.Comment != "" {
			attrs["comment"] = t.Comment
		}
		_ = g.UpsertNode(t.ID, attrs)
	}

	p.Merged()
}

func (p Part) String() string {
	return fmt.Sprintf("terms=%t relationships=%t attributes=%t",
		p&Terms != 0, p&Relationships != 0, p&Attributes != 0)
}
