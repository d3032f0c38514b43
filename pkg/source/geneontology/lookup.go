package geneontology

import (
	"context"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/source"
)

// IsALabel is the lookup label of the built-in [TypeIsA] relation.
const IsALabel = "is a"

// LoadLookup builds a lookup from the rdfs:label of every term and object
// property in the OWL file at path, so relation ids such as BFO:0000050
// resolve to "part of". The lookup always holds [TypeIsA].
func LoadLookup(ctx context.Context, path string, opts ...source.Option) (concept.Lookup, error) {
	o := source.NewOptions(opts...)
	pass := source.Begin(ctx, "gene-ontology-lookup", path, o.Logger)
	f, err := source.Open(path)
	if err != nil {
		_, err = pass.Done(err)
		return nil, err
	}
	defer f.Close()

	lookup := concept.Lookup{TypeIsA: IsALabel}
	add := func(t *term) {
		if t.ID == "" || t.Name == "" {
			return
		}
		lookup[t.ID] = t.Name
		pass.Merged()
	}
	if _, err := pass.Done(eachEntity(ctx, f, add, add)); err != nil {
		return nil, err
	}
	return lookup, nil
}
