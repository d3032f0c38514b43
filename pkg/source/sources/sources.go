// Package sources wires the built-in source adapters into a registry.
package sources

import (
	"github.com/crkarthik11/healthcare/pkg/source"
	"github.com/crkarthik11/healthcare/pkg/source/drugbank"
	"github.com/crkarthik11/healthcare/pkg/source/geneontology"
	"github.com/crkarthik11/healthcare/pkg/source/snomed"
)

// Default returns a registry holding every built-in adapter:
// drugbank-carriers, drugbank-interactions, gene-ontology,
// snomed-concepts, snomed-descriptions and snomed-relationships.
func Default(opts ...source.Option) *source.Registry {
	return source.NewRegistry(
		drugbank.NewCarriers(opts...),
		drugbank.NewInteractions(opts...),
		geneontology.New(opts...),
		snomed.NewConcepts(opts...),
		snomed.NewDescriptions(opts...),
		snomed.NewRelationships(opts...),
	)
}
