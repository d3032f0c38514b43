package snomed

import (
	"context"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/source"
)

// LoadTextDefinitions maps each concept id to its active text definition,
// read from an sct2_TextDefinition snapshot. The file has the description
// columns. When a concept has several active definitions the last row wins.
func LoadTextDefinitions(ctx context.Context, path string, opts ...source.Option) (concept.Lookup, error) {
	o := source.NewOptions(opts...)
	defs := make(concept.Lookup)

	_, err := load(ctx, "snomed-text-definitions", path, descriptionColumns, o, func(p *source.Pass, line int, f []string) {
		if f[2] != active {
			return
		}
		if f[4] == "" || f[7] == "" {
			p.Malformed(lineRecord(line), "text definition %q without concept id or term", f[0])
			return
		}
		defs[f[4]] = f[7]
		p.Merged()
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// LoadDescriptionLookup maps each active description id to its term, as
// written in the file (semantic tags are kept).
func LoadDescriptionLookup(ctx context.Context, path string, opts ...source.Option) (concept.Lookup, error) {
	o := source.NewOptions(opts...)
	terms := make(concept.Lookup)

	_, err := load(ctx, "snomed-description-index", path, descriptionColumns, o, func(p *source.Pass, line int, f []string) {
		if f[2] != active {
			return
		}
		if f[0] == "" {
			p.Malformed(lineRecord(line), "description without id")
			return
		}
		terms[f[0]] = f[7]
		p.Merged()
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}
