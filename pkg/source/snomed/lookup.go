package snomed

import (
	"context"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/source"
)

// LoadLookup builds a concept lookup from a description snapshot: each
// concept id maps to its active fully specified name with the semantic tag
// removed, or to its first active synonym when it has no FSN row.
func LoadLookup(ctx context.Context, path string, opts ...source.Option) (concept.Lookup, error) {
	o := source.NewOptions(opts...)
	lookup := make(concept.Lookup)
	hasFSN := make(map[string]bool)

	_, err := load(ctx, "snomed-lookup", path, descriptionColumns, o, func(p *source.Pass, _ int, f []string) {
		if f[2] != active || f[4] == "" {
			return
		}
		id := f[4]
		switch f[6] {
		case FullySpecifiedName:
			name, _ := splitSemanticTag(f[7])
			lookup[id] = name
			hasFSN[id] = true
			p.Merged()
		case Synonym:
			if _, ok := lookup[id]; !ok {
				lookup[id] = f[7]
				p.Merged()
			}
		}
	})
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("lookup built", "concepts", len(lookup), "fsn", len(hasFSN))
	return lookup, nil
}
