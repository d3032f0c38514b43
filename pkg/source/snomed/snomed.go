// Package snomed loads SNOMED CT release format 2 (RF2) snapshot files.
//
// Three adapters read the international snapshot terminology files:
//   - Concepts (sct2_Concept_Snapshot_*.txt): one node per concept
//   - Descriptions (sct2_Description_Snapshot-*.txt): the fully specified
//     name of each concept becomes its name and semantic_tag
//   - Relationships (sct2_Relationship_Snapshot_*.txt): one edge per active
//     relationship, typed by its typeId
//
// Concept ids are carried as their decimal strings. Relationship type ids
// and groups are left as ids; [LoadLookup] builds the concept lookup that
// turns them into labels for display.
package snomed

import (
	"context"

	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/source"
)

// TypeConcept is the node type tag written for SNOMED concepts.
const TypeConcept = "concept"

// TypeRelationship is the edge type tag written for SNOMED relationships.
const TypeRelationship = "relationship"

// Description type ids.
const (
	FullySpecifiedName = "900000000000003001"
	Synonym            = "900000000000013009"
)

const active = "1"

// Concepts loads the concept snapshot.
type Concepts struct{ opts source.Options }

// NewConcepts creates the concepts adapter.
func NewConcepts(opts ...source.Option) *Concepts {
	return &Concepts{opts: source.NewOptions(opts...)}
}

// Name returns "snomed-concepts".
func (*Concepts) Name() string { return "snomed-concepts" }

// Load reads the concept snapshot at path into g. Inactive concepts are
// kept with active=false.
func (c *Concepts) Load(ctx context.Context, path string, g *kg.Graph) (source.Stats, error) {
	return load(ctx, c.Name(), path, conceptColumns, c.opts, func(p *source.Pass, line int, f []string) {
		// id effectiveTime active moduleId definitionStatusId
		if f[0] == "" {
			p.Malformed(lineRecord(line), "empty concept id")
			return
		}
		_ = g.UpsertNode(f[0], kg.Attributes{
			kg.AttrType:            TypeConcept,
			"active":               f[2] == active,
			"module_id":            f[3],
			"definition_status_id": f[4],
			"effective_time":       f[1],
		})
		p.Merged()
	})
}

// Descriptions loads the description snapshot.
type Descriptions struct{ opts source.Options }

// NewDescriptions creates the descriptions adapter.
func NewDescriptions(opts ...source.Option) *Descriptions {
	return &Descriptions{opts: source.NewOptions(opts...)}
}

// Name returns "snomed-descriptions".
func (*Descriptions) Name() string { return "snomed-descriptions" }

// Load reads the description snapshot at path and sets name and
// semantic_tag on each concept from its active fully specified name.
// Synonyms and inactive rows are passed over.
func (d *Descriptions) Load(ctx context.Context, path string, g *kg.Graph) (source.Stats, error) {
	return load(ctx, d.Name(), path, descriptionColumns, d.opts, func(p *source.Pass, line int, f []string) {
		// id effectiveTime active moduleId conceptId languageCode typeId term caseSignificanceId
		if f[2] != active || f[6] != FullySpecifiedName {
			return
		}
		if f[4] == "" {
			p.Malformed(lineRecord(line), "description %s has no concept id", f[0])
			return
		}
		name, tag := splitSemanticTag(f[7])
		attrs := kg.Attributes{kg.AttrName: name}
		if tag != "" {
			attrs[kg.AttrSemanticTag] = tag
		}
		_ = g.UpsertNode(f[4], attrs)
		p.Merged()
	})
}

// Relationships loads the inferred relationship snapshot.
type Relationships struct{ opts source.Options }

// NewRelationships creates the relationships adapter.
func NewRelationships(opts ...source.Option) *Relationships {
	return &Relationships{opts: source.NewOptions(opts...)}
}

// Name returns "snomed-relationships".
func (*Relationships) Name() string { return "snomed-relationships" }

// Load reads the relationship snapshot at path and adds one
// source -> destination edge per active row. Inactive rows are not errors
// and are passed over silently.
func (r *Relationships) Load(ctx context.Context, path string, g *kg.Graph) (source.Stats, error) {
	return load(ctx, r.Name(), path, relationshipColumns, r.opts, func(p *source.Pass, line int, f []string) {
		// id effectiveTime active moduleId sourceId destinationId relationshipGroup typeId characteristicTypeId modifierId
		if f[2] != active {
			return
		}
		if f[4] == "" || f[5] == "" {
			p.Malformed(lineRecord(line), "relationship %s has an empty endpoint", f[0])
			return
		}
		_ = g.UpsertEdge(f[4], f[5], kg.Attributes{
			kg.AttrType:              TypeRelationship,
			kg.AttrRelationshipType:  f[7],
			kg.AttrRelationshipGroup: f[6],
			"characteristic_type_id": f[8],
			"modifier_id":            f[9],
			"relationship_id":        f[0],
		})
		p.Merged()
	})
}
