package drugbank

import (
	"context"

	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/source"
)

// Interactions adds one drug -> partner edge tagged "interaction" per
// <drug-interaction>. Both drug ids are required.
type Interactions struct {
	opts source.Options
}

// NewInteractions creates the interactions adapter.
func NewInteractions(opts ...source.Option) *Interactions {
	return &Interactions{opts: source.NewOptions(opts...)}
}

// Name returns "drugbank-interactions".
func (*Interactions) Name() string { return "drugbank-interactions" }

// Load streams the DrugBank XML at path into g.
func (i *Interactions) Load(ctx context.Context, path string, g *kg.Graph) (source.Stats, error) {
	return load(ctx, i.Name(), path, i.opts, func(p *source.Pass, d *drugRecord) {
		mergeInteractions(p, d, g)
	})
}

func mergeInteractions(p *source.Pass, d *drugRecord, g *kg.Graph) {
	if len(d.Interactions) == 0 {
		return
	}
	drugID := d.primaryID()
	if drugID == "" {
		for range d.Interactions {
			p.Malformed(d.Name, "drug has no primary drugbank-id")
		}
		return
	}
	_ = g.UpsertNode(drugID, kg.Attributes{kg.AttrName: d.Name, kg.AttrType: TypeDrug})

	for _, in := range d.Interactions {
		if in.PartnerID == "" {
			p.Malformed(drugID, "interaction with %q has no partner drugbank-id", in.Name)
			continue
		}
		if in.Name != "" {
			_ = g.UpsertNode(in.PartnerID, kg.Attributes{kg.AttrName: in.Name, kg.AttrType: TypeDrug})
		}
		_ = g.UpsertEdge(drugID, in.PartnerID, kg.Attributes{
			kg.AttrType:        TypeInteraction,
			"description":      in.Description,
			"interaction_type": in.Type,
		})
		p.Merged()
	}
}
