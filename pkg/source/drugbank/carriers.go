package drugbank

import (
	"context"

	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/source"
)

// Carriers adds one carrier node per <carrier> and one drug -> carrier edge
// tagged "carrier" carrying the listed actions.
type Carriers struct {
	opts source.Options
}

// NewCarriers creates the carriers adapter.
func NewCarriers(opts ...source.Option) *Carriers {
	return &Carriers{opts: source.NewOptions(opts...)}
}

// Name returns "drugbank-carriers".
func (*Carriers) Name() string { return "drugbank-carriers" }

// Load streams the DrugBank XML at path into g.
func (c *Carriers) Load(ctx context.Context, path string, g *kg.Graph) (source.Stats, error) {
	return load(ctx, c.Name(), path, c.opts, func(p *source.Pass, d *drugRecord) {
		mergeCarriers(p, d, g)
	})
}

func mergeCarriers(p *source.Pass, d *drugRecord, g *kg.Graph) {
	if len(d.Carriers) == 0 {
		return
	}
	drugID := d.primaryID()
	if drugID == "" {
		for range d.Carriers {
			p.Malformed(d.Name, "drug has no primary drugbank-id")
		}
		return
	}
	_ = g.UpsertNode(drugID, kg.Attributes{kg.AttrName: d.Name, kg.AttrType: TypeDrug})

	for _, c := range d.Carriers {
		if c.ID == "" {
			p.Malformed(drugID, "carrier %q has no id", c.Name)
			continue
		}
		_ = g.UpsertNode(c.ID, kg.Attributes{
			kg.AttrName: c.Name,
			"organism":  c.Organism,
			kg.AttrType: TypeCarrier,
		})
		_ = g.UpsertEdge(drugID, c.ID, kg.Attributes{
			kg.AttrType: TypeCarrier,
			"actions":   append([]string{}, c.Actions...),
		})
		p.Merged()
	}
}
