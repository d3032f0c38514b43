package io

import (
	"encoding/json"
	"io"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/kg"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID    string        `json:"id"`
	Attrs kg.Attributes `json:"attrs,omitempty"`
}

type edge struct {
	From  string        `json:"from"`
	To    string        `json:"to"`
	Attrs kg.Attributes `json:"attrs,omitempty"`
}

// WriteGraph encodes g as JSON to w.
func WriteGraph(w io.Writer, g *kg.Graph) error {
	nodes := g.Nodes()
	edges := g.Edges()
	out := graph{
		Nodes: make([]node, len(nodes)),
		Edges: make([]edge, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = node{ID: n.ID, Attrs: n.Attrs}
	}
	for i, e := range edges {
		out.Edges[i] = edge{From: e.From, To: e.To, Attrs: e.Attrs}
	}

	if err := json.NewEncoder(w).Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "encode graph")
	}
	return nil
}

// ReadGraph decodes a JSON graph from r. Nodes are added before edges, so
// an edge endpoint missing from the node list is created with empty
// attributes, as during ingestion. ReadGraph does not close r.
func ReadGraph(r io.Reader) (*kg.Graph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph")
	}

	g := kg.New()
	for i, n := range data.Nodes {
		if err := g.UpsertNode(n.ID, n.Attrs); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "node %d", i)
		}
	}
	for i, e := range data.Edges {
		if err := g.UpsertEdge(e.From, e.To, e.Attrs); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "edge %d (%s->%s)", i, e.From, e.To)
		}
	}
	return g, nil
}
