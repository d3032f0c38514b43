package kg

import (
	"errors"
	"maps"
	"slices"
)

// ErrInvalidNodeID is returned by [Graph.UpsertNode] and [Graph.UpsertEdge]
// when a node ID is empty. All nodes must have non-empty identifiers.
var ErrInvalidNodeID = errors.New("node ID must not be empty")

// Well-known attribute keys shared by the source adapters and the analysis
// packages. Adapters may attach any other key.
const (
	AttrName              = "name"
	AttrType              = "type"
	AttrSemanticTag       = "semantic_tag"
	AttrRelationshipType  = "relationship_type"
	AttrRelationshipGroup = "relationship_group"
)

// Node is a vertex of the knowledge graph. The ID is the source-defined key
// (DrugBank id, carrier id, GO term id, SNOMED concept id) and never changes
// once the node exists. Attrs is never nil for nodes owned by a Graph.
type Node struct {
	ID    string
	Attrs Attributes
}

// Name returns the "name" attribute, or "" when absent.
func (n *Node) Name() string { return n.Attrs.String(AttrName) }

// Type returns the provenance tag ("carrier", "drug", "go-term", "concept"...).
func (n *Node) Type() string { return n.Attrs.String(AttrType) }

// Edge is one directed, attributed relation instance. Two edges between the
// same ordered pair are distinct instances and are both kept.
type Edge struct {
	From  string
	To    string
	Attrs Attributes
}

// Type returns the relation category ("carrier", "interaction", "is_a"...).
func (e Edge) Type() string { return e.Attrs.String(AttrType) }

// Graph is a directed multigraph with open attribute maps on nodes and edges.
// It is the single shared handle that every source adapter writes into during
// ingestion and that the analysis packages read afterwards.
//
// The zero value is not usable - use New to create a Graph.
// Graph is not safe for concurrent use: one writer during ingestion, then
// any number of sequential readers.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	outgoing map[string][]int // nodeID -> indices into edges
	incoming map[string][]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]int),
		incoming: make(map[string][]int),
	}
}

// UpsertNode creates the node if it does not exist, otherwise merges attrs
// into its attributes: new keys are added and colliding keys are overwritten
// (last write wins). A nil attrs map only ensures the node exists.
func (g *Graph) UpsertNode(id string, attrs Attributes) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	n := g.ensure(id)
	maps.Copy(n.Attrs, attrs)
	return nil
}

// UpsertEdge adds a new directed edge from -> to carrying a copy of attrs.
// Missing endpoints are created with empty attribute sets first, so the order
// in which adapters run never loses an edge. Edges are never deduplicated:
// calling UpsertEdge twice with identical arguments yields two edges.
func (g *Graph) UpsertEdge(from, to string, attrs Attributes) error {
	if from == "" || to == "" {
		return ErrInvalidNodeID
	}
	g.ensure(from)
	g.ensure(to)

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Attrs: attrs.Clone()})
	g.outgoing[from] = append(g.outgoing[from], idx)
	g.incoming[to] = append(g.incoming[to], idx)
	return nil
}

func (g *Graph) ensure(id string) *Node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id, Attrs: Attributes{}}
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the node stored in the graph.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.order))
	for i, id := range g.order {
		nodes[i] = g.nodes[id]
	}
	return nodes
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string { return slices.Clone(g.order) }

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// OutEdges returns the edges leaving id in insertion order.
func (g *Graph) OutEdges(id string) []Edge {
	idx := g.outgoing[id]
	out := make([]Edge, len(idx))
	for i, j := range idx {
		out[i] = g.edges[j]
	}
	return out
}

// InEdges returns the edges entering id in insertion order.
func (g *Graph) InEdges(id string) []Edge {
	idx := g.incoming[id]
	in := make([]Edge, len(idx))
	for i, j := range idx {
		in[i] = g.edges[j]
	}
	return in
}

// Successors returns the targets of the edges leaving id, in edge order.
// A target reached by parallel edges appears once per edge.
func (g *Graph) Successors(id string) []string {
	idx := g.outgoing[id]
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = g.edges[j].To
	}
	return out
}

// Predecessors returns the sources of the edges entering id, in edge order.
func (g *Graph) Predecessors(id string) []string {
	idx := g.incoming[id]
	in := make([]string, len(idx))
	for i, j := range idx {
		in[i] = g.edges[j].From
	}
	return in
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph, parallel edges included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutDegree returns the number of edges leaving id.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of edges entering id.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }
