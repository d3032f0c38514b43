package render

import (
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/kg/traverse"
	"github.com/crkarthik11/healthcare/pkg/render/layout"
	"github.com/crkarthik11/healthcare/pkg/render/palette"
)

// Canvas sizing: the square side grows with the square root of the node
// count between minCanvas and maxCanvas.
const (
	minCanvas    = 800.0
	maxCanvas    = 8000.0
	canvasScale  = 220.0
	canvasMargin = 2 * NodeRadius
)

// NodeRadius is the drawn node radius in canvas pixels.
const NodeRadius = 34.0

// Unreached is the level of nodes that no highlight reaches, and of every
// node when there are no highlights.
const Unreached = -1

// Scene is a fully resolved drawing of a subgraph.
type Scene struct {
	Layout     string
	Side       float64
	Background colorful.Color
	Nodes      []SceneNode
	Edges      []SceneEdge
}

// SceneNode is a positioned, colored node.
type SceneNode struct {
	ID        string
	X, Y      float64
	Color     colorful.Color
	TextColor colorful.Color
	Lines     []string
	Level     int
	Highlight bool
}

// SceneEdge is a colored edge between two scene nodes. Labels holds the
// resolved relationship type and, when present, relationship group.
type SceneEdge struct {
	From, To string
	Color    colorful.Color
	Labels   []string
}

// Node returns the scene node with the given id.
func (s *Scene) Node(id string) (SceneNode, bool) {
	i := slices.IndexFunc(s.Nodes, func(n SceneNode) bool { return n.ID == id })
	if i < 0 {
		return SceneNode{}, false
	}
	return s.Nodes[i], true
}

// Plan computes the scene for sub without drawing it. It fails with
// INVALID_LAYOUT for an unknown layout name before any other work.
func Plan(sub *kg.Graph, lookup concept.Lookup, opts ...Option) (*Scene, error) {
	o := newOptions(opts...)
	if err := layout.Validate(o.layout); err != nil {
		return nil, err
	}

	pos, err := layout.Compute(o.layout, sub, o.seed)
	if err != nil {
		return nil, err
	}
	side := canvasSide(sub.NodeCount())
	pos = layout.Fit(pos, side, canvasMargin)

	ids := sub.NodeIDs()
	colors, levels, highlighted := nodeColors(sub, ids, o.highlights)

	scene := &Scene{
		Layout:     o.layout,
		Side:       side,
		Background: palette.Background,
		Nodes:      make([]SceneNode, 0, len(ids)),
	}
	for i, id := range ids {
		p := pos[id]
		scene.Nodes = append(scene.Nodes, SceneNode{
			ID:        id,
			X:         p.X,
			Y:         p.Y,
			Color:     colors[i],
			TextColor: palette.Text(colors[i]),
			Lines:     nodeLines(sub, lookup, id, o.wrapWidth),
			Level:     levels[i],
			Highlight: highlighted[id],
		})
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	for _, e := range sub.Edges() {
		scene.Edges = append(scene.Edges, SceneEdge{
			From:   e.From,
			To:     e.To,
			Color:  palette.Invert(colors[index[e.From]]),
			Labels: edgeLabels(e, lookup),
		})
	}
	return scene, nil
}

func canvasSide(n int) float64 {
	return min(max(minCanvas, canvasScale*math.Sqrt(float64(n))), maxCanvas)
}

// nodeColors returns per-node colors and levels in ids order, plus the set
// of highlights present in sub.
func nodeColors(sub *kg.Graph, ids []string, highlights []string) ([]colorful.Color, []int, map[string]bool) {
	colors := make([]colorful.Color, len(ids))
	levels := make([]int, len(ids))
	present := make(map[string]bool)
	for _, h := range highlights {
		if sub.HasNode(h) {
			present[h] = true
		}
	}

	if len(present) == 0 {
		for i, c := range palette.Cyclic(len(ids)) {
			colors[i] = palette.Invert(c)
			levels[i] = Unreached
		}
		return colors, levels, present
	}

	reached := traverse.Levels(sub, highlights)
	for i, id := range ids {
		level, ok := reached[id]
		if !ok {
			level = Unreached
		}
		levels[i] = level
		colors[i] = palette.Level(level)
		if present[id] {
			colors[i] = palette.Accent
		}
	}
	return colors, levels, present
}

// nodeLines is the wrapped display label followed by the wrapped
// "(semantic tag)" line when the node has one.
func nodeLines(sub *kg.Graph, lookup concept.Lookup, id string, width int) []string {
	lines := wrap(lookup.NodeLabel(sub, id), width)
	if n, ok := sub.Node(id); ok {
		if tag := n.Attrs.String(kg.AttrSemanticTag); tag != "" {
			lines = append(lines, wrap("("+tag+")", width)...)
		}
	}
	if len(lines) == 0 {
		lines = []string{id}
	}
	return lines
}

// edgeLabels resolves the relationship type and group of e. A group of "0"
// marks an ungrouped relationship and is omitted.
func edgeLabels(e kg.Edge, lookup concept.Lookup) []string {
	var labels []string
	if rel := e.Attrs.String(kg.AttrRelationshipType); rel != "" {
		labels = append(labels, lookup.Label(rel))
	}
	if group := e.Attrs.String(kg.AttrRelationshipGroup); group != "" && group != "0" {
		labels = append(labels, lookup.Label(group))
	}
	return labels
}
