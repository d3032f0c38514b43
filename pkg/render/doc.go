// Package render draws subgraphs of the knowledge graph.
//
// # Overview
//
// Rendering runs in two stages. [Plan] is a pure computation that turns a
// subgraph and a concept lookup into a [Scene]: node positions from a named
// layout (see [layout.Names]), node and edge colors, wrapped label lines,
// label text colors and edge labels. [Render] plans a scene and rasterizes
// it to a PNG file with fogleman/gg.
//
//	path, err := render.Render(ctx, sub, lookup, "out/aspirin",
//	    render.WithHighlight("DB00945"),
//	    render.WithLayout("kamada-kawai"),
//	)
//	// path == "out/aspirin.png"
//
// # Colors
//
// With highlighted nodes, each node is colored by its breadth-first level
// from the highlights (following edge direction inside the subgraph), nodes
// no highlight reaches are gray, and the highlights take the accent color.
// Without highlights, nodes take evenly spaced hues in iteration order,
// inverted. An edge takes the inverse of its source node's color. Label
// text is black on light fills and white on dark ones.
//
// # Other Sinks
//
// The [nodelink] subpackage writes the same scene as Graphviz DOT and SVG.
//
// [layout.Names]: github.com/crkarthik11/healthcare/pkg/render/layout.Names
// [nodelink]: github.com/crkarthik11/healthcare/pkg/render/nodelink
package render
