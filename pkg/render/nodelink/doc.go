// Package nodelink writes rendered scenes as Graphviz diagrams.
//
// # Overview
//
// [ToDOT] converts a [render.Scene] into Graphviz DOT source in which every
// node is pinned at its scene position and carries the scene's fill, text
// and edge colors. The pinned drawing is laid out by neato, which keeps
// the positions, and [RenderSVG] renders it in-process:
//
//	scene, err := render.Plan(sub, lookup, render.WithHighlight(id))
//	dot := nodelink.ToDOT(scene)
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
