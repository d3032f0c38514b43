package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/fonts"
	"github.com/crkarthik11/healthcare/pkg/render"
)

// ToDOT converts a scene to Graphviz DOT. Positions are in points with the
// y axis flipped, since Graphviz grows upward.
func ToDOT(s *render.Scene) string {
	diameter := 2 * render.NodeRadius / 72
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", s.Background.Hex())
	fmt.Fprintf(&buf, "  bb=\"0,0,%.0f,%.0f\";\n", s.Side, s.Side)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fixedsize=true, width=%.3f, fontsize=11, fontname=%q, penwidth=0];\n",
		diameter, fonts.Family)
	fmt.Fprintf(&buf, "  edge [fontsize=9, fontname=%q, arrowsize=0.6];\n", fonts.Family)
	buf.WriteString("\n")

	for _, n := range s.Nodes {
		attrs := []string{
			fmt.Sprintf("label=%q", strings.Join(n.Lines, "\n")),
			fmt.Sprintf("pos=\"%.2f,%.2f!\"", n.X, s.Side-n.Y),
			fmt.Sprintf("fillcolor=%q", n.Color.Hex()),
			fmt.Sprintf("fontcolor=%q", n.TextColor.Hex()),
		}
		if n.Highlight {
			attrs = append(attrs, "penwidth=3", fmt.Sprintf("color=%q", n.Color.Hex()), "peripheries=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range s.Edges {
		attrs := []string{fmt.Sprintf("color=%q", e.Color.Hex())}
		if len(e.Labels) > 0 {
			attrs = append(attrs,
				fmt.Sprintf("label=%q", strings.Join(e.Labels, "\n")),
				fmt.Sprintf("fontcolor=%q", e.Color.Hex()))
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG with Graphviz's neato engine, which
// keeps pinned node positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root element with one whose viewBox
// starts at the origin and whose size matches it.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
