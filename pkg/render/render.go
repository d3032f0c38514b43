package render

import (
	"bufio"
	"context"
	"io"
	"math"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/crkarthik11/healthcare/pkg/concept"
	"github.com/crkarthik11/healthcare/pkg/errors"
	"github.com/crkarthik11/healthcare/pkg/fonts"
	"github.com/crkarthik11/healthcare/pkg/kg"
	"github.com/crkarthik11/healthcare/pkg/observability"
)

const (
	labelSize  = 11.0
	edgeSize   = 9.0
	edgeWidth  = 1.6
	arrowSize  = 10.0
	loopRadius = NodeRadius * 0.6
)

// Render plans sub and writes it as a PNG to output + ".png", returning the
// written path. Write failures are returned as WRITE_FAILED and not retried.
func Render(ctx context.Context, sub *kg.Graph, lookup concept.Lookup, output string, opts ...Option) (string, error) {
	o := newOptions(opts...)
	hooks := observability.Analysis()
	hooks.OnRenderStart(ctx, o.layout, sub.NodeCount())
	start := time.Now()

	path, err := render(ctx, sub, lookup, output, opts)
	hooks.OnRenderComplete(ctx, o.layout, []string{"png"}, time.Since(start), err)
	if err != nil {
		return "", err
	}
	o.logger.Debug("rendered subgraph", "path", path, "layout", o.layout,
		"nodes", sub.NodeCount(), "edges", sub.EdgeCount(), "elapsed", time.Since(start))
	return path, nil
}

func render(ctx context.Context, sub *kg.Graph, lookup concept.Lookup, output string, opts []Option) (string, error) {
	scene, err := Plan(sub, lookup, opts...)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := output + ".png"
	if err := scene.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}

// SavePNG rasterizes the scene into the file at path.
func (s *Scene) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	w := bufio.NewWriter(f)
	if err := s.WritePNG(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "close %s", path)
	}
	return nil
}

// WritePNG rasterizes the scene and encodes it as PNG to w.
func (s *Scene) WritePNG(w io.Writer) error {
	dc, err := s.draw()
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "encode png")
	}
	return nil
}

func (s *Scene) draw() (*gg.Context, error) {
	side := int(math.Ceil(s.Side))
	dc := gg.NewContext(side, side)
	dc.SetColor(s.Background)
	dc.Clear()

	label, err := fonts.Regular(labelSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load label font")
	}
	small, err := fonts.Regular(edgeSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load edge font")
	}

	at := make(map[string]SceneNode, len(s.Nodes))
	for _, n := range s.Nodes {
		at[n.ID] = n
	}

	dc.SetFontFace(small)
	for _, e := range s.Edges {
		drawEdge(dc, at[e.From], at[e.To], e)
	}

	dc.SetFontFace(label)
	for _, n := range s.Nodes {
		drawNode(dc, n)
	}
	return dc, nil
}

func drawNode(dc *gg.Context, n SceneNode) {
	dc.DrawCircle(n.X, n.Y, NodeRadius)
	dc.SetColor(n.Color)
	dc.Fill()
	if n.Highlight {
		dc.SetLineWidth(3)
		dc.DrawCircle(n.X, n.Y, NodeRadius+3)
		dc.SetColor(n.Color)
		dc.Stroke()
	}
	drawLines(dc, n.Lines, n.X, n.Y, n.TextColor)
}

func drawEdge(dc *gg.Context, from, to SceneNode, e SceneEdge) {
	dc.SetColor(e.Color)
	dc.SetLineWidth(edgeWidth)

	if from.ID == to.ID {
		cx, cy := from.X, from.Y-NodeRadius-loopRadius*0.5
		dc.DrawCircle(cx, cy, loopRadius)
		dc.Stroke()
		drawLines(dc, e.Labels, cx, cy-loopRadius-edgeSize, e.Color)
		return
	}

	dx, dy := to.X-from.X, to.Y-from.Y
	d := math.Hypot(dx, dy)
	if d <= 2*NodeRadius {
		return
	}
	ux, uy := dx/d, dy/d
	x1, y1 := from.X+ux*NodeRadius, from.Y+uy*NodeRadius
	x2, y2 := to.X-ux*NodeRadius, to.Y-uy*NodeRadius
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()

	dc.MoveTo(x2, y2)
	dc.LineTo(x2-ux*arrowSize-uy*arrowSize/2, y2-uy*arrowSize+ux*arrowSize/2)
	dc.LineTo(x2-ux*arrowSize+uy*arrowSize/2, y2-uy*arrowSize-ux*arrowSize/2)
	dc.ClosePath()
	dc.Fill()

	drawLines(dc, e.Labels, (x1+x2)/2, (y1+y2)/2, e.Color)
}

// drawLines draws lines as a block centered on (x, y).
func drawLines(dc *gg.Context, lines []string, x, y float64, c colorful.Color) {
	if len(lines) == 0 {
		return
	}
	dc.SetColor(c)
	h := dc.FontHeight() * 1.15
	top := y - h*float64(len(lines)-1)/2
	for i, line := range lines {
		dc.DrawStringAnchored(line, x, top+h*float64(i), 0.5, 0.35)
	}
}
