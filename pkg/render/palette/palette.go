// Package palette provides the node colors of rendered subgraphs.
//
// Two schemes are used. With highlighted nodes, nodes are colored by their
// breadth-first level from the highlights through the discrete [Levels]
// palette, unreachable nodes get [Neutral] and highlighted nodes get
// [Accent]. Without highlights, nodes take evenly spaced hues from
// [Cyclic], inverted for contrast against the dark background.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Background is the canvas color.
var Background = mustHex("#111318")

// Neutral colors nodes that no highlight reaches.
var Neutral = mustHex("#6b6e76")

// Accent colors highlighted nodes.
var Accent = Invert(mustHex("#e41a1c"))

// levels is a 20-step palette of four shades per hue, ordered so that
// adjacent levels differ in hue.
var levels = []colorful.Color{
	mustHex("#3182bd"), mustHex("#e6550d"), mustHex("#31a354"), mustHex("#756bb1"), mustHex("#636363"),
	mustHex("#6baed6"), mustHex("#fd8d3c"), mustHex("#74c476"), mustHex("#9e9ac8"), mustHex("#969696"),
	mustHex("#9ecae1"), mustHex("#fdae6b"), mustHex("#a1d99b"), mustHex("#bcbddc"), mustHex("#bdbdbd"),
	mustHex("#c6dbef"), mustHex("#fdd0a2"), mustHex("#c7e9c0"), mustHex("#dadaeb"), mustHex("#d9d9d9"),
}

// Level returns the color for a breadth-first level. Levels beyond the
// palette wrap around; negative levels return [Neutral].
func Level(level int) colorful.Color {
	if level < 0 {
		return Neutral
	}
	return levels[level%len(levels)]
}

// LevelCount returns the number of distinct level colors.
func LevelCount() int { return len(levels) }

// Cyclic returns n colors evenly spaced around the hue wheel, in order.
func Cyclic(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		h := 360 * float64(i) / float64(max(n, 1))
		out[i] = colorful.Hsv(h, 0.55, 0.9)
	}
	return out
}

// Invert returns the RGB complement of c.
func Invert(c colorful.Color) colorful.Color {
	c = c.Clamped()
	return colorful.Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B}
}

// Luminance returns 0.299R + 0.587G + 0.114B with channels in [0, 1].
func Luminance(c colorful.Color) float64 {
	c = c.Clamped()
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Text returns black for light colors (luminance above 0.5) and white
// otherwise, for labels drawn on a fill of color c.
func Text(c colorful.Color) colorful.Color {
	if Luminance(c) > 0.5 {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("palette: bad color %q: %v", s, err))
	}
	return c
}
