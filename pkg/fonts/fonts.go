// Package fonts provides the embedded label font used for raster output.
//
// The Go Regular TrueType font ships inside golang.org/x/image, so labels
// render identically on every machine without a system font lookup.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Family is the font family name written into vector output.
const Family = "Go, Helvetica, Arial, sans-serif"

var (
	parsed     *truetype.Font
	parseErr   error
	parsedOnce sync.Once
)

// Regular returns a face of the embedded regular font at the given point
// size. The font is parsed once on first use.
func Regular(size float64) (font.Face, error) {
	parsedOnce.Do(func() {
		parsed, parseErr = truetype.Parse(goregular.TTF)
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: size}), nil
}
