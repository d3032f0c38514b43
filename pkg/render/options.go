package render

import (
	"github.com/charmbracelet/log"

	"github.com/crkarthik11/healthcare/pkg/render/layout"
)

// DefaultWrapWidth is the label column width used when none is set.
const DefaultWrapWidth = 15

// Option configures [Plan] and [Render].
type Option func(*options)

type options struct {
	highlights []string
	layout     string
	seed       int64
	wrapWidth  int
	logger     *log.Logger
}

func newOptions(opts ...Option) options {
	o := options{
		layout:    layout.Default,
		seed:      1,
		wrapWidth: DefaultWrapWidth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	return o
}

// WithHighlight marks nodes to emphasize. Levels are computed from them and
// they are drawn in the accent color. Ids not in the subgraph are ignored.
func WithHighlight(ids ...string) Option {
	return func(o *options) { o.highlights = append(o.highlights, ids...) }
}

// WithLayout selects the layout algorithm by name.
func WithLayout(name string) Option {
	return func(o *options) { o.layout = name }
}

// WithSeed fixes the random seed of randomized layouts.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithWrapWidth sets the label column width in characters. Values below 1
// are ignored.
func WithWrapWidth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.wrapWidth = n
		}
	}
}

// WithLogger sets the logger for render progress.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}
