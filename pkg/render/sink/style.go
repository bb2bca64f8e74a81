package sink

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	hgerrors "github.com/matzehuels/hexgrid/pkg/errors"
)

// Default drawing parameters.
const (
	DefaultBackground  = "#0d0f12"
	DefaultStrokeWidth = 2.0
)

// style holds the options shared by every frame sink.
type style struct {
	background  color.Color
	strokeWidth float64
	scale       float64
}

func defaultStyle() style {
	bg, _ := ParseColor(DefaultBackground)
	return style{background: bg, strokeWidth: DefaultStrokeWidth, scale: 1}
}

// Option configures the frame sinks.
type Option func(*style)

// WithBackground sets the canvas color.
func WithBackground(c color.Color) Option {
	return func(s *style) {
		if c != nil {
			s.background = c
		}
	}
}

// WithStrokeWidth sets the outline width in pixels (default 2).
func WithStrokeWidth(w float64) Option {
	return func(s *style) { s.strokeWidth = w }
}

// WithScale multiplies the raster resolution (default 1). Ignored by SVG.
func WithScale(f float64) Option {
	return func(s *style) {
		if f > 0 {
			s.scale = f
		}
	}
}

func newStyle(opts []Option) style {
	s := defaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ParseColor parses "#rgb" or "#rrggbb".
func ParseColor(hex string) (color.Color, error) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, hgerrors.Wrap(hgerrors.ErrCodeInvalidInput, err, "invalid color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func hexColor(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}

// canvasSize rounds a frame size up to whole pixels, at least 1x1.
func canvasSize(w, h, scale float64) (int, int) {
	px := func(v float64) int {
		n := int(math.Ceil(v * scale))
		if n < 1 {
			return 1
		}
		return n
	}
	return px(w), px(h)
}
