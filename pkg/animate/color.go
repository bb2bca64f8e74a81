package animate

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color converts the HSB triple to a colorful.Color.
func (v Visual) Color() colorful.Color {
	return colorful.Hsv(v.Hue, v.Saturation/100, v.Brightness/100).Clamped()
}

// RGBA returns the stroke color as an opaque 8-bit color.
func (v Visual) RGBA() color.RGBA {
	r, g, b := v.Color().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex returns the stroke color as "#rrggbb".
func (v Visual) Hex() string {
	return v.Color().Hex()
}
