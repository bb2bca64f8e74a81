// Package fonts provides the font faces used for diagnostic text.
//
// Go Mono ships with golang.org/x/image, so no font files need to be
// installed or embedded by hand. The parsed font is cached after first use.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// DefaultSize is the point size of diagnostic text.
const DefaultSize = 14.0

// FontFamily is the CSS font-family used for SVG text.
const FontFamily = `'Go Mono', ui-monospace, monospace`

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

// Mono returns the parsed Go Mono font.
func Mono() (*truetype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = truetype.Parse(gomono.TTF)
		if monoErr != nil {
			monoErr = fmt.Errorf("parse go mono: %w", monoErr)
		}
	})
	return monoFont, monoErr
}

// MonoFace returns a Go Mono face at size points and 72 DPI.
func MonoFace(size float64) (font.Face, error) {
	f, err := Mono()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
